// Package conflicts reports page names that already exist under more than
// one member of the 4/5/7 section families. The relocation rule rotates
// those families onto each other, so such pages can never relocate cleanly.
package conflicts

import (
	"sort"
	"strings"

	"manvet/pkg/registry"
)

// Conflict is a page name present in two or more distinct sections among
// the 4/5/7 families, with the sections it appears in, sorted.
type Conflict struct {
	Page     string
	Sections []string
}

// Report scans the registry for cross-family duplicates. Only records whose
// section leads with 4, 5 or 7 are considered; pages appearing in a single
// section are ignored.
func Report(db *registry.Registry) []Conflict {
	bySections := make(map[string][]string)

	for _, r := range db.Records() {
		if r.Section == "" {
			continue
		}
		switch r.Section[0] {
		case '4', '5', '7':
		default:
			continue
		}

		if !contains(bySections[r.Page], r.Section) {
			bySections[r.Page] = append(bySections[r.Page], r.Section)
		}
	}

	var out []Conflict
	for page, sections := range bySections {
		if len(sections) < 2 {
			continue
		}
		sort.Strings(sections)
		out = append(out, Conflict{Page: page, Sections: sections})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Page < out[j].Page
	})

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// String renders a conflict in the column-aligned report form.
func (c Conflict) String() string {
	var b strings.Builder
	for _, s := range c.Sections {
		b.WriteString(padRight(s, 3))
		b.WriteString(" ")
	}
	return padRight(c.Page, 16) + " " + strings.TrimRight(b.String(), " ")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
