package xref

import (
	"fmt"
	"regexp"
	"strings"
)

// CrossReference is one (section, page) pair extracted from a document.
// Cross references are transient: produced while scanning a single page,
// audited, never stored.
type CrossReference struct {
	Section string
	Page    string
}

func (x CrossReference) String() string {
	return fmt.Sprintf("%s(%s)", x.Page, x.Section)
}

// The two markup shapes, doubled bold escapes first. The page name class
// and the section token class are deliberately identical between them.
var (
	reDoubleBold = regexp.MustCompile(`\\fB\\fB([a-zA-Z_0-9+.-]+)\\fR\\fR\(([0-9][^\[)]*)\)`)
	reSingleBold = regexp.MustCompile(`\\fB([a-zA-Z_0-9+.-]+)\\fR\(([0-9][^\[)]*)\)`)
)

// extractLine runs both markup shapes over one content line and applies the
// post-match filters. Results of the two shapes are concatenated; if both
// shapes match overlapping text the duplicate is kept. Returned diagnostics
// describe candidates rejected for a non-upper-case section token.
func extractLine(l string) (refs []CrossReference, diags []string) {
	for _, re := range []*regexp.Regexp{reDoubleBold, reSingleBold} {
		for _, m := range re.FindAllStringSubmatch(l, -1) {
			page := m[1]
			sect := m[2]

			if strings.Contains(sect, `\fI`) {
				// probably a poorly typeset function call
				continue
			}
			if sect != strings.ToUpper(sect) {
				diags = append(diags, fmt.Sprintf("sect %q is not in uppercase: %q", sect, l))
				continue
			}

			refs = append(refs, CrossReference{Section: sect, Page: page})
		}
	}

	return refs, diags
}
