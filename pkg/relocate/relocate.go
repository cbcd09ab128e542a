// Package relocate simulates the planned renumbering of manual sections:
// 1M moves to 8, and the 4/5/7 section families rotate 4→5→7→4 keeping
// their suffixes. The simulation is a pre-flight collision check only; it
// never rewrites anything.
package relocate

import (
	"manvet/pkg/registry"
)

// Transform derives a relocated registry. Records whose section is "1M"
// move to "8"; records whose section leads with 4, 5 or 7 rotate to the
// next family member with the suffix preserved; everything else is carried
// unchanged. Relocated records carry their original section as provenance.
func Transform(db *registry.Registry) *registry.Registry {
	var out []registry.Record

	for _, r := range db.Records() {
		if r.Section == "1M" {
			r.Provenance = "1M"
			r.Section = "8"
			out = append(out, r)
			continue
		}

		if r.Section == "" {
			out = append(out, r)
			continue
		}

		lead := r.Section[0]
		suffix := r.Section[1:]

		var newSect string
		switch lead {
		case '4':
			newSect = "5" + suffix
		case '5':
			newSect = "7" + suffix
		case '7':
			newSect = "4" + suffix
		default:
			out = append(out, r)
			continue
		}

		r.Provenance = r.Section
		r.Section = newSect
		out = append(out, r)
	}

	return registry.FromRecords(out)
}

// Obscured describes a page whose original key would be silently occupied
// by some other page's relocated identity.
type Obscured struct {
	Section string
	Page    string
	Owner   string
	// Occupant is the relocated record now sitting on the old key.
	Occupant registry.Record
}

// Simulate looks up every original record's key inside the derived
// registry. A hit whose provenance is set means the old key is now occupied
// by a relocated identity: the original page would become unreachable.
// Records that did not move occupy their own keys with provenance unset and
// are not reported.
func Simulate(orig, derived *registry.Registry) []Obscured {
	var out []Obscured

	for _, r := range orig.Records() {
		occupant, ok := derived.Lookup(r.Section, r.Page)
		if !ok {
			continue
		}
		if occupant.Provenance == "" {
			continue
		}

		out = append(out, Obscured{
			Section:  r.Section,
			Page:     r.Page,
			Owner:    r.Owner,
			Occupant: occupant,
		})
	}

	return out
}
