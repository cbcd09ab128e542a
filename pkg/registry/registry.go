package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"manvet/pkg/errors"
)

// Record is one registry entry mapping a (section, page) key to the package
// that delivers it. Provenance is only set on records derived by a simulated
// section relocation, and holds the section the record came from.
type Record struct {
	IsAlias    bool
	Section    string
	Page       string
	Owner      string
	Provenance string
}

// Key renders the record's (section, page) identity for messages.
func (r Record) Key() string {
	return fmt.Sprintf("%s(%s)", r.Page, r.Section)
}

// Registry is an ordered collection of Records. Canonical order is ascending
// (section, page) by plain string comparison. Insert maintains the order;
// Load preserves the order of its input.
type Registry struct {
	records []Record
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Insert adds a record, refusing any (section, page) key already present.
// After a successful insert the registry is re-sorted into canonical order.
func (db *Registry) Insert(isAlias bool, section, page, owner string) error {
	nr := Record{
		IsAlias: isAlias,
		Section: section,
		Page:    page,
		Owner:   owner,
	}

	for _, r := range db.records {
		if r.Section == nr.Section && r.Page == nr.Page {
			return errors.Newf(errors.ErrRegistryConflict,
				"new record %s (owner %s) conflicts with existing record %s (owner %s)",
				nr.Key(), nr.Owner, r.Key(), r.Owner)
		}
	}

	db.records = append(db.records, nr)
	db.sort()

	return nil
}

// FromRecords builds a registry directly from a record list, sorted into
// canonical order but without the conflict check. The relocation transform
// uses this: its derived registries may deliberately collide, and detecting
// those collisions is the point of the simulation.
func FromRecords(records []Record) *Registry {
	db := &Registry{records: append([]Record(nil), records...)}
	db.sort()
	return db
}

func (db *Registry) sort() {
	sort.SliceStable(db.records, func(i, j int) bool {
		a, b := db.records[i], db.records[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Page < b.Page
	})
}

// Lookup scans for an exact (section, page) match. Absence is not an error.
func (db *Registry) Lookup(section, page string) (Record, bool) {
	for _, r := range db.records {
		if r.Page == page && r.Section == section {
			return r, true
		}
	}
	return Record{}, false
}

// Records returns a copy of the record list in current order.
func (db *Registry) Records() []Record {
	out := make([]Record, len(db.records))
	copy(out, db.records)
	return out
}

// Len returns the number of records held.
func (db *Registry) Len() int {
	return len(db.records)
}

// Load parses the persisted registry form: one record per line, four
// tab-separated fields (kind, section, page, owner) where kind is exactly
// "l" for an alias record or "f" for a file record. Record order follows
// the input; no sort is applied.
func Load(r io.Reader) (*Registry, error) {
	db := New()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		t := strings.Split(sc.Text(), "\t")
		if len(t) != 4 {
			return nil, errors.Newf(errors.ErrMalformedRecord, "broken record %q", t)
		}

		var isAlias bool
		switch t[0] {
		case "l":
			isAlias = true
		case "f":
			isAlias = false
		default:
			return nil, errors.Newf(errors.ErrMalformedRecord, "invalid link field %q", t)
		}

		db.records = append(db.records, Record{
			IsAlias: isAlias,
			Section: t[1],
			Page:    t[2],
			Owner:   t[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read registry")
	}

	return db, nil
}

// LoadFile loads a persisted registry from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "failed to open registry %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Persist serializes the registry in its current order, in the same
// tab-separated form Load reads.
func (db *Registry) Persist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range db.records {
		kind := "f"
		if r.IsAlias {
			kind = "l"
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", kind, r.Section, r.Page, r.Owner); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write registry")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write registry")
	}
	return nil
}

// PersistFile writes the registry to path, replacing any existing file.
func (db *Registry) PersistFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create registry %s", path)
	}
	defer f.Close()

	if err := db.Persist(f); err != nil {
		return err
	}
	return f.Close()
}
