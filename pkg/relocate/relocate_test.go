package relocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manvet/pkg/registry"
)

func build(t *testing.T, recs ...registry.Record) *registry.Registry {
	t.Helper()
	db := registry.New()
	for _, r := range recs {
		require.NoError(t, db.Insert(r.IsAlias, r.Section, r.Page, r.Owner))
	}
	return db
}

func TestTransform1M(t *testing.T) {
	db := build(t, registry.Record{Section: "1M", Page: "zpool", Owner: "pkgZ"})

	derived := Transform(db)

	r, ok := derived.Lookup("8", "zpool")
	require.True(t, ok)
	assert.Equal(t, "1M", r.Provenance)

	_, ok = derived.Lookup("1M", "zpool")
	assert.False(t, ok)
}

func TestTransformRotation(t *testing.T) {
	cases := []struct{ from, to string }{
		{"4FS", "5FS"},
		{"5FS", "7FS"},
		{"7FS", "4FS"},
		{"4", "5"},
		{"5", "7"},
		{"7", "4"},
		{"7D", "4D"},
	}

	for _, tc := range cases {
		t.Run(tc.from, func(t *testing.T) {
			db := build(t, registry.Record{Section: tc.from, Page: "p", Owner: "o"})

			r, ok := Transform(db).Lookup(tc.to, "p")
			require.True(t, ok)
			assert.Equal(t, tc.from, r.Provenance)
		})
	}
}

func TestTransformLeavesOthersAlone(t *testing.T) {
	db := build(t,
		registry.Record{Section: "1", Page: "ls", Owner: "pkgC"},
		registry.Record{Section: "3C", Page: "printf", Owner: "pkgL"},
		registry.Record{Section: "9E", Page: "open", Owner: "pkgD"},
		registry.Record{Section: "8", Page: "mount", Owner: "pkgM"},
	)

	derived := Transform(db)
	require.Equal(t, db.Len(), derived.Len())

	for _, r := range derived.Records() {
		orig, ok := db.Lookup(r.Section, r.Page)
		require.True(t, ok, "section %s should be unchanged", r.Section)
		assert.Equal(t, orig.Owner, r.Owner)
		assert.Empty(t, r.Provenance)
	}
}

func TestRotationIsAThreeCycle(t *testing.T) {
	for _, start := range []string{"4FS", "5D", "7IPP"} {
		db := build(t, registry.Record{Section: start, Page: "p", Owner: "o"})

		once := Transform(db)
		twice := Transform(once)
		thrice := Transform(twice)

		recs := thrice.Records()
		require.Len(t, recs, 1)
		assert.Equal(t, start, recs[0].Section)
	}
}

func TestSimulateReportsObscuredPage(t *testing.T) {
	// pkgA's 4FS/foo relocates onto pkgB's existing 5FS/foo
	db := build(t,
		registry.Record{Section: "4FS", Page: "foo", Owner: "pkgA"},
		registry.Record{Section: "5FS", Page: "foo", Owner: "pkgB"},
	)

	derived := Transform(db)
	obscured := Simulate(db, derived)

	require.Len(t, obscured, 1)
	assert.Equal(t, "5FS", obscured[0].Section)
	assert.Equal(t, "foo", obscured[0].Page)
	assert.Equal(t, "pkgB", obscured[0].Owner)
	assert.Equal(t, "4FS", obscured[0].Occupant.Provenance)
	assert.Equal(t, "pkgA", obscured[0].Occupant.Owner)
}

func TestSimulateCleanRelocation(t *testing.T) {
	db := build(t,
		registry.Record{Section: "4FS", Page: "foo", Owner: "pkgA"},
		registry.Record{Section: "1", Page: "ls", Owner: "pkgC"},
	)

	assert.Empty(t, Simulate(db, Transform(db)))
}

func TestSimulateUnmovedOccupantNotReported(t *testing.T) {
	// 8/mount does not move; its own key in the derived registry is
	// occupied by itself with provenance unset
	db := build(t, registry.Record{Section: "8", Page: "mount", Owner: "pkgM"})

	assert.Empty(t, Simulate(db, Transform(db)))
}
