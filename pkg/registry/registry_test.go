package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manvet/pkg/errors"
)

func TestInsertKeepsCanonicalOrder(t *testing.T) {
	db := New()

	require.NoError(t, db.Insert(false, "5FS", "zfs", "system/file-system/zfs"))
	require.NoError(t, db.Insert(false, "1", "ls", "system/core-os"))
	require.NoError(t, db.Insert(true, "1", "dir", "system/core-os"))
	require.NoError(t, db.Insert(false, "3C", "printf", "system/library"))

	recs := db.Records()
	require.Len(t, recs, 4)
	assert.Equal(t, "dir", recs[0].Page)
	assert.Equal(t, "ls", recs[1].Page)
	assert.Equal(t, "3C", recs[2].Section)
	assert.Equal(t, "5FS", recs[3].Section)
}

func TestInsertConflict(t *testing.T) {
	db := New()

	require.NoError(t, db.Insert(false, "2", "open", "pkgA"))
	before := db.Records()

	err := db.Insert(false, "2", "open", "pkgB")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryConflict))
	assert.Contains(t, err.Error(), "pkgA")
	assert.Contains(t, err.Error(), "pkgB")

	// the failed insert must leave the record set untouched
	assert.Equal(t, before, db.Records())
}

func TestInsertSamePageDifferentSection(t *testing.T) {
	db := New()

	require.NoError(t, db.Insert(false, "2", "open", "pkgA"))
	require.NoError(t, db.Insert(false, "9E", "open", "pkgB"))
	assert.Equal(t, 2, db.Len())
}

func TestLoadPreservesOrder(t *testing.T) {
	in := "f\t5FS\tzfs\tpkgZ\nl\t1\tdir\tpkgC\nf\t1\tls\tpkgC\n"

	db, err := Load(strings.NewReader(in))
	require.NoError(t, err)

	recs := db.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, "zfs", recs[0].Page)
	assert.False(t, recs[0].IsAlias)
	assert.Equal(t, "dir", recs[1].Page)
	assert.True(t, recs[1].IsAlias)
	assert.Equal(t, "ls", recs[2].Page)
}

func TestLoadMalformed(t *testing.T) {
	t.Run("wrong column count", func(t *testing.T) {
		_, err := Load(strings.NewReader("f\t1\tls\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
	})

	t.Run("unknown kind flag", func(t *testing.T) {
		_, err := Load(strings.NewReader("x\t1\tls\tpkgC\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
	})

	t.Run("space separated", func(t *testing.T) {
		_, err := Load(strings.NewReader("f 1 ls pkgC\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRecord))
	})
}

func TestPersistRoundTrip(t *testing.T) {
	in := "f\t5FS\tzfs\tpkgZ\nl\t1\tdir\tpkgC\nf\t1\tls\tpkgC\n"

	db, err := Load(strings.NewReader(in))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, db.Persist(&out))

	// load preserves order and persist emits current order, so the
	// round trip is byte-identical regardless of original line order
	assert.Equal(t, in, out.String())

	db2, err := Load(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, db.Records(), db2.Records())
}

func TestPersistFileAndLoadFile(t *testing.T) {
	path := t.TempDir() + "/database.txt"

	db := New()
	require.NoError(t, db.Insert(false, "2", "open", "pkgA"))
	require.NoError(t, db.Insert(true, "1", "cp", "pkgB"))
	require.NoError(t, db.PersistFile(path))

	db2, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, db.Records(), db2.Records())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestLookup(t *testing.T) {
	db := New()
	require.NoError(t, db.Insert(false, "2", "open", "pkgA"))

	r, ok := db.Lookup("2", "open")
	require.True(t, ok)
	assert.Equal(t, "pkgA", r.Owner)

	_, ok = db.Lookup("3C", "open")
	assert.False(t, ok)
}

func TestFromRecordsAllowsCollisions(t *testing.T) {
	recs := []Record{
		{Section: "5FS", Page: "foo", Owner: "pkgA", Provenance: "4FS"},
		{Section: "5FS", Page: "foo", Owner: "pkgB"},
	}

	db := FromRecords(recs)
	assert.Equal(t, 2, db.Len())
}
