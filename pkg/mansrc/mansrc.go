// Package mansrc reads manual page bodies out of the source tree for the
// audit path, and classifies them as mdoc or classic roff.
package mansrc

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"manvet/pkg/errors"
)

// Source locates manual pages beneath a source tree laid out as
// man<sect>/<page>.<sect>, with the section directory lower-cased.
type Source struct {
	Root string
}

// PagePath returns the expected path of a page within the tree.
func (s Source) PagePath(section, page string) string {
	sect := strings.ToLower(section)
	return filepath.Join(s.Root, "man"+sect, page+"."+sect)
}

// Read loads a page body. A missing file is ErrFileNotFound; bytes that do
// not decode as UTF-8 are ErrEncoding.
func (s Source) Read(section, page string) (string, error) {
	p := s.PagePath(section, page)

	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "no page at %s", p)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", p)
	}

	if !utf8.Valid(b) {
		return "", errors.Newf(errors.ErrEncoding, "page %s is not valid UTF-8", p)
	}

	return string(b), nil
}

// IsGenerated reports whether a missing page is a known autogenerated
// exception rather than a corpus defect. The 3CPC event pages are produced
// at build time and are absent from the source tree.
func IsGenerated(section, page string) bool {
	return section == "3CPC" && strings.Contains(page, "event")
}

// IsMdoc reports whether a page body is mdoc rather than classic roff,
// keyed off the .Os directive.
func IsMdoc(content string) bool {
	for _, l := range strings.Split(content, "\n") {
		if l == ".Os" || strings.HasPrefix(l, ".Os illumos") {
			return true
		}
	}
	return false
}
