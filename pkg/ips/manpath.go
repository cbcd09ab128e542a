package ips

import (
	"strings"

	"manvet/pkg/errors"
)

const manPrefix = "usr/share/man/"

// PathToMan converts a delivered manual page path of the form
// usr/share/man/man<sect>/<page>.<sect> into its (section, page) key.
// The section is reported upper-cased, matching the registry convention.
func PathToMan(p string) (section, page string, err error) {
	if !strings.HasPrefix(p, manPrefix) {
		return "", "", errors.Newf(errors.ErrMalformedManifestPath, "not a manual path? %q", p)
	}

	rest := strings.TrimPrefix(p, manPrefix)

	e := strings.Split(rest, "/")
	if len(e) != 2 || !strings.HasPrefix(e[0], "man") {
		return "", "", errors.Newf(errors.ErrMalformedManifestPath, "peculiar %q", e)
	}

	sect := strings.TrimPrefix(e[0], "man")
	if !strings.HasSuffix(e[1], "."+sect) {
		return "", "", errors.Newf(errors.ErrMalformedManifestPath, "most peculiar %q", e)
	}

	page = strings.TrimSuffix(e[1], "."+sect)
	section = strings.ToUpper(sect)

	return section, page, nil
}
