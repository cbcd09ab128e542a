package ips

import (
	"strings"

	"manvet/pkg/errors"
)

// Package is the identity of one IPS package: its name and, when the FMRI
// carried one, its version string.
type Package struct {
	Publisher string
	Name      string
	Version   string
}

// ParseFMRI parses a package FMRI of any of the usual shapes:
// pkg://publisher/name@version, pkg:/name@version, or bare name@version.
// The version (and the publisher) may be absent.
func ParseFMRI(s string) (Package, error) {
	if s == "" {
		return Package{}, errors.New(errors.ErrMalformedFMRI, "empty FMRI")
	}

	var p Package
	rest := s

	switch {
	case strings.HasPrefix(rest, "pkg://"):
		rest = strings.TrimPrefix(rest, "pkg://")
		i := strings.Index(rest, "/")
		if i < 0 {
			return Package{}, errors.Newf(errors.ErrMalformedFMRI, "missing package name in %q", s)
		}
		p.Publisher = rest[:i]
		rest = rest[i+1:]
	case strings.HasPrefix(rest, "pkg:/"):
		rest = strings.TrimPrefix(rest, "pkg:/")
	}

	if i := strings.Index(rest, "@"); i >= 0 {
		p.Name = rest[:i]
		p.Version = rest[i+1:]
	} else {
		p.Name = rest
	}

	if p.Name == "" {
		return Package{}, errors.Newf(errors.ErrMalformedFMRI, "missing package name in %q", s)
	}

	return p, nil
}

// FMRI renders the package back into the form accepted by pkgrepo.
func (p Package) FMRI() string {
	var b strings.Builder
	if p.Publisher != "" {
		b.WriteString("pkg://")
		b.WriteString(p.Publisher)
		b.WriteString("/")
	} else {
		b.WriteString("pkg:/")
	}
	b.WriteString(p.Name)
	if p.Version != "" {
		b.WriteString("@")
		b.WriteString(p.Version)
	}
	return b.String()
}

func (p Package) String() string {
	return p.FMRI()
}
