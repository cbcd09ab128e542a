package xref

import (
	"strings"

	"manvet/pkg/errors"
)

// scanState is the position of the line scanner within a document.
type scanState int

const (
	// statePreamble expects one of the known document preludes.
	statePreamble scanState = iota
	// stateCopyright is the comment block before the title directive.
	stateCopyright
	// stateContent is the page body; there is no terminal state, the
	// scan simply stops at end of input.
	stateContent
)

func (s scanState) String() string {
	switch s {
	case statePreamble:
		return "Preamble"
	case stateCopyright:
		return "Copyright"
	case stateContent:
		return "Content"
	}
	return "?"
}

// Extract scans a whole roff document and returns every accepted cross
// reference, in document order, along with the diagnostics produced by the
// per-line filters. An unrecognized line in the Preamble or Copyright state
// is a fatal parse failure: the corpus is assumed to use one of a few known
// document preludes.
func Extract(content string) ([]CrossReference, []string, error) {
	st := statePreamble

	var refs []CrossReference
	var diags []string

	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// a trailing newline is not an extra empty line
		lines = lines[:n-1]
	}

	for _, l := range lines {
		switch st {
		case statePreamble:
			if strings.HasPrefix(l, ".TH WHOIS") ||
				strings.HasPrefix(l, ".TH HOSTS_ACCESS") {
				// pages with no prelude at all
				st = stateContent
				continue
			}

			if l == `'\" te` ||
				l == `.\"` ||
				l == `'\" t` ||
				l == `'\"` ||
				l == `.\" -*- tab-width: 4 -*-` ||
				l == `.\" -*- nroff -*-` ||
				(strings.HasPrefix(l, `.\"`) && strings.Contains(l, "Copyright")) {
				st = stateCopyright
			} else {
				return nil, diags, errors.Newf(errors.ErrParseState, "what? %s? %q", st, l)
			}

		case stateCopyright:
			if strings.HasPrefix(l, `.\"`) || l == "" {
				continue
			} else if strings.HasPrefix(l, ".TH") {
				st = stateContent
			} else {
				return nil, diags, errors.Newf(errors.ErrParseState, "what? %s? %q", st, l)
			}

		case stateContent:
			if strings.HasPrefix(l, ".") {
				// formatting directive, not interpreted
				continue
			}

			r, d := extractLine(l)
			refs = append(refs, r...)
			diags = append(diags, d...)
		}
	}

	return refs, diags, nil
}
