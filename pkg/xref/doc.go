// Package xref extracts cross references such as \fBopen\fR(2) from the
// bodies of roff manual pages and validates them against the registry.
//
// The accept/reject rules here are corpus-tuned policy, not general roff
// syntax: both bold shapes run on every content line in a fixed order,
// duplicate matches are preserved, section tokens containing an italic
// escape are dropped silently, and section tokens that are not already
// upper-case are dropped with a diagnostic. Behavior on the existing
// corpus depends on these exact rules.
package xref
