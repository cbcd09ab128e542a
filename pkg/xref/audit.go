package xref

import (
	"manvet/pkg/logging"
	"manvet/pkg/registry"
)

// AuditResult classifies every cross reference extracted from one document.
// Duplicates coming out of extraction stay duplicated here.
type AuditResult struct {
	// Resolved references have a matching registry record.
	Resolved []CrossReference
	// Missing references do not resolve against the registry.
	Missing []CrossReference
	// Diagnostics are the recoverable per-line filter anomalies.
	Diagnostics []string
}

// Audit extracts the cross references of one document and validates each
// against the registry. Absence of a record is a finding, not an error;
// only a scanner parse failure is returned as an error.
func Audit(db *registry.Registry, content string) (*AuditResult, error) {
	logger := logging.GetLogger("xref")

	refs, diags, err := Extract(content)
	if err != nil {
		return nil, err
	}

	res := &AuditResult{Diagnostics: diags}
	for _, d := range diags {
		logger.Warn().Str("diagnostic", d).Msg("rejected cross-reference candidate")
	}

	for _, x := range refs {
		if _, ok := db.Lookup(x.Section, x.Page); ok {
			res.Resolved = append(res.Resolved, x)
		} else {
			res.Missing = append(res.Missing, x)
		}
	}

	return res, nil
}
