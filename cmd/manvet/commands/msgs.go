package commands

// Message constants
const (
	MsgRootShort = "Audit the manual page corpus of a package repository"
	MsgRootLong  = `manvet builds a registry mapping every (section, page) pair in a package
repository to its owning package, then uses that registry to find naming
conflicts across the 4/5/7 section families, to simulate the planned
section renumbering, and to verify that cross references inside page
bodies resolve.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	MsgBuildShort = "Build the registry from a package repository"
	MsgBuildLong  = `Lists every package in the repository, fetches each package's manifest
concurrently, and records every delivered manual page file and link in the
registry file. Any listing failure aborts the build; a partial registry is
never written.`

	MsgConflictsShort = "Report pages duplicated across the 4/5/7 section families"
	MsgConflictsLong  = `Reports every page name that already exists in two or more of the numeric
section families the renumbering rotates (4, 5 and 7). These pages cannot
relocate cleanly no matter how the rotation is applied.`

	MsgSimulateShort = "Simulate the section renumbering and report obscured pages"
	MsgSimulateLong  = `Applies the relocation rule (1M to 8, and the 4/5/7 rotation) to a copy of
the registry, then reports every page whose current key would be occupied
by some other page's relocated identity. Nothing is modified.`

	MsgAuditShort = "Classify pages and verify their cross references"
	MsgAuditLong  = `Walks every canonical page in the registry, classifies it as mdoc or
classic roff, and for roff pages extracts each cross reference and checks
that it resolves against the registry. Dangling references are reported
on stderr.`

	MsgGenConfigShort = "Print the effective configuration as TOML"
)
