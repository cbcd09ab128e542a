package version

// Build information set by ldflags
var (
	Version = "dev"     // -X manvet/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X manvet/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X manvet/internal/version.Date={{.Date}}
)
