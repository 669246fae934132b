package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/mtcontrib/mediastore/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/mtcontrib/mediastore/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/mtcontrib/mediastore/internal/version.Date={{.Date}}
)
