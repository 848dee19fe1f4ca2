package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/diggsweden/devbase/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/diggsweden/devbase/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/diggsweden/devbase/internal/version.Date={{.Date}}
)
