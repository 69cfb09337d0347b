package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X plinth/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X plinth/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X plinth/internal/version.Date={{.Date}}
)

// Full returns the version string including commit and build date when
// they were stamped in.
func Full() string {
	if Commit == "unknown" && Date == "unknown" {
		return Version
	}

	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, Date)
}
