package util

import "fmt"

// Build metadata, set with -ldflags "-X github.com/ortelius/command-center/util.Release=...".
var (
	Release = "UNKNOWN"
	Commit  = "UNKNOWN"
	Repo    = "github.com/ortelius/command-center"
)

// VersionString describes the running binary.
func VersionString() string {
	return fmt.Sprintf(`
Command Center
  Release:	%v
  Build:	%v
  Repository:	%v
`, Release, Commit, Repo)
}
