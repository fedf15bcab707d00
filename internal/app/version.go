package app

import "fmt"

// Build metadata injected at link time, for example:
//
//	go build -ldflags "-X github.com/deltahq/delta/internal/app.Version=v1.4.0 \
//	  -X github.com/deltahq/delta/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/delta
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and `delta version`.
// Local builds without ldflags print the bare version.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
