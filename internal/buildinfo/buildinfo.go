// Package buildinfo collects the version metadata stamped into the
// binary at build time and exposed on the version page.
package buildinfo

import (
	"os"
	"runtime"
	"time"
)

// Overridden with ldflags, e.g.
// -ldflags "-X github.com/fireview/backend/internal/buildinfo.version=1.2.0".
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

// Info describes the running build.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	StartTime time.Time
}

// New resolves the build metadata, preferring ldflags values and falling
// back to CI environment variables, then "unknown".
func New() Info {
	return Info{
		Version:   firstNonEmpty(version, os.Getenv("BUILD_VERSION"), "unknown"),
		Commit:    firstNonEmpty(commit, os.Getenv("COMMIT_SHA"), os.Getenv("BUILD_REF"), os.Getenv("GITHUB_SHA"), "unknown"),
		BuildDate: firstNonEmpty(buildDate, os.Getenv("BUILD_DATE"), os.Getenv("BUILD_TIME"), "unknown"),
		GoVersion: runtime.Version(),
		StartTime: time.Now(),
	}
}

// Uptime returns how long this process has been running, truncated to
// whole seconds.
func (i Info) Uptime() time.Duration {
	return time.Since(i.StartTime).Truncate(time.Second)
}

// ShortCommit returns the first eight characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
