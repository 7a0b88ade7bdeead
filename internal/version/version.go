// Package version reports how the httplint binary was built.
package version

import (
	"fmt"
	"runtime/debug"

	"httpcore/internal/invariant"
)

// Set with -ldflags "-X httpcore/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Flavour is "checked" unless the httpunchecked tag removed the scans in
// the unchecked constructors.
func Flavour() string {
	if invariant.Enabled {
		return "checked"
	}
	return "unchecked"
}

// GetVersion falls back to the VCS stamp embedded by the go command when
// the linker flags were not set.
func GetVersion() string {
	commit, built := Commit, BuildDate
	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("httplint %s (%s build, commit: %s, built: %s)", Version, Flavour(), commit, built)
}

func GetShortVersion() string {
	return Version
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
