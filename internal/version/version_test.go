package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	origRead, origVersion, origCommit, origDate := readBuildInfo, Version, Commit, BuildDate
	t.Cleanup(func() {
		readBuildInfo, Version, Commit, BuildDate = origRead, origVersion, origCommit, origDate
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestGetVersion(t *testing.T) {
	stamped := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4f1c2a9be07d33c1f0aa9e2b5d6c7e8f90123456"},
		{Key: "vcs.time", Value: "2026-10-02T09:14:00Z"},
	}}

	tests := []struct {
		name      string
		info      *debug.BuildInfo
		version   string
		commit    string
		buildDate string
		want      string
	}{
		{
			name:      "no build info",
			version:   "dev",
			commit:    "unknown",
			buildDate: "unknown",
			want:      "httplint dev (" + Flavour() + " build, commit: unknown, built: unknown)",
		},
		{
			name:      "vcs stamp fills defaults",
			info:      stamped,
			version:   "dev",
			commit:    "unknown",
			buildDate: "unknown",
			want:      "httplint dev (" + Flavour() + " build, commit: 4f1c2a9be07d, built: 2026-10-02T09:14:00Z)",
		},
		{
			name:      "linker flags win over vcs stamp",
			info:      stamped,
			version:   "v0.3.1",
			commit:    "9c41e7a",
			buildDate: "2026-10-01",
			want:      "httplint v0.3.1 (" + Flavour() + " build, commit: 9c41e7a, built: 2026-10-01)",
		},
		{
			name:      "short revision kept whole",
			info:      &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}}},
			version:   "dev",
			commit:    "unknown",
			buildDate: "unknown",
			want:      "httplint dev (" + Flavour() + " build, commit: abc123, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.info)
			Version, Commit, BuildDate = tt.version, tt.commit, tt.buildDate

			assert.Equal(t, tt.want, GetVersion())
			assert.Equal(t, tt.version, GetShortVersion())
		})
	}
}
