// Where: cli/internal/version/version_test.go
// What: Tests for version string derivation.
package version

import (
	"runtime/debug"
	"testing"
)

func TestRevisionFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{name: "no vcs", settings: nil, want: "dev"},
		{
			name:     "short revision",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			want:     "0123456",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc1234"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "abc1234 (dirty)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revisionFromSettings(tt.settings); got != tt.want {
				t.Fatalf("revisionFromSettings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetVersionWithoutBuildInfo(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	if got := GetVersion(); got != "dev" {
		t.Fatalf("GetVersion() = %q, want dev", got)
	}
	if got := String(); got != "functpl dev" {
		t.Fatalf("String() = %q", got)
	}
}
