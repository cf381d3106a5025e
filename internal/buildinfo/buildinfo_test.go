package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestVersionPrefersLinkerOverride(t *testing.T) {
	orig := version
	version = "v1.2.3"
	t.Cleanup(func() { version = orig })

	assert.Equal(t, "v1.2.3", Version())
}

func TestVersionFallsBackToModuleVersion(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, true)
	assert.Equal(t, "v0.4.0", Version())

	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	assert.Equal(t, "dev", Version())

	withBuildInfo(t, nil, false)
	assert.Equal(t, "dev", Version())
}

func TestRevisionIsShortened(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
	}}, true)

	assert.Equal(t, "0123456789ab", Revision())
	assert.True(t, strings.HasPrefix(String(), "dev+0123456789ab ("))
}
