package events

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEnvironmentSetsFields(t *testing.T) {
	env := DetectEnvironment(nil)
	assert.NotEmpty(t, env.Provider)
	assert.NotEmpty(t, env.Permission)
	assert.NotEmpty(t, env.Message)
}

func TestDetectEnvironmentUntrusted(t *testing.T) {
	env := DetectEnvironment(func() (bool, bool) { return false, true })
	assert.False(t, env.Available)
	if runtime.GOOS == "darwin" {
		assert.Equal(t, providerQuartz, env.Provider)
		assert.NotEmpty(t, env.Guidance)
	} else {
		assert.Equal(t, providerStub, env.Provider)
		assert.Equal(t, "not_applicable", env.Permission)
	}
}
