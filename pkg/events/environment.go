package events

import (
	"runtime"

	"github.com/openctrl/receiver/pkg/permissions"
)

// Environment summarises event tap backend support.
type Environment struct {
	Provider   string
	Available  bool
	Permission string
	Message    string
	Guidance   string
}

const (
	providerQuartz = "quartz_event_tap"
	providerStub   = "stub"
)

// DetectEnvironment reports whether a Quartz event tap is likely to open.
// A nil check uses the platform Accessibility probe.
func DetectEnvironment(check permissions.TrustFunc) Environment {
	accessibility := permissions.ProbeAccessibility(check)
	env := Environment{
		Provider:   providerStub,
		Permission: accessibility.StatusString(),
		Message:    accessibility.Message,
		Guidance:   accessibility.Guidance,
	}

	if runtime.GOOS != "darwin" {
		env.Permission = "not_applicable"
		env.Message = "event tap requires macOS"
		return env
	}

	env.Provider = providerQuartz
	env.Available = accessibility.Status == permissions.StatusGranted
	if env.Guidance == "" && !env.Available {
		env.Guidance = permissions.AccessibilityGuidance
	}
	return env
}
