package permissions

// Status enumerates coarse permission results for macOS-style prompts.
type Status string

const (
	// StatusUnknown indicates no explicit signal about permission state.
	StatusUnknown Status = "unknown"
	// StatusGranted signals that the process is already trusted.
	StatusGranted Status = "granted"
	// StatusDenied indicates the process is not trusted yet.
	StatusDenied Status = "denied"
	// StatusUnavailable reports that the capability is not supported.
	StatusUnavailable Status = "unavailable"
)

// AccessibilityGuidance is shown whenever an event tap cannot be created.
const AccessibilityGuidance = "Please grant Accessibility permissions in System Settings > Privacy & Security."

// ProbeResult represents the coarse state for a permission surface.
type ProbeResult struct {
	Status   Status
	Message  string
	Guidance string
}

// TrustFunc reports whether the process is trusted for Accessibility and whether
// the platform has such a notion at all.
type TrustFunc func() (trusted bool, supported bool)

// ProbeAccessibility inspects Accessibility trust without prompting the user.
// A nil check uses the platform probe.
func ProbeAccessibility(check TrustFunc) ProbeResult {
	if check == nil {
		check = accessibilityTrusted
	}
	trusted, supported := check()
	switch {
	case !supported:
		return ProbeResult{Status: StatusUnavailable, Message: "accessibility trust unavailable on this platform"}
	case trusted:
		return ProbeResult{Status: StatusGranted, Message: "accessibility trust granted"}
	default:
		return ProbeResult{Status: StatusDenied, Message: "accessibility trust missing", Guidance: AccessibilityGuidance}
	}
}

// StatusString returns the string representation used in log fields.
func (p ProbeResult) StatusString() string {
	if p.Status == "" {
		return string(StatusUnknown)
	}
	return string(p.Status)
}
