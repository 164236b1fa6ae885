package host

import "fmt"

// WindowOptions configures a new window.
type WindowOptions struct {
	Label     string
	Title     string
	URL       string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	Center    bool
	// HideOnClose makes close requests hide the window instead of
	// destroying it, so the process stays resident in the tray.
	HideOnClose bool
}

// PermissionState is the notification permission reported by the host.
type PermissionState int

const (
	PermissionGranted PermissionState = iota
	PermissionDenied
	PermissionPrompt
	PermissionPromptWithRationale
)

// String returns the wire form used by the request surface.
func (p PermissionState) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	case PermissionPrompt:
		return "prompt"
	case PermissionPromptWithRationale:
		return "prompt-with-rationale"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePermissionState converts a wire string back to a PermissionState.
func ParsePermissionState(s string) (PermissionState, error) {
	switch s {
	case "granted":
		return PermissionGranted, nil
	case "denied":
		return PermissionDenied, nil
	case "prompt":
		return PermissionPrompt, nil
	case "prompt-with-rationale":
		return PermissionPromptWithRationale, nil
	default:
		return PermissionDenied, fmt.Errorf("unknown permission state: %q", s)
	}
}
