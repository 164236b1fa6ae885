package host

import "testing"

func TestPermissionStateString(t *testing.T) {
	tests := []struct {
		state PermissionState
		want  string
	}{
		{PermissionGranted, "granted"},
		{PermissionDenied, "denied"},
		{PermissionPrompt, "prompt"},
		{PermissionPromptWithRationale, "prompt-with-rationale"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("PermissionState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestParsePermissionState_RoundTrip(t *testing.T) {
	states := []PermissionState{
		PermissionGranted,
		PermissionDenied,
		PermissionPrompt,
		PermissionPromptWithRationale,
	}
	for _, state := range states {
		got, err := ParsePermissionState(state.String())
		if err != nil {
			t.Fatalf("ParsePermissionState(%q): %v", state.String(), err)
		}
		if got != state {
			t.Errorf("ParsePermissionState(%q) = %v, want %v", state.String(), got, state)
		}
	}
}

func TestParsePermissionState_Unknown(t *testing.T) {
	if _, err := ParsePermissionState("maybe"); err == nil {
		t.Fatal("expected error for unknown permission state")
	}
}
