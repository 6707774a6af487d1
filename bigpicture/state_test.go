package bigpicture

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSplash, "Splash"},
		{ModeLibrary, "Library"},
		{ModeExitMenu, "ExitMenu"},
		{Mode(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.mode.String(); got != tc.want {
				t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.want)
			}
		})
	}
}
