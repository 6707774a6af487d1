package style

import (
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	tests := []struct {
		name         string
		expectedName string
	}{
		{"Default", "Default"},
		{"Midnight", "Midnight"},
		{"Light", "Light"},
		{"High Contrast", "High Contrast"},
		{"Nonexistent", "Default"},
		{"", "Default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			theme := GetThemeByName(tc.name)
			if theme.Name != tc.expectedName {
				t.Errorf("GetThemeByName(%q).Name = %q, want %q", tc.name, theme.Name, tc.expectedName)
			}
		})
	}
}

func TestIsValidThemeName(t *testing.T) {
	for _, name := range ThemeNames() {
		if !IsValidThemeName(name) {
			t.Errorf("IsValidThemeName(%q) = false, want true", name)
		}
	}

	for _, name := range []string{"", "default", "LIGHT", "Retro"} {
		if IsValidThemeName(name) {
			t.Errorf("IsValidThemeName(%q) = true, want false", name)
		}
	}
}

func TestApplyThemeByName(t *testing.T) {
	origName := CurrentThemeName
	defer ApplyThemeByName(origName)

	ApplyThemeByName("Light")
	if CurrentThemeName != "Light" {
		t.Errorf("CurrentThemeName = %q, want \"Light\"", CurrentThemeName)
	}
	if Background != ThemeLight.Background || Surface != ThemeLight.Surface || Highlight != ThemeLight.Highlight {
		t.Error("colors not updated for Light theme")
	}

	ApplyThemeByName("DoesNotExist")
	if CurrentThemeName != "Default" {
		t.Errorf("CurrentThemeName = %q, want \"Default\" for unknown theme", CurrentThemeName)
	}
}

func TestAvailableThemesNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, theme := range AvailableThemes {
		if seen[theme.Name] {
			t.Errorf("duplicate theme name in AvailableThemes: %q", theme.Name)
		}
		seen[theme.Name] = true
	}
}

func TestThemeColorsOpaque(t *testing.T) {
	for _, theme := range AvailableThemes {
		t.Run(theme.Name, func(t *testing.T) {
			colors := map[string]uint8{
				"Background":    theme.Background.A,
				"Surface":       theme.Surface.A,
				"Primary":       theme.Primary.A,
				"PrimaryHover":  theme.PrimaryHover.A,
				"Text":          theme.Text.A,
				"TextSecondary": theme.TextSecondary.A,
				"Accent":        theme.Accent.A,
				"Highlight":     theme.Highlight.A,
				"Border":        theme.Border.A,
				"DimOverlay":    theme.DimOverlay.A,
			}
			for name, alpha := range colors {
				if alpha != 0xff {
					t.Errorf("%s.%s alpha = 0x%02x, want 0xff", theme.Name, name, alpha)
				}
			}
		})
	}
}

func TestSetDPIScale(t *testing.T) {
	defer SetDPIScale(1.0)

	SetDPIScale(2.0)
	if CoverWidth != 2*baseCoverWidth || CoverHeight != 2*baseCoverHeight {
		t.Errorf("cover = %dx%d, want %dx%d", CoverWidth, CoverHeight, 2*baseCoverWidth, 2*baseCoverHeight)
	}
	if HeaderHeight != 2*baseHeaderHeight {
		t.Errorf("HeaderHeight = %d, want %d", HeaderHeight, 2*baseHeaderHeight)
	}

	SetDPIScale(0.5)
	if DPIScale() != 1.0 {
		t.Errorf("DPIScale() = %v, want 1.0 after clamping", DPIScale())
	}
	if CoverWidth != baseCoverWidth {
		t.Errorf("CoverWidth = %d, want %d", CoverWidth, baseCoverWidth)
	}
}

func TestPx(t *testing.T) {
	defer SetDPIScale(1.0)

	tests := []struct {
		scale   float64
		logical int
		want    int
	}{
		{1.0, 10, 10},
		{1.5, 10, 15},
		{2.0, 264, 528},
	}
	for _, tc := range tests {
		SetDPIScale(tc.scale)
		if got := Px(tc.logical); got != tc.want {
			t.Errorf("Px(%d) at %v = %d, want %d", tc.logical, tc.scale, got, tc.want)
		}
	}
}
