package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background    = color.NRGBA{0x12, 0x12, 0x16, 0xff} // Near black
	Surface       = color.NRGBA{0x2a, 0x2a, 0x33, 0xff} // Cover placeholder
	Primary       = color.NRGBA{0xe0, 0x7b, 0x1a, 0xff} // Lutris orange
	PrimaryHover  = color.NRGBA{0xf0, 0x95, 0x3a, 0xff}
	Text          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary = color.NRGBA{0xa8, 0xa8, 0xb0, 0xff}
	Accent        = color.NRGBA{0x3d, 0xa5, 0xd9, 0xff} // First-item marker
	Highlight     = color.NRGBA{0xff, 0xff, 0xff, 0xff} // Selection border
	Border        = color.NRGBA{0x3a, 0x3a, 0x46, 0xff}
	DimOverlay    = color.NRGBA{0x00, 0x00, 0x00, 0xff} // Alpha applied per use
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name          string
	Background    color.NRGBA
	Surface       color.NRGBA
	Primary       color.NRGBA
	PrimaryHover  color.NRGBA
	Text          color.NRGBA
	TextSecondary color.NRGBA
	Accent        color.NRGBA
	Highlight     color.NRGBA
	Border        color.NRGBA
	DimOverlay    color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:          "Default",
		Background:    color.NRGBA{0x12, 0x12, 0x16, 0xff},
		Surface:       color.NRGBA{0x2a, 0x2a, 0x33, 0xff},
		Primary:       color.NRGBA{0xe0, 0x7b, 0x1a, 0xff},
		PrimaryHover:  color.NRGBA{0xf0, 0x95, 0x3a, 0xff},
		Text:          color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary: color.NRGBA{0xa8, 0xa8, 0xb0, 0xff},
		Accent:        color.NRGBA{0x3d, 0xa5, 0xd9, 0xff},
		Highlight:     color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Border:        color.NRGBA{0x3a, 0x3a, 0x46, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	ThemeMidnight = Theme{
		Name:          "Midnight",
		Background:    color.NRGBA{0x1a, 0x1a, 0x2e, 0xff}, // Dark blue-gray
		Surface:       color.NRGBA{0x25, 0x25, 0x3a, 0xff},
		Primary:       color.NRGBA{0x4a, 0x4a, 0x8a, 0xff}, // Muted purple
		PrimaryHover:  color.NRGBA{0x5a, 0x5a, 0x9a, 0xff},
		Text:          color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary: color.NRGBA{0xaa, 0xaa, 0xaa, 0xff},
		Accent:        color.NRGBA{0xff, 0xd7, 0x00, 0xff}, // Gold
		Highlight:     color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Border:        color.NRGBA{0x3a, 0x3a, 0x5a, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	ThemeLight = Theme{
		Name:          "Light",
		Background:    color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
		Surface:       color.NRGBA{0xc8, 0xc8, 0xcc, 0xff},
		Primary:       color.NRGBA{0x1a, 0x56, 0xdb, 0xff}, // Blue
		PrimaryHover:  color.NRGBA{0x2a, 0x66, 0xeb, 0xff},
		Text:          color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		TextSecondary: color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Accent:        color.NRGBA{0xe6, 0x5c, 0x00, 0xff}, // Orange
		Highlight:     color.NRGBA{0x1a, 0x56, 0xdb, 0xff},
		Border:        color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	ThemeHighContrast = Theme{
		Name:          "High Contrast",
		Background:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
		Surface:       color.NRGBA{0x40, 0x40, 0x40, 0xff},
		Primary:       color.NRGBA{0x00, 0x80, 0xff, 0xff},
		PrimaryHover:  color.NRGBA{0x40, 0xa0, 0xff, 0xff},
		Text:          color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary: color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		Accent:        color.NRGBA{0xff, 0xff, 0x00, 0xff},
		Highlight:     color.NRGBA{0xff, 0xff, 0x00, 0xff},
		Border:        color.NRGBA{0x66, 0x66, 0x66, 0xff},
		DimOverlay:    color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	// AvailableThemes lists all themes accepted by the config
	AvailableThemes = []Theme{ThemeDefault, ThemeMidnight, ThemeLight, ThemeHighContrast}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "Default"
)

// ThemeNames returns the list of valid theme name strings.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns theme by name, or ThemeDefault if not found
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// IsValidThemeName returns true if the name matches a known theme
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Highlight = theme.Highlight
	Border = theme.Border
	DimOverlay = theme.DimOverlay
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies theme by name with fallback to Default
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

// currentFontSize is the UI font size in points
var currentFontSize float64 = DefaultFontSize

// dpiScale is the device pixel ratio (1.0 on non-retina, 2.0 on retina)
var dpiScale float64 = 1.0

// DPIScale returns the current device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts a logical pixel value to physical pixels using the current DPI scale.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates all spatial vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	CoverWidth = Px(baseCoverWidth)
	CoverHeight = Px(baseCoverHeight)
	CoverSpacing = Px(baseCoverSpacing)
	LabelHeight = Px(baseLabelHeight)
	HeaderHeight = Px(baseHeaderHeight)
	HighlightBorder = Px(baseHighlightBorder)
	MarkerHeight = Px(baseMarkerHeight)
	ProgressBarWidth = Px(baseProgressBarWidth)
	ProgressBarHeight = Px(baseProgressBarHeight)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)
	ExitMenuMinWidth = Px(baseExitMenuMinWidth)

	ApplyFontSize(int(currentFontSize))
}

// sharedFontSource is the cached TrueType font source shared by all font faces
var sharedFontSource *text.GoTextFaceSource

// fontFace is the cached UI font face
var fontFace text.Face

// sizedFaces caches faces created by FaceAt, keyed by point size
var sizedFaces = map[int]*text.GoTextFace{}

// loadFontSource loads the shared GoTextFaceSource from goregular.TTF (once)
func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize * dpiScale,
		}
	}
	return &fontFace
}

// FontSize returns the current UI font size in points
func FontSize() int {
	return int(currentFontSize)
}

// FaceAt returns a face of the shared font at the given pixel size.
// Faces are cached, so repeated calls with the same size are cheap.
func FaceAt(size int) *text.GoTextFace {
	if size < 1 {
		size = 1
	}
	if face, ok := sizedFaces[size]; ok {
		return face
	}
	source := loadFontSource()
	if source == nil {
		return nil
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   float64(size),
	}
	sizedFaces[size] = face
	return face
}

// ApplyFontSize sets the UI font size.
func ApplyFontSize(size int) {
	s := float64(size)
	currentFontSize = s

	// Replace in place; widgets hold &fontFace
	source := loadFontSource()
	if source != nil {
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   s * dpiScale,
		}
	}
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
