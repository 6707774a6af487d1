package style

import "time"

// Base constants (unexported) are logical-pixel reference values.
// The corresponding exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding      = 16
	baseDefaultSpacing      = 16
	baseSmallSpacing        = 8
	baseButtonPaddingMedium = 12

	// Cover art, matching the aspect of Lutris's cover cache
	baseCoverWidth   = 264
	baseCoverHeight  = 352
	baseCoverSpacing = 24
	baseLabelHeight  = 40

	// Library screen
	baseHeaderHeight    = 96
	baseHighlightBorder = 4
	baseMarkerHeight    = 6

	// Splash and hold-to-exit bars
	baseProgressBarWidth  = 480
	baseProgressBarHeight = 12

	// Overlay (launch toast)
	baseOverlayPadding = 12
	baseOverlayMargin  = 16

	baseExitMenuMinWidth = 320
)

// Font sizes in points
const (
	DefaultFontSize = 20
	MinLabelSize    = 8
	// FitBaseline is the size text is measured at before scaling to fit
	FitBaseline = 100
)

// Layout vars used across screens, DPI-scaled at runtime via SetDPIScale.
var (
	DefaultPadding      = baseDefaultPadding
	DefaultSpacing      = baseDefaultSpacing
	SmallSpacing        = baseSmallSpacing
	ButtonPaddingMedium = baseButtonPaddingMedium
)

// Cover vars
var (
	CoverWidth   = baseCoverWidth
	CoverHeight  = baseCoverHeight
	CoverSpacing = baseCoverSpacing
	// LabelHeight is the strip under each cover holding the game name
	LabelHeight = baseLabelHeight
)

// Library vars
var (
	HeaderHeight    = baseHeaderHeight
	HighlightBorder = baseHighlightBorder
	MarkerHeight    = baseMarkerHeight
)

// Progress bar vars
var (
	ProgressBarWidth  = baseProgressBarWidth
	ProgressBarHeight = baseProgressBarHeight
)

// Overlay vars
var (
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// ExitMenuMinWidth is the minimum width of exit menu buttons
var ExitMenuMinWidth = baseExitMenuMinWidth

// SplashTitleFraction is the splash title height relative to screen height
const SplashTitleFraction = 1.0 / 6.0

// Navigation timing constants
const (
	RepeatDelay    = 500 * time.Millisecond  // Hold time before repeat starts
	RepeatInterval = 350 * time.Millisecond  // Time between repeats
	ExitHold       = 1500 * time.Millisecond // Back hold time that forces exit
	LaunchCooldown = 500 * time.Millisecond  // Launch suppression after a launch
	SplashDwell    = 2 * time.Second         // Minimum splash display time
)

// Analog stick thresholds
const (
	StickThreshold = 0.75 // Deflection that triggers a move
	StickNeutral   = 0.25 // Deflection below which the stick re-arms
)

// NotificationDuration is how long the launch toast stays on screen
const NotificationDuration = 3 * time.Second

// TPS is the fixed update rate
const TPS = 60
