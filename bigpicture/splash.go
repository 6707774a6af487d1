package bigpicture

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/redmie/lutrisview/locale"
	"github.com/redmie/lutrisview/style"
)

// splashState is what the splash screen shows in one frame
type splashState struct {
	loaded  int
	total   int
	dwell   float64 // Fraction of the minimum splash time elapsed
	failure string  // Why no catalog could be read, "" unless loading failed
	now     time.Time
}

// splashScreen draws the title and loading progress
type splashScreen struct {
	loc *locale.Localizer

	// Title size for the screen height it was fitted to
	titleSize   int
	titleHeight int
}

func newSplashScreen(loc *locale.Localizer) *splashScreen {
	return &splashScreen{loc: loc}
}

// titleFontSize fits the title to a fraction of the screen height
func (s *splashScreen) titleFontSize(screenHeight int) int {
	if s.titleSize > 0 && s.titleHeight == screenHeight {
		return s.titleSize
	}
	target := float64(screenHeight) * style.SplashTitleFraction
	size, err := style.FitFontSize(style.TextMeasurer(), target, "", style.AxisHeight)
	if err != nil {
		size = int(float64(style.FontSize()) * style.DPIScale())
	}
	s.titleSize = size
	s.titleHeight = screenHeight
	return size
}

// progress returns the bar fill in [0, 1]. The bar is full only when every
// asset is loaded and the dwell time is over, which is when the splash ends.
func (st splashState) progress() float64 {
	if st.total <= 0 {
		return 0
	}
	return min(clamp01(float64(st.loaded)/float64(st.total)), clamp01(st.dwell))
}

// loadFailure returns why the splash cannot leave, or "" while a catalog
// may still arrive
func loadFailure(r *Refresher) string {
	if !r.Failed() {
		return ""
	}
	return r.Err().Error()
}

// pulse returns a brightness factor oscillating once per second
func pulse(now time.Time) float64 {
	phase := float64(now.UnixMilli()%1000) / 1000
	return 0.65 + 0.35*math.Sin(2*math.Pi*phase)
}

func (s *splashScreen) Draw(screen *ebiten.Image, st splashState) {
	screen.Fill(style.Background)

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	face := style.FaceAt(s.titleFontSize(bounds.Dy()))
	if face != nil {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(w/2, h*0.4)
		opts.PrimaryAlign = text.AlignCenter
		opts.SecondaryAlign = text.AlignCenter
		opts.ColorScale.ScaleWithColor(style.Primary)
		text.Draw(screen, s.loc.Get(locale.MsgTitle), face, opts)
	}

	barW := float32(style.ProgressBarWidth)
	barH := float32(style.ProgressBarHeight)
	barX := float32(w/2) - barW/2
	barY := float32(h * 0.6)

	if st.failure != "" {
		drawCentered(screen, s.loc.Get(locale.MsgLoadFailed), w/2, float64(barY), style.TextSecondary)
		reason, _ := style.TruncateToWidth(st.failure, *style.FontFace(), w*0.8)
		drawCentered(screen, reason, w/2, float64(barY)+float64(style.DefaultSpacing)*3, style.TextSecondary)
		return
	}

	vector.DrawFilledRect(screen, barX, barY, barW, barH, style.Surface, false)

	fill := style.Primary
	fill.A = uint8(255 * pulse(st.now))
	if st.total > 0 {
		vector.DrawFilledRect(screen, barX, barY, barW*float32(st.progress()), barH, fill, false)
	} else {
		// No catalog yet: a segment sweeps across the bar
		seg := barW / 5
		phase := float32(st.now.UnixMilli()%1500) / 1500
		vector.DrawFilledRect(screen, barX+(barW-seg)*phase, barY, seg, barH, fill, false)
	}

	drawCentered(screen, s.loc.Get(locale.MsgLoading), w/2, float64(barY+barH)+float64(style.DefaultSpacing)*1.5, style.TextSecondary)
}

// drawCentered draws s in the UI font centered on x, y
func drawCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, *style.FontFace(), opts)
}
