package bigpicture

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/redmie/lutrisview/catalog"
	"github.com/redmie/lutrisview/locale"
	"github.com/redmie/lutrisview/style"
)

// libraryState is what the library screen shows in one frame
type libraryState struct {
	view         *View
	catalog      *catalog.Catalog
	assets       *AssetCache
	exitProgress float64
	now          time.Time
}

// libraryScreen draws the pane header and the cover row
type libraryScreen struct {
	loc *locale.Localizer
}

func newLibraryScreen(loc *locale.Localizer) *libraryScreen {
	return &libraryScreen{loc: loc}
}

// paneTitle returns the localized header of p
func paneTitle(loc *locale.Localizer, p Pane) string {
	switch p {
	case PaneByName:
		return loc.Get(locale.MsgPaneByName)
	case PaneByPlaytime:
		return loc.Get(locale.MsgPaneByPlaytime)
	default:
		return loc.Get(locale.MsgPaneLastPlayed)
	}
}

// gameDetails describes the playtime and last-played date of g
func gameDetails(loc *locale.Localizer, g *catalog.Game, now time.Time) string {
	if !g.HasPlaytime() && !g.HasLastPlayed() {
		return loc.Get(locale.MsgNeverPlayed)
	}

	var parts []string
	if g.HasPlaytime() {
		parts = append(parts, loc.Format(locale.MsgPlaytime, map[string]any{
			"Time": style.FormatPlayTime(g.Playtime),
		}))
	}
	if g.HasLastPlayed() {
		var date string
		switch style.DaysAgo(g.LastPlayed, now) {
		case 0:
			date = loc.Get(locale.MsgToday)
		case 1:
			date = loc.Get(locale.MsgYesterday)
		default:
			date = style.FormatDate(g.LastPlayed, now)
		}
		parts = append(parts, loc.Format(locale.MsgLastPlayed, map[string]any{
			"Date": date,
		}))
	}
	return strings.Join(parts, "  |  ")
}

// visibleIndices returns the sequence indices drawn left to right: one
// item before the selection, then onwards, wrapping, until slots covers
// fit. An empty sequence has none.
func visibleIndices(selection, n, slots int) []int {
	if n <= 0 || slots <= 0 {
		return nil
	}
	out := make([]int, slots)
	for k := range out {
		out[k] = Wrap(selection-1+k, n)
	}
	return out
}

// rowMarks picks the one slot drawn as selected and the one slot marked as
// the start of the sequence. A short sequence repeats across the row, so
// index matching alone would mark every copy. Either result is -1 when no
// slot qualifies.
func rowMarks(indices []int) (selected, first int) {
	switch len(indices) {
	case 0:
		return -1, -1
	case 1:
		selected = 0
	default:
		selected = 1
	}
	for off := range indices {
		k := (selected + off) % len(indices)
		if indices[k] == 0 {
			return selected, k
		}
	}
	return selected, -1
}

// coverSlots returns how many covers start within width
func coverSlots(width int) int {
	pitch := style.CoverWidth + style.CoverSpacing
	if pitch <= 0 || width <= style.CoverSpacing {
		return 0
	}
	return (width - style.CoverSpacing + pitch - 1) / pitch
}

func (l *libraryScreen) Draw(screen *ebiten.Image, st libraryState) {
	screen.Fill(style.Background)

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	v := st.view

	l.drawHeader(screen, v.Pane(), w)

	games := v.Sequence(st.catalog)
	if len(games) == 0 {
		drawCentered(screen, l.loc.Get(locale.MsgNoGames), float64(w)/2, float64(h)/2, style.TextSecondary)
		l.drawExitHold(screen, st.exitProgress, w, h)
		return
	}

	selection := v.SelectionIndex(len(games))
	top := style.HeaderHeight + style.DefaultPadding
	pitch := style.CoverWidth + style.CoverSpacing

	slots := visibleIndices(selection, len(games), coverSlots(w))
	selectedSlot, firstSlot := rowMarks(slots)
	for k, idx := range slots {
		x := style.CoverSpacing + k*pitch
		l.drawCover(screen, games[idx], st.assets, x, top, k == selectedSlot, k == firstSlot)
	}

	g := games[selection]
	infoY := float64(top + style.MarkerHeight + style.CoverHeight + style.LabelHeight + style.DefaultSpacing*2)
	maxW := float64(w - 2*style.CoverSpacing)
	face := *style.FontFace()

	name, _ := style.TruncateToWidth(g.Name, face, maxW)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(style.CoverSpacing), infoY)
	opts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, name, face, opts)

	details, _ := style.TruncateToWidth(gameDetails(l.loc, g, st.now), face, maxW)
	_, lineHeight := text.Measure("Ag", face, 0)
	opts = &text.DrawOptions{}
	opts.GeoM.Translate(float64(style.CoverSpacing), infoY+lineHeight+float64(style.SmallSpacing))
	opts.ColorScale.ScaleWithColor(style.TextSecondary)
	text.Draw(screen, details, face, opts)

	l.drawExitHold(screen, st.exitProgress, w, h)
}

// drawHeader draws the pane title and one indicator per pane
func (l *libraryScreen) drawHeader(screen *ebiten.Image, active Pane, width int) {
	titleFace := style.FaceAt(style.HeaderHeight / 3)
	if titleFace != nil {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(float64(style.CoverSpacing), float64(style.HeaderHeight)/2)
		opts.SecondaryAlign = text.AlignCenter
		opts.ColorScale.ScaleWithColor(style.Text)
		text.Draw(screen, paneTitle(l.loc, active), titleFace, opts)
	}

	dot := float32(style.MarkerHeight * 2)
	gap := float32(style.SmallSpacing)
	x := float32(width-style.CoverSpacing) - paneCount*dot - (paneCount-1)*gap
	y := float32(style.HeaderHeight)/2 - dot/2
	for p := Pane(0); p < paneCount; p++ {
		clr := style.Border
		if p == active {
			clr = style.Primary
		}
		vector.DrawFilledRect(screen, x, y, dot, dot, clr, false)
		x += dot + gap
	}
}

// drawCover draws one cover with its label and markers at x, y
func (l *libraryScreen) drawCover(screen *ebiten.Image, g *catalog.Game, assets *AssetCache, x, y int, selected, first bool) {
	cw, ch := float32(style.CoverWidth), float32(style.CoverHeight)
	fx, fy := float32(x), float32(y+style.MarkerHeight)

	if first {
		vector.DrawFilledRect(screen, fx, float32(y), cw, float32(style.MarkerHeight)/2, style.Accent, false)
	}

	asset, ok := assets.Get(g.ID)
	if ok && asset.Cover != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(fx), float64(fy))
		if !selected {
			opts.ColorScale.Scale(0.7, 0.7, 0.7, 1)
		}
		screen.DrawImage(asset.Cover, opts)
	} else {
		vector.DrawFilledRect(screen, fx, fy, cw, ch, style.Surface, false)
	}

	if ok && asset.Label != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(fx), float64(fy+ch))
		if !selected {
			opts.ColorScale.ScaleAlpha(0.7)
		}
		screen.DrawImage(asset.Label, opts)
	}

	if selected {
		b := float32(style.HighlightBorder)
		vector.StrokeRect(screen, fx-b/2, fy-b/2, cw+b, ch+b, b, style.Highlight, false)
	}
}

// exitHoldProgress returns the hold bar fill, 0 unless an exit is armed.
// Once the exit fires the bar is gone even if back is still held.
func exitHoldProgress(r *Router, now time.Time) float64 {
	if !r.ExitArmed() {
		return 0
	}
	return r.ExitProgress(now)
}

// drawExitHold draws the hold-to-exit bar while back is held
func (l *libraryScreen) drawExitHold(screen *ebiten.Image, progress float64, width, height int) {
	if progress <= 0 {
		return
	}
	barW := float32(style.ProgressBarWidth)
	barH := float32(style.ProgressBarHeight)
	barX := float32(width)/2 - barW/2
	barY := float32(height - style.OverlayMargin*4)

	vector.DrawFilledRect(screen, barX, barY, barW, barH, style.Surface, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(progress), barH, style.Primary, false)
	drawCentered(screen, l.loc.Get(locale.MsgHoldToExit), float64(width)/2, float64(barY)-float64(style.DefaultSpacing), style.Text)
}
