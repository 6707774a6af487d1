package bigpicture

import (
	"time"

	"github.com/redmie/lutrisview/catalog"
)

// Pane identifies which sorted sequence of the catalog is browsed
type Pane int

const (
	PaneLastPlayed Pane = iota
	PaneByName
	PaneByPlaytime

	paneCount = 3
)

// Next returns the pane after p in the rotation
// LastPlayed -> ByName -> ByPlaytime -> LastPlayed.
func (p Pane) Next() Pane {
	return Pane(Wrap(int(p)+1, paneCount))
}

// Prev returns the pane before p in the rotation
func (p Pane) Prev() Pane {
	return Pane(Wrap(int(p)-1, paneCount))
}

// Order returns the catalog sequence shown by the pane
func (p Pane) Order() catalog.Order {
	switch p {
	case PaneByName:
		return catalog.OrderName
	case PaneByPlaytime:
		return catalog.OrderPlaytime
	default:
		return catalog.OrderLastPlayed
	}
}

// String returns the string representation of the pane
func (p Pane) String() string {
	switch p {
	case PaneLastPlayed:
		return "LastPlayed"
	case PaneByName:
		return "ByName"
	case PaneByPlaytime:
		return "ByPlaytime"
	default:
		return "Unknown"
	}
}

// Wrap maps i onto [0, n). Negative values wrap from the end.
// It returns 0 when n is not positive.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// View holds what is displayed: the mode, the active pane and one
// selection per pane. Selections are stored unbounded and wrapped on use
// so they survive catalog reloads that change sequence lengths.
type View struct {
	mode      Mode
	pane      Pane
	selection [paneCount]int
	started   time.Time
	dwell     time.Duration
}

// NewView creates a view on the splash screen. The splash is held for at
// least dwell after started.
func NewView(started time.Time, dwell time.Duration) *View {
	return &View{
		mode:    ModeSplash,
		pane:    PaneLastPlayed,
		started: started,
		dwell:   dwell,
	}
}

// Mode returns the current display mode
func (v *View) Mode() Mode {
	return v.mode
}

// Pane returns the active pane
func (v *View) Pane() Pane {
	return v.pane
}

// Move shifts the active pane's selection by delta
func (v *View) Move(delta int) {
	v.selection[v.pane] += delta
}

// RotateForward activates the next pane
func (v *View) RotateForward() {
	v.pane = v.pane.Next()
}

// RotateBackward activates the previous pane
func (v *View) RotateBackward() {
	v.pane = v.pane.Prev()
}

// SelectionIndex returns the active pane's selection wrapped to n items
func (v *View) SelectionIndex(n int) int {
	return Wrap(v.selection[v.pane], n)
}

// Sequence returns the active pane's games, or nil without a catalog
func (v *View) Sequence(cat *catalog.Catalog) []*catalog.Game {
	if cat == nil {
		return nil
	}
	return cat.Sorted(v.pane.Order())
}

// Selected returns the selected game of the active pane.
// It reports false when the pane has no games.
func (v *View) Selected(cat *catalog.Catalog) (*catalog.Game, bool) {
	games := v.Sequence(cat)
	if len(games) == 0 {
		return nil, false
	}
	return games[v.SelectionIndex(len(games))], true
}

// SplashDone reports whether the splash may give way to the library:
// a catalog exists, every asset has been loaded once and the dwell time
// has passed.
func (v *View) SplashDone(now time.Time, haveCatalog, fullyLoaded bool) bool {
	if !haveCatalog || !fullyLoaded {
		return false
	}
	return now.Sub(v.started) >= v.dwell
}

// Advance leaves the splash once SplashDone holds. It reports whether the
// mode changed.
func (v *View) Advance(now time.Time, haveCatalog, fullyLoaded bool) bool {
	if v.mode != ModeSplash || !v.SplashDone(now, haveCatalog, fullyLoaded) {
		return false
	}
	v.mode = ModeLibrary
	return true
}

// OpenMenu shows the exit menu over the library
func (v *View) OpenMenu() {
	if v.mode == ModeLibrary {
		v.mode = ModeExitMenu
	}
}

// CloseMenu returns from the exit menu to the library
func (v *View) CloseMenu() {
	if v.mode == ModeExitMenu {
		v.mode = ModeLibrary
	}
}

// DwellProgress returns how much of the minimum splash time has passed,
// in [0, 1].
func (v *View) DwellProgress(now time.Time) float64 {
	if v.dwell <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(v.started)) / float64(v.dwell))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
