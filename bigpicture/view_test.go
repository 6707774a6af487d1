package bigpicture

import (
	"testing"
	"time"

	"github.com/redmie/lutrisview/catalog"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{7, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{-4, 3, 2},
		{-1000001, 7, 5},
		{5, 1, 0},
		{5, 0, 0},
		{-5, -2, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.i, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestWrapAlwaysInRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := -50; i <= 50; i++ {
			got := Wrap(i, n)
			if got < 0 || got >= n {
				t.Fatalf("Wrap(%d, %d) = %d, out of [0, %d)", i, n, got, n)
			}
		}
	}
}

func TestPaneRotation(t *testing.T) {
	forward := []Pane{PaneLastPlayed, PaneByName, PaneByPlaytime, PaneLastPlayed}
	for i := 0; i < len(forward)-1; i++ {
		if got := forward[i].Next(); got != forward[i+1] {
			t.Errorf("%v.Next() = %v, want %v", forward[i], got, forward[i+1])
		}
		if got := forward[i+1].Prev(); got != forward[i] {
			t.Errorf("%v.Prev() = %v, want %v", forward[i+1], got, forward[i])
		}
	}
}

func TestPaneRoundTrip(t *testing.T) {
	for _, p := range []Pane{PaneLastPlayed, PaneByName, PaneByPlaytime} {
		if got := p.Next().Prev(); got != p {
			t.Errorf("%v.Next().Prev() = %v", p, got)
		}
		if got := p.Prev().Next(); got != p {
			t.Errorf("%v.Prev().Next() = %v", p, got)
		}
		if got := p.Next().Next().Next(); got != p {
			t.Errorf("three forward rotations from %v = %v", p, got)
		}
	}
}

func TestPaneOrder(t *testing.T) {
	tests := []struct {
		pane Pane
		want catalog.Order
	}{
		{PaneLastPlayed, catalog.OrderLastPlayed},
		{PaneByName, catalog.OrderName},
		{PaneByPlaytime, catalog.OrderPlaytime},
	}
	for _, tc := range tests {
		if got := tc.pane.Order(); got != tc.want {
			t.Errorf("%v.Order() = %v, want %v", tc.pane, got, tc.want)
		}
	}
}

func testCatalog() *catalog.Catalog {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return catalog.New([]*catalog.Game{
		{ID: 1, Name: "Alpha", Playtime: 10 * time.Hour, LastPlayed: now.Add(-48 * time.Hour)},
		{ID: 2, Name: "Bravo", Playtime: 30 * time.Hour},
		{ID: 3, Name: "Charlie", LastPlayed: now},
	})
}

func TestViewSelectionPerPane(t *testing.T) {
	cat := testCatalog()
	v := NewView(time.Time{}, 0)

	// LastPlayed: Charlie, Alpha, Bravo
	if g, _ := v.Selected(cat); g.Name != "Charlie" {
		t.Fatalf("initial selection = %q, want Charlie", g.Name)
	}
	v.Move(-1)
	if g, _ := v.Selected(cat); g.Name != "Bravo" {
		t.Errorf("after Move(-1) = %q, want Bravo", g.Name)
	}

	v.RotateForward()
	if v.Pane() != PaneByName {
		t.Fatalf("pane = %v, want ByName", v.Pane())
	}
	if g, _ := v.Selected(cat); g.Name != "Alpha" {
		t.Errorf("ByName selection = %q, want Alpha (untouched)", g.Name)
	}
	v.Move(4)
	if g, _ := v.Selected(cat); g.Name != "Bravo" {
		t.Errorf("ByName after Move(4) = %q, want Bravo", g.Name)
	}

	v.RotateBackward()
	if g, _ := v.Selected(cat); g.Name != "Bravo" {
		t.Errorf("LastPlayed selection lost after rotation, got %q", g.Name)
	}
}

func TestViewSelectedEmpty(t *testing.T) {
	v := NewView(time.Time{}, 0)
	v.Move(5)
	if _, ok := v.Selected(nil); ok {
		t.Error("Selected(nil) reported a game")
	}
	if _, ok := v.Selected(catalog.New(nil)); ok {
		t.Error("Selected(empty) reported a game")
	}
	if got := v.SelectionIndex(0); got != 0 {
		t.Errorf("SelectionIndex(0) = %d, want 0", got)
	}
}

func TestViewSplashTransition(t *testing.T) {
	start := time.Unix(1000, 0)

	tests := []struct {
		name        string
		elapsed     time.Duration
		haveCatalog bool
		fullyLoaded bool
		want        bool
	}{
		{"ready before dwell", 500 * time.Millisecond, true, true, false},
		{"dwell passed", 2 * time.Second, true, true, true},
		{"no catalog", 10 * time.Second, false, false, false},
		{"assets pending", 10 * time.Second, true, false, false},
		{"long after", time.Minute, true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewView(start, 2*time.Second)
			changed := v.Advance(start.Add(tc.elapsed), tc.haveCatalog, tc.fullyLoaded)
			if changed != tc.want {
				t.Errorf("Advance() = %v, want %v", changed, tc.want)
			}
			wantMode := ModeSplash
			if tc.want {
				wantMode = ModeLibrary
			}
			if v.Mode() != wantMode {
				t.Errorf("Mode() = %v, want %v", v.Mode(), wantMode)
			}
		})
	}
}

func TestViewAdvanceOnlyFromSplash(t *testing.T) {
	start := time.Unix(0, 0)
	v := NewView(start, time.Second)
	later := start.Add(time.Hour)
	if !v.Advance(later, true, true) {
		t.Fatal("expected first Advance to leave splash")
	}
	if v.Advance(later, true, true) {
		t.Error("second Advance reported a change")
	}
}

func TestViewMenu(t *testing.T) {
	v := NewView(time.Unix(0, 0), 0)
	v.OpenMenu()
	if v.Mode() != ModeSplash {
		t.Errorf("menu opened from splash, mode = %v", v.Mode())
	}

	v.Advance(time.Unix(1, 0), true, true)
	v.OpenMenu()
	if v.Mode() != ModeExitMenu {
		t.Fatalf("Mode() = %v, want ExitMenu", v.Mode())
	}
	v.CloseMenu()
	if v.Mode() != ModeLibrary {
		t.Errorf("Mode() = %v, want Library", v.Mode())
	}
}

func TestViewDwellProgress(t *testing.T) {
	start := time.Unix(0, 0)
	v := NewView(start, 2*time.Second)
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{-time.Second, 0},
		{0, 0},
		{time.Second, 0.5},
		{5 * time.Second, 1},
	}
	for _, tc := range tests {
		if got := v.DwellProgress(start.Add(tc.at)); got != tc.want {
			t.Errorf("DwellProgress(+%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}
