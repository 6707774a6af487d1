package catalog

import (
	"testing"
	"time"
)

func names(games []*Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name
	}
	return out
}

func equalNames(t *testing.T, label string, got []*Game, want []string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("%s: got %v, want %v", label, gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("%s: got %v, want %v", label, gotNames, want)
			return
		}
	}
}

func TestCatalogSortAbsentPlaytimeLowest(t *testing.T) {
	now := time.Now()
	cat := New([]*Game{
		{ID: 1, Name: "A", Playtime: 10 * time.Hour, LastPlayed: now.Add(-time.Hour)},
		{ID: 2, Name: "B", Playtime: 30 * time.Hour},
		{ID: 3, Name: "C", LastPlayed: now},
	})

	equalNames(t, "by playtime", cat.ByPlaytime(), []string{"B", "A", "C"})
	equalNames(t, "by last played", cat.ByLastPlayed(), []string{"C", "A", "B"})
	equalNames(t, "by name", cat.ByName(), []string{"A", "B", "C"})
}

func TestCatalogSortByNameIgnoresStats(t *testing.T) {
	cat := New([]*Game{
		{ID: 1, Name: "Zelda-like", Playtime: 100 * time.Hour},
		{ID: 2, Name: "alpha", LastPlayed: time.Unix(1000, 0)},
		{ID: 3, Name: "Beta"},
		{ID: 4, Name: "Alpha", Playtime: time.Minute},
	})

	equalNames(t, "by name", cat.ByName(), []string{"Alpha", "alpha", "Beta", "Zelda-like"})
}

func TestCatalogTiesFallBackToName(t *testing.T) {
	cat := New([]*Game{
		{ID: 1, Name: "Quake"},
		{ID: 2, Name: "Doom"},
		{ID: 3, Name: "Heretic"},
	})

	equalNames(t, "by playtime", cat.ByPlaytime(), []string{"Doom", "Heretic", "Quake"})
	equalNames(t, "by last played", cat.ByLastPlayed(), []string{"Doom", "Heretic", "Quake"})
}

func TestCatalogLookup(t *testing.T) {
	cat := New([]*Game{{ID: 7, Name: "Seven", Slug: "seven"}})

	g, ok := cat.Game(7)
	if !ok || g.Slug != "seven" {
		t.Fatalf("Game(7) = %v, %v", g, ok)
	}
	if cat.Contains(8) {
		t.Error("Contains(8) = true, want false")
	}
	if cat.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cat.Len())
	}
}

func TestNilCatalog(t *testing.T) {
	var cat *Catalog
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
	if cat.ByName() != nil {
		t.Error("ByName() should be nil for nil catalog")
	}
	if cat.Contains(1) {
		t.Error("Contains should be false for nil catalog")
	}
}

func TestSortedReturnsSequencePerOrder(t *testing.T) {
	cat := New([]*Game{
		{ID: 1, Name: "B", Playtime: time.Hour},
		{ID: 2, Name: "A"},
	})

	tests := []struct {
		order Order
		first string
	}{
		{OrderName, "A"},
		{OrderPlaytime, "B"},
		{OrderLastPlayed, "A"},
		{Order(99), "A"},
	}

	for _, tc := range tests {
		got := cat.Sorted(tc.order)
		if len(got) != 2 || got[0].Name != tc.first {
			t.Errorf("Sorted(%d) first = %v, want %q", tc.order, names(got), tc.first)
		}
	}
}
