package catalog

import (
	"sort"
	"strings"
)

// Order selects one of the catalog's precomputed sequences.
type Order int

const (
	// OrderName is ascending by name
	OrderName Order = iota
	// OrderPlaytime is descending by playtime, unplayed games last
	OrderPlaytime
	// OrderLastPlayed is descending by last-played time, never-played last
	OrderLastPlayed
)

// Catalog is an immutable snapshot of the installed games.
// A reload builds a new Catalog; an existing one is never changed.
type Catalog struct {
	games        map[int]*Game
	byName       []*Game
	byPlaytime   []*Game
	byLastPlayed []*Game
}

// New builds a catalog from games. IDs are expected to be unique; when
// they are not the last game with a given ID wins.
func New(games []*Game) *Catalog {
	c := &Catalog{
		games: make(map[int]*Game, len(games)),
	}
	for _, g := range games {
		c.games[g.ID] = g
	}

	all := make([]*Game, 0, len(c.games))
	for _, g := range c.games {
		all = append(all, g)
	}

	c.byName = sortedCopy(all, func(a, b *Game) bool {
		return compareByName(a, b)
	})
	c.byPlaytime = sortedCopy(all, func(a, b *Game) bool {
		// Primary: most played first (absent is zero, so sorts last)
		if a.Playtime != b.Playtime {
			return a.Playtime > b.Playtime
		}
		return compareByName(a, b)
	})
	c.byLastPlayed = sortedCopy(all, func(a, b *Game) bool {
		// Primary: most recent first (zero time sorts last)
		if !a.LastPlayed.Equal(b.LastPlayed) {
			return a.LastPlayed.After(b.LastPlayed)
		}
		return compareByName(a, b)
	})

	return c
}

func sortedCopy(games []*Game, less func(a, b *Game) bool) []*Game {
	out := make([]*Game, len(games))
	copy(out, games)
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// compareByName orders by name (case-insensitive), then exact name, then ID.
func compareByName(a, b *Game) bool {
	aName := strings.ToLower(a.Name)
	bName := strings.ToLower(b.Name)
	if aName != bName {
		return aName < bName
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

// Len returns the number of games in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.games)
}

// Game returns the game with the given ID
func (c *Catalog) Game(id int) (*Game, bool) {
	if c == nil {
		return nil, false
	}
	g, ok := c.games[id]
	return g, ok
}

// Contains reports whether a game with the given ID is in the catalog
func (c *Catalog) Contains(id int) bool {
	_, ok := c.Game(id)
	return ok
}

// Sorted returns the sequence for the given order. The returned slice is
// shared with the catalog and must not be modified.
func (c *Catalog) Sorted(order Order) []*Game {
	if c == nil {
		return nil
	}
	switch order {
	case OrderPlaytime:
		return c.byPlaytime
	case OrderLastPlayed:
		return c.byLastPlayed
	default:
		return c.byName
	}
}

// ByName returns games ascending by name
func (c *Catalog) ByName() []*Game {
	return c.Sorted(OrderName)
}

// ByPlaytime returns games descending by playtime
func (c *Catalog) ByPlaytime() []*Game {
	return c.Sorted(OrderPlaytime)
}

// ByLastPlayed returns games descending by last-played time
func (c *Catalog) ByLastPlayed() []*Game {
	return c.Sorted(OrderLastPlayed)
}
