// Package catalog loads the installed-games inventory from Lutris and keeps
// it as an immutable snapshot with three precomputed sort orders.
package catalog

import "time"

// Game is a single installed game as reported by the inventory command.
// Values are built once by Parse and must not be modified afterwards.
type Game struct {
	ID         int           // Lutris game ID, unique and stable
	Slug       string        // Used to locate cover art
	Name       string        // Display name
	Runner     string        // e.g. "wine", "linux", "steam"
	Platform   string        // e.g. "Windows", "Linux"
	Playtime   time.Duration // Zero when never played
	LastPlayed time.Time     // Zero when never played
}

// HasPlaytime reports whether a playtime was recorded for the game.
func (g *Game) HasPlaytime() bool {
	return g.Playtime > 0
}

// HasLastPlayed reports whether a last-played timestamp was recorded.
func (g *Game) HasLastPlayed() bool {
	return !g.LastPlayed.IsZero()
}
