package bigpicture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/redmie/lutrisview/catalog"
	"github.com/redmie/lutrisview/style"
)

// coverExtensions are tried in order when looking up a game's cover art
var coverExtensions = []string{".jpg", ".png"}

// AssetLoadError is a cover file that exists but could not be decoded.
// The game is shown with a placeholder instead.
type AssetLoadError struct {
	Slug string
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("cover %s for %q: %v", e.Path, e.Slug, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Asset is the pre-rendered artwork for one game
type Asset struct {
	Cover *ebiten.Image // Scaled to the cover size
	Label *ebiten.Image // Game name, sized to the cover width

	name        string // Name the label was rendered from
	coverAbsent bool   // No cover file existed when loaded
	stale       bool   // Kept on screen until rebuilt
}

// CoverDecoder reads and decodes the image at path.
// A missing file must be reported with an error matching fs.ErrNotExist.
type CoverDecoder func(path string) (image.Image, error)

// AssetRenderer turns decoded covers and names into drawable images
type AssetRenderer interface {
	// Cover scales src to the cover size. A nil src yields the placeholder.
	Cover(src image.Image) *ebiten.Image
	// Label renders name to fit the cover width
	Label(name string) *ebiten.Image
}

// AssetCache loads covers and labels one game at a time. It is used only
// from the ebiten goroutine.
type AssetCache struct {
	dir     string
	decode  CoverDecoder
	render  AssetRenderer
	entries map[int]*Asset

	// Work proceeds through cat's by-name sequence; every game before
	// cursor has an entry.
	cat    *catalog.Catalog
	cursor int
}

// NewAssetCache creates a cache reading covers from dir
func NewAssetCache(dir string) *AssetCache {
	return NewAssetCacheWith(dir, DecodeCoverFile, &ebitenRenderer{})
}

// NewAssetCacheWith creates a cache with a custom decoder and renderer
func NewAssetCacheWith(dir string, decode CoverDecoder, render AssetRenderer) *AssetCache {
	return &AssetCache{
		dir:     dir,
		decode:  decode,
		render:  render,
		entries: make(map[int]*Asset),
	}
}

// CoverPaths returns the files checked for a game's cover, in order
func CoverPaths(dir, slug string) []string {
	paths := make([]string, len(coverExtensions))
	for i, ext := range coverExtensions {
		paths[i] = filepath.Join(dir, slug+ext)
	}
	return paths
}

// DecodeCoverFile reads and decodes a JPEG or PNG file
func DecodeCoverFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// EnsureLoaded creates the asset for the next game that has none, if any.
// It does at most one decode per call and reports whether it did work.
func (c *AssetCache) EnsureLoaded(cat *catalog.Catalog) bool {
	g := c.next(cat)
	if g == nil {
		return false
	}

	src, err := c.loadCover(g)
	if err != nil {
		log.Printf("Failed to load cover art: %v", err)
	}

	c.entries[g.ID] = &Asset{
		Cover:       c.render.Cover(src),
		Label:       c.render.Label(g.Name),
		name:        g.Name,
		coverAbsent: src == nil && err == nil && g.Slug != "",
	}
	c.cursor++
	return true
}

// next advances the cursor past loaded games and returns the first game
// without an asset, or nil when the catalog is saturated
func (c *AssetCache) next(cat *catalog.Catalog) *catalog.Game {
	if cat != c.cat {
		c.cat = cat
		c.cursor = 0
	}
	games := cat.ByName()
	for c.cursor < len(games) {
		g := games[c.cursor]
		if a, ok := c.entries[g.ID]; !ok || a.stale {
			return g
		}
		c.cursor++
	}
	return nil
}

// loadCover returns the decoded cover or nil when the game has none
func (c *AssetCache) loadCover(g *catalog.Game) (image.Image, error) {
	if g.Slug == "" {
		return nil, nil
	}
	for _, path := range CoverPaths(c.dir, g.Slug) {
		img, err := c.decode(path)
		if err == nil {
			return img, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, &AssetLoadError{Slug: g.Slug, Path: path, Err: err}
	}
	return nil, nil
}

// FullyLoaded reports whether every game in cat has an asset
func (c *AssetCache) FullyLoaded(cat *catalog.Catalog) bool {
	if cat == nil {
		return false
	}
	return c.next(cat) == nil
}

// Progress returns how many of cat's games have assets
func (c *AssetCache) Progress(cat *catalog.Catalog) (loaded, total int) {
	games := cat.ByName()
	for _, g := range games {
		if _, ok := c.entries[g.ID]; ok {
			loaded++
		}
	}
	return loaded, len(games)
}

// Get returns the asset for a game ID
func (c *AssetCache) Get(id int) (*Asset, bool) {
	a, ok := c.entries[id]
	return a, ok
}

// Len returns the number of cached assets
func (c *AssetCache) Len() int {
	return len(c.entries)
}

// Prune drops assets of games no longer in cat. Placeholders of games
// whose cover file was missing, and labels of renamed games, are marked
// for a rebuild since Lutris may have fetched the cover since. Marked
// entries stay drawable until replaced.
func (c *AssetCache) Prune(cat *catalog.Catalog) {
	for id, a := range c.entries {
		g, ok := cat.Game(id)
		if !ok {
			delete(c.entries, id)
			continue
		}
		if a.coverAbsent || a.name != g.Name {
			a.stale = true
		}
	}
	// Stale entries may sit anywhere in the sequence
	c.cursor = 0
}

// LabelFontSize returns the pixel size at which name spans width, limited
// to [minimum, maxHeight]. When the name cannot be measured the UI font
// size is used.
func LabelFontSize(measure style.Measurer, name string, width, minimum, maxHeight int) int {
	size, err := style.FitFontSize(measure, float64(width), name, style.AxisWidth)
	if err != nil {
		size = int(float64(style.FontSize()) * style.DPIScale())
	}
	return style.ClampFontSize(size, minimum, maxHeight)
}

// ebitenRenderer draws assets on GPU images
type ebitenRenderer struct {
	placeholder *ebiten.Image
}

func (r *ebitenRenderer) Cover(src image.Image) *ebiten.Image {
	if src == nil {
		if r.placeholder == nil {
			r.placeholder = style.SolidImage(style.CoverWidth, style.CoverHeight)
		}
		return r.placeholder
	}
	return style.ScaleImage(src, style.CoverWidth, style.CoverHeight)
}

func (r *ebitenRenderer) Label(name string) *ebiten.Image {
	width, height := style.CoverWidth, style.LabelHeight
	img := ebiten.NewImage(width, height)

	size := LabelFontSize(style.TextMeasurer(), name, width, style.Px(style.MinLabelSize), height)
	face := style.FaceAt(size)
	if face == nil {
		return img
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(width)/2, float64(height)/2)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	opts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(img, name, face, opts)
	return img
}
