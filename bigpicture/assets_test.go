package bigpicture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redmie/lutrisview/catalog"
)

// countingRenderer records what the cache asks it to render. It returns
// nil images so no GPU is needed.
type countingRenderer struct {
	covers       int
	placeholders int
	labels       []string
}

func (r *countingRenderer) Cover(src image.Image) *ebiten.Image {
	if src == nil {
		r.placeholders++
	} else {
		r.covers++
	}
	return nil
}

func (r *countingRenderer) Label(name string) *ebiten.Image {
	r.labels = append(r.labels, name)
	return nil
}

// mapDecoder serves images from a map keyed by path. Unknown paths are
// missing files; paths in broken fail to decode.
type mapDecoder struct {
	images map[string]image.Image
	broken map[string]bool
	calls  []string
}

func (d *mapDecoder) decode(path string) (image.Image, error) {
	d.calls = append(d.calls, path)
	if d.broken[path] {
		return nil, errors.New("invalid JPEG format")
	}
	if img, ok := d.images[path]; ok {
		return img, nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func assetCatalog(names ...string) *catalog.Catalog {
	games := make([]*catalog.Game, len(names))
	for i, n := range names {
		games[i] = &catalog.Game{ID: i + 1, Slug: strings.ToLower(n), Name: n}
	}
	return catalog.New(games)
}

func TestAssetCacheSaturation(t *testing.T) {
	for _, k := range []int{0, 1, 3, 10} {
		names := make([]string, k)
		for i := range names {
			names[i] = string(rune('a'+i)) + "game"
		}
		cat := assetCatalog(names...)
		render := &countingRenderer{}
		cache := NewAssetCacheWith("/covers", (&mapDecoder{}).decode, render)

		working := 0
		for n := 0; n < 3*k+5; n++ {
			if cache.EnsureLoaded(cat) {
				working++
			}
		}
		if working != k {
			t.Errorf("K=%d: %d working calls, want %d", k, working, k)
		}
		if !cache.FullyLoaded(cat) {
			t.Errorf("K=%d: FullyLoaded() = false after saturation", k)
		}
		if len(render.labels) != k {
			t.Errorf("K=%d: %d labels rendered, want %d", k, len(render.labels), k)
		}
	}
}

func TestAssetCacheOneUnitPerCall(t *testing.T) {
	cat := assetCatalog("Celeste", "Hades", "Doom")
	render := &countingRenderer{}
	cache := NewAssetCacheWith("/covers", (&mapDecoder{}).decode, render)

	for want := 1; want <= 3; want++ {
		if !cache.EnsureLoaded(cat) {
			t.Fatalf("call %d did no work", want)
		}
		if cache.Len() != want {
			t.Errorf("after call %d: %d entries", want, cache.Len())
		}
		loaded, total := cache.Progress(cat)
		if loaded != want || total != 3 {
			t.Errorf("Progress() = %d/%d, want %d/3", loaded, total, want)
		}
	}

	// Work follows the by-name order
	want := []string{"Celeste", "Doom", "Hades"}
	if !reflect.DeepEqual(render.labels, want) {
		t.Errorf("label order = %v, want %v", render.labels, want)
	}
}

func TestAssetCacheCoverLookup(t *testing.T) {
	cover := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dec := &mapDecoder{
		images: map[string]image.Image{
			filepath.Join("/covers", "quake.jpg"): cover,
			filepath.Join("/covers", "hades.png"): cover,
		},
		broken: map[string]bool{
			filepath.Join("/covers", "doom.jpg"): true,
		},
	}
	render := &countingRenderer{}
	cache := NewAssetCacheWith("/covers", dec.decode, render)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	cat := catalog.New([]*catalog.Game{
		{ID: 1, Slug: "quake", Name: "Quake"},
		{ID: 2, Slug: "hades", Name: "Hades"},
		{ID: 3, Slug: "doom", Name: "Doom"},
		{ID: 4, Slug: "celeste", Name: "Celeste"},
		{ID: 5, Slug: "", Name: "Unnamed"},
	})
	for cache.EnsureLoaded(cat) {
	}

	if render.covers != 2 {
		t.Errorf("%d real covers, want 2 (quake.jpg, hades.png)", render.covers)
	}
	if render.placeholders != 3 {
		t.Errorf("%d placeholders, want 3", render.placeholders)
	}

	wantCalls := map[string]bool{
		filepath.Join("/covers", "celeste.jpg"): true,
		filepath.Join("/covers", "celeste.png"): true,
		filepath.Join("/covers", "doom.jpg"):    true,
		filepath.Join("/covers", "hades.jpg"):   true,
		filepath.Join("/covers", "hades.png"):   true,
		filepath.Join("/covers", "quake.jpg"):   true,
	}
	if len(dec.calls) != len(wantCalls) {
		t.Errorf("decoder calls = %v", dec.calls)
	}
	for _, c := range dec.calls {
		if !wantCalls[c] {
			t.Errorf("unexpected decode of %s", c)
		}
	}

	// The broken file is logged exactly once, and never retried
	for i := 0; i < 10; i++ {
		cache.EnsureLoaded(cat)
	}
	if n := strings.Count(logs.String(), "doom.jpg"); n != 1 {
		t.Errorf("broken cover logged %d times, want 1:\n%s", n, logs.String())
	}
}

func TestAssetCacheLoadErrorType(t *testing.T) {
	dec := &mapDecoder{broken: map[string]bool{"/c/x.jpg": true}}
	cache := NewAssetCacheWith("/c", dec.decode, &countingRenderer{})

	_, err := cache.loadCover(&catalog.Game{Slug: "x"})
	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("loadCover() error = %v, want *AssetLoadError", err)
	}
	if loadErr.Slug != "x" || loadErr.Path != "/c/x.jpg" {
		t.Errorf("AssetLoadError = %+v", loadErr)
	}

	// Missing files are not errors
	img, err := cache.loadCover(&catalog.Game{Slug: "missing"})
	if img != nil || err != nil {
		t.Errorf("missing cover = (%v, %v), want (nil, nil)", img, err)
	}
}

func TestAssetCacheCatalogChange(t *testing.T) {
	render := &countingRenderer{}
	cache := NewAssetCacheWith("/covers", (&mapDecoder{}).decode, render)

	first := catalog.New([]*catalog.Game{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
	})
	for cache.EnsureLoaded(first) {
	}

	second := catalog.New([]*catalog.Game{
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
	})
	if cache.FullyLoaded(second) {
		t.Fatal("FullyLoaded() = true for a catalog with a new game")
	}

	cache.Prune(second)
	if _, ok := cache.Get(1); ok {
		t.Error("asset for removed game survived Prune")
	}
	if _, ok := cache.Get(2); !ok {
		t.Error("asset for kept game was pruned")
	}

	// Only the new game needs work
	working := 0
	for cache.EnsureLoaded(second) {
		working++
	}
	if working != 1 {
		t.Errorf("%d working calls for one new game, want 1", working)
	}
	if !cache.FullyLoaded(second) {
		t.Error("FullyLoaded() = false after loading new game")
	}
}

func TestAssetCacheNilCatalog(t *testing.T) {
	cache := NewAssetCacheWith("/covers", (&mapDecoder{}).decode, &countingRenderer{})
	if cache.EnsureLoaded(nil) {
		t.Error("EnsureLoaded(nil) did work")
	}
	if cache.FullyLoaded(nil) {
		t.Error("FullyLoaded(nil) = true")
	}
	if loaded, total := cache.Progress(nil); loaded != 0 || total != 0 {
		t.Errorf("Progress(nil) = %d/%d", loaded, total)
	}
}

func TestCoverPaths(t *testing.T) {
	got := CoverPaths("/home/u/.cache/lutris/coverart", "half-life-2")
	want := []string{
		"/home/u/.cache/lutris/coverart/half-life-2.jpg",
		"/home/u/.cache/lutris/coverart/half-life-2.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CoverPaths() = %v, want %v", got, want)
	}
}

func TestDecodeCoverFile(t *testing.T) {
	dir := t.TempDir()

	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.RGBA{0xff, 0, 0, 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.png")
	if err := os.WriteFile(good, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.jpg")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeCoverFile(good)
	if err != nil {
		t.Fatalf("DecodeCoverFile(good) error: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}

	if _, err := DecodeCoverFile(bad); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("DecodeCoverFile(bad) error = %v, want decode error", err)
	}
	if _, err := DecodeCoverFile(filepath.Join(dir, "none.jpg")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("DecodeCoverFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestLabelFontSize(t *testing.T) {
	// Each rune is 0.5px wide per point, 1px tall per point
	measure := func(content string, size int) (float64, float64) {
		return float64(len([]rune(content))*size) * 0.5, float64(size)
	}

	tests := []struct {
		name string
		want int
	}{
		{"Hades", 40},         // fits at 106, clamped to strip height
		{"The Witcher 3", 40}, // 264/(13*0.5) = 40.6 -> 41, clamped
		{"Shadow of the Tomb Raider Definitive", 15},
		{strings.Repeat("x", 200), 8},
	}
	for _, tc := range tests {
		if got := LabelFontSize(measure, tc.name, 264, 8, 40); got != tc.want {
			t.Errorf("LabelFontSize(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLabelFontSizeZeroMeasure(t *testing.T) {
	zero := func(string, int) (float64, float64) { return 0, 0 }
	got := LabelFontSize(zero, "Doom", 264, 8, 40)
	if got < 8 || got > 40 {
		t.Errorf("LabelFontSize with zero measure = %d, want fallback within [8, 40]", got)
	}
}

func TestAssetCacheRebuildsAfterReload(t *testing.T) {
	dec := &mapDecoder{
		images: map[string]image.Image{},
		broken: map[string]bool{"/covers/doom.jpg": true},
	}
	render := &countingRenderer{}
	cache := NewAssetCacheWith("/covers", dec.decode, render)

	first := catalog.New([]*catalog.Game{
		{ID: 1, Slug: "hades", Name: "Hades"},
		{ID: 2, Slug: "doom", Name: "Doom"},
		{ID: 3, Slug: "quake", Name: "Quake"},
		{ID: 4, Name: "No Slug"},
	})
	for cache.EnsureLoaded(first) {
	}
	if render.placeholders != 4 {
		t.Fatalf("%d placeholders after first pass, want 4", render.placeholders)
	}

	// Lutris fetched the Hades cover and Quake was renamed
	dec.images["/covers/hades.jpg"] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	second := catalog.New([]*catalog.Game{
		{ID: 1, Slug: "hades", Name: "Hades"},
		{ID: 2, Slug: "doom", Name: "Doom"},
		{ID: 3, Slug: "quake", Name: "Quake II"},
		{ID: 4, Name: "No Slug"},
	})
	cache.Prune(second)

	if _, ok := cache.Get(1); !ok {
		t.Error("marked asset not drawable before rebuild")
	}
	if cache.FullyLoaded(second) {
		t.Fatal("FullyLoaded() = true with entries to rebuild")
	}

	render.labels = nil
	working := 0
	for cache.EnsureLoaded(second) {
		working++
	}
	// Hades for its new cover, Quake for its new name
	if working != 2 {
		t.Errorf("%d working calls, want 2", working)
	}
	if render.covers != 1 {
		t.Errorf("%d covers decoded, want 1", render.covers)
	}
	if !reflect.DeepEqual(render.labels, []string{"Hades", "Quake II"}) {
		t.Errorf("rebuilt labels = %v", render.labels)
	}

	// Nothing changed: a further reload rebuilds only the still missing
	// Quake cover
	cache.Prune(second)
	working = 0
	for cache.EnsureLoaded(second) {
		working++
	}
	if working != 1 {
		t.Errorf("%d working calls on unchanged reload, want 1", working)
	}
}
