package style

import (
	"fmt"
	goimage "image"
	"image/draw"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	xdraw "golang.org/x/image/draw"
)

// ScaleToRGBA scales src to exactly width x height, ignoring aspect ratio.
// Scaling is done on CPU using approximate bilinear interpolation.
func ScaleToRGBA(src goimage.Image, width, height int) *goimage.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dstRect := goimage.Rect(0, 0, width, height)
	scaled := goimage.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Scale(scaled, dstRect, src, src.Bounds(), draw.Over, nil)
	return scaled
}

// ScaleImage scales an image to exactly width x height and uploads it.
// Only the small scaled copy becomes a GPU texture.
func ScaleImage(src goimage.Image, width, height int) *ebiten.Image {
	return ebiten.NewImageFromImage(ScaleToRGBA(src, width, height))
}

// SolidImage returns a width x height image filled with the theme surface color
func SolidImage(width, height int) *ebiten.Image {
	img := ebiten.NewImage(max(width, 1), max(height, 1))
	img.Fill(Surface)
	return img
}

// TruncateToWidth truncates a string to fit within a given pixel width using actual font measurement.
// Returns the truncated string (with "..." suffix if truncated) and whether truncation occurred.
// Uses binary search on rune boundaries for efficiency with proportional fonts.
func TruncateToWidth(s string, face text.Face, maxWidth float64) (string, bool) {
	if s == "" {
		return s, false
	}
	w, _ := text.Measure(s, face, 0)
	if w <= maxWidth {
		return s, false
	}

	ellipsis := "..."
	ellipsisW, _ := text.Measure(ellipsis, face, 0)
	if ellipsisW > maxWidth {
		return ellipsis, true
	}

	lo, hi := 0, utf8.RuneCountInString(s)
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		cw, _ := text.Measure(truncateRunes(s, mid)+ellipsis, face, 0)
		if cw <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if best == 0 {
		return ellipsis, true
	}
	return truncateRunes(s, best) + ellipsis, true
}

// truncateRunes returns the first n runes of s as a string.
func truncateRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		i += size
	}
	return s[:i]
}

// FormatPlayTime formats a playtime into a human-readable string.
// Returns "-" for zero, "< 1m" for under a minute,
// or a formatted string like "2h 30m" or "45m".
func FormatPlayTime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Minute {
		return "< 1m"
	}

	hours := int64(d / time.Hour)
	minutes := int64((d % time.Hour) / time.Minute)

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// DaysAgo returns how many calendar days before now t falls, or -1 for
// the zero time. Times later than now count as today.
func DaysAgo(t, now time.Time) int {
	if t.IsZero() {
		return -1
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	then := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(then).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FormatDate formats t as "Jan 2" within now's year, "Jan 2, 2006" otherwise.
// Returns "" for the zero time.
func FormatDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2, 2006")
}
