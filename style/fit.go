package style

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ReferenceAlphabet is measured when FitFontSize is given no content
const ReferenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrZeroMeasure is returned when a font size cannot be fitted because the
// target or the measured text has no extent.
var ErrZeroMeasure = errors.New("text measured zero extent")

// Axis selects which extent of the measured text is fitted
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

// Measurer returns the rendered width and height of content at size points
type Measurer func(content string, size int) (width, height float64)

// FitFontSize returns the point size at which content spans target pixels
// along axis. Text is measured once at FitBaseline and scaled linearly.
// Empty content measures ReferenceAlphabet.
func FitFontSize(measure Measurer, target float64, content string, axis Axis) (int, error) {
	if content == "" {
		content = ReferenceAlphabet
	}
	if target <= 0 || math.IsNaN(target) {
		return 0, ErrZeroMeasure
	}

	w, h := measure(content, FitBaseline)
	measured := w
	if axis == AxisHeight {
		measured = h
	}
	if measured <= 0 || math.IsNaN(measured) {
		return 0, ErrZeroMeasure
	}

	size := int(math.Round(FitBaseline * target / measured))
	if size < 1 {
		size = 1
	}
	return size, nil
}

// TextMeasurer measures with the shared UI font
func TextMeasurer() Measurer {
	return func(content string, size int) (float64, float64) {
		face := FaceAt(size)
		if face == nil {
			return 0, 0
		}
		return text.Measure(content, face, 0)
	}
}

// ClampFontSize limits size to [lo, hi]
func ClampFontSize(size, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(size, lo), hi)
}
