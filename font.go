package inkwell

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Font is the interface for text measurement. The scene uses it to size
// text hit boxes; hosts implement it with their rendering font.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// FixedFont measures text with a fixed advance per grapheme cluster and a
// fixed line height. It needs no font data, which makes it the default for
// headless editors and tests.
type FixedFont struct {
	Advance float64
	Height  float64
}

// DefaultFont approximates a 20px proportional sans face.
var DefaultFont = FixedFont{Advance: 10, Height: 20}

// MeasureString returns the width of the widest line and the total height.
func (f FixedFont) MeasureString(text string) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := float64(uniseg.GraphemeClusterCount(line)) * f.Advance
		if w > width {
			width = w
		}
	}
	return width, float64(len(lines)) * f.Height
}

// LineHeight returns the vertical distance between baselines.
func (f FixedFont) LineHeight() float64 {
	return f.Height
}
