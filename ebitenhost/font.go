package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize matches the editor's default text hit box height.
const DefaultFontSize = 20

// TTFFont is an inkwell.Font backed by a text/v2 face. The scene measures
// committed text with it, so the hit box of a text object matches the glyphs
// the host draws, and drawText offsets the baseline anchor by Ascent.
type TTFFont struct {
	face   *text.GoTextFace
	size   float64
	lh     float64
	ascent float64
}

// LoadTTFFont parses TTF/OTF data into a face of the given pixel size.
// The size is the unzoomed world-space height; drawText scales the glyphs
// with the viewport.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ebitenhost: font size %v must be positive", size)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: parse font: %w", err)
	}
	f := &TTFFont{face: &text.GoTextFace{Source: src, Size: size}, size: size}
	m := f.face.Metrics()
	f.ascent = m.HAscent
	f.lh = m.HAscent + m.HDescent + m.HLineGap
	return f, nil
}

// DefaultFont returns Go Regular at DefaultFontSize.
func DefaultFont() (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, DefaultFontSize)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *TTFFont) Ascent() float64 {
	return f.ascent
}

// Size returns the font size in pixels at zoom 1.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
