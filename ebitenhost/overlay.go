package ebitenhost

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/inkwell"
)

// ebitenutil.DebugPrint glyph cell size.
const (
	debugCharW = 6
	debugLineH = 16
)

// overlay shows the editor's debug summary with FPS and TPS. The text is
// refreshed about twice a second.
type overlay struct {
	text    string
	elapsed float64
}

func (o *overlay) update(dt float64, e *inkwell.Editor) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.text = fmt.Sprintf("%s\nFPS: %.1f  TPS: %.1f", e.DebugSummary(), ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *overlay) draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	cols, rows := textBlockSize(o.text)
	// Semi-transparent background for readability
	vector.DrawFilledRect(screen, 0, 0,
		float32(cols*debugCharW+8), float32(rows*debugLineH+4), color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, o.text, 4, 2)
}

// textBlockSize returns the longest line length and the line count of s.
func textBlockSize(s string) (cols, rows int) {
	for _, line := range strings.Split(s, "\n") {
		cols = max(cols, len(line))
		rows++
	}
	return cols, rows
}
