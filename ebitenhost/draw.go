package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/inkwell"
)

var (
	backgroundColor = color.RGBA{0x22, 0x22, 0x22, 0xff}
	dotColor        = color.RGBA{0x66, 0x66, 0x66, 0xff}
	rectColor       = color.RGBA{0xad, 0xd8, 0xe6, 0xff} // lightblue
	textColor       = color.White
)

const (
	dotRadius = 1.5 // world units
	// minDotGap is the smallest on-screen grid spacing still drawn.
	minDotGap = 8

	// Caret geometry in world units, relative to the entry's baseline.
	caretGap    = 2
	caretRise   = 15
	caretWidth  = 2
	caretHeight = 20
)

// drawGrid draws the dotted background covering the visible world.
func (h *Host) drawGrid(screen *ebiten.Image) {
	v := h.editor.Viewport()
	spacing := h.editor.Config().GridSpacing
	if spacing <= 0 || spacing*v.Zoom < minDotGap {
		return
	}
	// Pad by the dot radius so dots straddling the edge are kept.
	b := v.VisibleBounds()
	b.X -= dotRadius
	b.Y -= dotRadius
	b.Width += 2 * dotRadius
	b.Height += 2 * dotRadius

	r := float32(dotRadius * v.Zoom)
	inkwell.GridDots(b, spacing, func(x, y float64) {
		sx, sy := v.ToScreen(x, y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, dotColor, true)
	})
}

// drawScene draws every visible object in insertion order.
func (h *Host) drawScene(screen *ebiten.Image) {
	v := h.editor.Viewport()
	scene := h.editor.Scene()
	visible := v.VisibleBounds()

	for _, obj := range scene.Objects() {
		if !scene.Bounds(obj).Intersects(visible) {
			continue
		}
		switch obj.Kind() {
		case inkwell.KindRect:
			sx, sy := v.ToScreen(obj.X, obj.Y)
			vector.DrawFilledRect(screen, float32(sx), float32(sy),
				float32(obj.Width*v.Zoom), float32(obj.Height*v.Zoom), rectColor, false)
		case inkwell.KindText:
			h.drawText(screen, obj.Content, obj.X, obj.Y, obj.Fade)
		}
	}
}

// drawEntry draws the live text entry and its caret.
func (h *Host) drawEntry(screen *ebiten.Image) {
	entry := h.editor.Entry()
	if entry == nil {
		return
	}
	h.drawText(screen, entry.Text(), entry.Anchor.X, entry.Anchor.Y, entry.Fade)
	if !h.editor.CaretVisible() {
		return
	}

	v := h.editor.Viewport()
	w, _ := h.font.MeasureString(entry.Text())
	sx, sy := v.ToScreen(entry.Anchor.X+w+caretGap, entry.Anchor.Y-caretRise)
	a := uint8(255 * entry.Fade)
	vector.DrawFilledRect(screen, float32(sx), float32(sy),
		float32(caretWidth*v.Zoom), float32(caretHeight*v.Zoom), color.NRGBA{0xff, 0xff, 0xff, a}, false)
}

// drawText draws s with its baseline-left corner at world (x, y).
func (h *Host) drawText(screen *ebiten.Image, s string, x, y, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	v := h.editor.Viewport()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-h.font.Ascent())
	op.GeoM.Scale(v.Zoom, v.Zoom)
	op.GeoM.Translate(v.PanX, v.PanY)
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = h.font.LineHeight()
	text.Draw(screen, s, h.font.Face(), op)
}
