package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/inkwell"
)

// cursorShape maps the editor's cursor hint to the closest system cursor.
// Ebitengine has no grab hand, so grab uses the pointer and grabbing uses
// the move cursor.
func cursorShape(c inkwell.Cursor) ebiten.CursorShapeType {
	switch c {
	case inkwell.CursorGrab:
		return ebiten.CursorShapePointer
	case inkwell.CursorGrabbing, inkwell.CursorMove:
		return ebiten.CursorShapeMove
	case inkwell.CursorText:
		return ebiten.CursorShapeText
	default:
		return ebiten.CursorShapeDefault
	}
}
