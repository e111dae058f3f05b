package inkwell

import (
	"fmt"

	"github.com/tanema/gween"
)

// ObjectKind distinguishes the two object variants on the canvas.
type ObjectKind uint8

const (
	KindRect ObjectKind = iota // filled rectangle sized by Width/Height
	KindText                   // single text run anchored at its baseline-left
)

func (k ObjectKind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("ObjectKind(%d)", k)
	}
}

// Object is a positioned item on the canvas. The kind is fixed at creation;
// fields that do not belong to the kind are ignored.
type Object struct {
	// ID is assigned when the object is appended to a Scene. Zero means the
	// object has not been added yet.
	ID uint32

	// X and Y are the world-space origin: top-left for rects, baseline-left
	// for text.
	X, Y float64

	// Width and Height size a rect in world units.
	Width, Height float64

	// Content is the text of a text object.
	Content string
	// Fade is the text opacity in [0, 1]. Committed text starts at 0 and
	// fades in over Editor ticks.
	Fade float64

	// Scrollable objects receive wheel events as a local scroll offset
	// instead of zooming the viewport.
	Scrollable bool
	ScrollY    float64

	kind  ObjectKind
	fadeT *gween.Tween // active fade-in, nil when settled
}

// NewRect creates a rect object.
func NewRect(x, y, w, h float64) *Object {
	return &Object{kind: KindRect, X: x, Y: y, Width: w, Height: h, Fade: 1}
}

// NewTextObject creates a fully opaque text object anchored at (x, y).
func NewTextObject(x, y float64, content string) *Object {
	return &Object{kind: KindText, X: x, Y: y, Content: content, Fade: 1}
}

// Kind returns the object's variant.
func (o *Object) Kind() ObjectKind {
	return o.kind
}

// MoveBy translates the object by a world-space delta.
func (o *Object) MoveBy(dx, dy float64) {
	o.X += dx
	o.Y += dy
}

// ScrollBy adjusts the local scroll offset. Scroll is clamped at zero.
func (o *Object) ScrollBy(dy float64) {
	o.ScrollY += dy
	if o.ScrollY < 0 {
		o.ScrollY = 0
	}
}

// Fading reports whether a fade-in is still in progress.
func (o *Object) Fading() bool {
	return o.fadeT != nil
}

func (o *Object) String() string {
	switch o.kind {
	case KindText:
		return fmt.Sprintf("text#%d{x:%g y:%g %q}", o.ID, o.X, o.Y, o.Content)
	default:
		return fmt.Sprintf("rect#%d{x:%g y:%g w:%g h:%g}", o.ID, o.X, o.Y, o.Width, o.Height)
	}
}
