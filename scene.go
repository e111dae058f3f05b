package inkwell

const defaultTextHeight = 20.0

// Scene is the ordered list of canvas objects. Insertion order is draw order:
// later objects are drawn on top. Objects are only ever appended.
type Scene struct {
	objects    []*Object
	font       Font
	textHeight float64
	nextID     uint32
}

// NewScene creates an empty scene measuring text with DefaultFont.
func NewScene() *Scene {
	return &Scene{
		font:       DefaultFont,
		textHeight: defaultTextHeight,
	}
}

// SetFont sets the font used to measure text hit boxes. A nil font restores
// DefaultFont.
func (s *Scene) SetFont(f Font) {
	if f == nil {
		f = DefaultFont
	}
	s.font = f
}

// Font returns the measuring font.
func (s *Scene) Font() Font {
	return s.font
}

// SetTextHeight sets the height of text hit boxes above the baseline.
func (s *Scene) SetTextHeight(h float64) {
	if h > 0 {
		s.textHeight = h
	}
}

// TextHeight returns the height of text hit boxes above the baseline.
func (s *Scene) TextHeight() float64 {
	return s.textHeight
}

// Append adds obj on top of the scene and assigns its ID.
func (s *Scene) Append(obj *Object) *Object {
	s.nextID++
	obj.ID = s.nextID
	s.objects = append(s.objects, obj)
	return obj
}

// AddRect appends a new rect object.
func (s *Scene) AddRect(x, y, w, h float64) *Object {
	return s.Append(NewRect(x, y, w, h))
}

// AddText appends a new fully opaque text object.
func (s *Scene) AddText(x, y float64, content string) *Object {
	return s.Append(NewTextObject(x, y, content))
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// At returns the object at draw index i.
func (s *Scene) At(i int) *Object {
	return s.objects[i]
}

// Objects returns the objects in draw order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Find returns the object with the given ID, or nil.
func (s *Scene) Find(id uint32) *Object {
	for _, o := range s.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Bounds returns the world-space hit box of obj. Text boxes extend
// TextHeight above the baseline and the measured width to the right.
func (s *Scene) Bounds(obj *Object) Rect {
	switch obj.kind {
	case KindText:
		w, _ := s.font.MeasureString(obj.Content)
		return Rect{X: obj.X, Y: obj.Y - s.textHeight, Width: w, Height: s.textHeight}
	default:
		return Rect{X: obj.X, Y: obj.Y, Width: obj.Width, Height: obj.Height}
	}
}

// HitTest finds the topmost object containing the world point (wx, wy).
// Edges are inclusive. Returns nil if nothing is hit.
func (s *Scene) HitTest(wx, wy float64) *Object {
	// Iterate backward (reverse draw order): topmost object first.
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if s.Bounds(o).Contains(wx, wy) {
			return o
		}
	}
	return nil
}
