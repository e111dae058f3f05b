package inkwell

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if s.TextHeight() != defaultTextHeight {
		t.Errorf("TextHeight = %v, want %v", s.TextHeight(), defaultTextHeight)
	}
	if s.HitTest(0, 0) != nil {
		t.Error("HitTest on empty scene should return nil")
	}
}

func TestSceneAppendAssignsIDsInOrder(t *testing.T) {
	s := NewScene()
	a := s.AddRect(0, 0, 10, 10)
	b := s.AddText(5, 5, "hi")
	c := s.Append(NewRect(1, 1, 1, 1))

	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Errorf("IDs = %d,%d,%d, want 1,2,3", a.ID, b.ID, c.ID)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for i, want := range []*Object{a, b, c} {
		if s.At(i) != want {
			t.Errorf("At(%d) = %v, want %v", i, s.At(i), want)
		}
	}
	if s.Find(2) != b {
		t.Error("Find(2) should return the text object")
	}
	if s.Find(99) != nil {
		t.Error("Find(99) should return nil")
	}
}

func TestSceneHitTestRectBoundary(t *testing.T) {
	s := NewScene()
	s.AddRect(10, 10, 50, 20)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 60, 30, true},
		{"inside", 35, 20, true},
		{"just right", 60.01, 10, false},
		{"just below", 10, 30.01, false},
		{"just left", 9.99, 20, false},
		{"just above", 20, 9.99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HitTest(tt.x, tt.y) != nil
			if got != tt.want {
				t.Errorf("HitTest(%v, %v) hit = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSceneHitTestText(t *testing.T) {
	s := NewScene()
	s.SetFont(FixedFont{Advance: 10, Height: 20})
	txt := s.AddText(100, 100, "hello") // box [100,150] x [80,100]

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"baseline left", 100, 100, true},
		{"top right", 150, 80, true},
		{"middle", 125, 90, true},
		{"below baseline", 125, 100.5, false},
		{"above box", 125, 79.5, false},
		{"past width", 150.5, 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HitTest(tt.x, tt.y) == txt
			if got != tt.want {
				t.Errorf("HitTest(%v, %v) hit = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSceneHitTestTopmostFirst(t *testing.T) {
	s := NewScene()
	bottom := s.AddRect(0, 0, 100, 100)
	top := s.AddRect(50, 50, 100, 100)

	if got := s.HitTest(75, 75); got != top {
		t.Errorf("overlap hit = %v, want top %v", got, top)
	}
	if got := s.HitTest(25, 25); got != bottom {
		t.Errorf("bottom-only hit = %v, want %v", got, bottom)
	}
}

func TestSceneBoundsUsesTextHeight(t *testing.T) {
	s := NewScene()
	s.SetTextHeight(32)
	s.SetTextHeight(-1) // ignored
	obj := s.AddText(0, 100, "ab")
	b := s.Bounds(obj)
	want := Rect{X: 0, Y: 68, Width: 20, Height: 32}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
}

func TestSceneSetFontNilRestoresDefault(t *testing.T) {
	s := NewScene()
	s.SetFont(FixedFont{Advance: 3, Height: 3})
	s.SetFont(nil)
	if s.Font() != Font(DefaultFont) {
		t.Errorf("Font = %v, want DefaultFont", s.Font())
	}
}

func TestObjectKindIsFixed(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	txt := NewTextObject(0, 0, "x")
	if r.Kind() != KindRect {
		t.Errorf("rect Kind = %v, want rect", r.Kind())
	}
	if txt.Kind() != KindText {
		t.Errorf("text Kind = %v, want text", txt.Kind())
	}
	r.MoveBy(3, 4)
	if r.Kind() != KindRect || r.X != 3 || r.Y != 4 {
		t.Errorf("after MoveBy: %v", r)
	}
}

func TestObjectScrollBy(t *testing.T) {
	o := NewRect(0, 0, 10, 10)
	o.ScrollBy(30)
	o.ScrollBy(-10)
	if o.ScrollY != 20 {
		t.Errorf("ScrollY = %v, want 20", o.ScrollY)
	}
	o.ScrollBy(-100)
	if o.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want clamp to 0", o.ScrollY)
	}
}
