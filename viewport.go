package inkwell

import "math"

const (
	defaultZoomSensitivity = 0.001
	defaultMinZoom         = 0.05
	defaultMaxZoom         = 20.0
)

// Viewport maps the unbounded world plane onto the screen:
//
//	screen = world*Zoom + Pan
//	world  = (screen - Pan) / Zoom
//
// Width and Height are the pixel size of the drawing area. They only feed
// VisibleBounds; pan and zoom never depend on them.
type Viewport struct {
	// PanX and PanY are the screen-space translation of the world origin.
	PanX, PanY float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	// It stays within [MinZoom, MaxZoom].
	Zoom float64

	// MinZoom and MaxZoom bound Zoom for every zoom operation.
	MinZoom, MaxZoom float64
	// Sensitivity converts a wheel delta into a relative scale change.
	Sensitivity float64

	Width, Height float64
}

// NewViewport creates a Viewport at the origin with zoom 1 and default bounds.
func NewViewport() *Viewport {
	return &Viewport{
		Zoom:        1.0,
		MinZoom:     defaultMinZoom,
		MaxZoom:     defaultMaxZoom,
		Sensitivity: defaultZoomSensitivity,
	}
}

// ToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ToWorld(sx, sy float64) (wx, wy float64) {
	wx = (sx - v.PanX) / v.Zoom
	wy = (sy - v.PanY) / v.Zoom
	return
}

// ToScreen converts world coordinates to screen coordinates.
func (v *Viewport) ToScreen(wx, wy float64) (sx, sy float64) {
	sx = wx*v.Zoom + v.PanX
	sy = wy*v.Zoom + v.PanY
	return
}

// Pan translates the view by a screen-space delta. Pan is unbounded.
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// ZoomAt scales the view by a wheel delta while keeping the world point under
// the screen point (sx, sy) fixed. Negative deltaY zooms in. The resulting zoom
// is clamped to [MinZoom, MaxZoom]. Returns false if the zoom did not change.
func (v *Viewport) ZoomAt(sx, sy, deltaY float64) bool {
	scale := -deltaY * v.Sensitivity
	return v.SetZoomAt(sx, sy, v.current()*(1+scale))
}

// SetZoomAt sets an absolute zoom while keeping the world point under (sx, sy)
// fixed. The target is clamped like ZoomAt. Returns false if nothing changed.
func (v *Viewport) SetZoomAt(sx, sy, zoom float64) bool {
	cur := v.current()
	next := v.clamp(zoom)
	if next == cur {
		return false
	}
	factor := next/cur - 1
	v.PanX -= (sx - v.PanX) * factor
	v.PanY -= (sy - v.PanY) * factor
	v.Zoom = next
	return true
}

// current returns Zoom, repairing a value that was set out of range directly.
func (v *Viewport) current() float64 {
	if v.Zoom <= 0 || math.IsNaN(v.Zoom) {
		v.Zoom = v.clamp(v.Zoom)
	}
	return v.Zoom
}

// clamp restricts z to the zoom bounds. Non-positive and NaN values map to
// the lower bound.
func (v *Viewport) clamp(z float64) float64 {
	lo, hi := v.MinZoom, v.MaxZoom
	if lo <= 0 {
		lo = defaultMinZoom
	}
	if hi < lo {
		hi = lo
	}
	if math.IsNaN(z) || z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}

// Resize records the pixel size of the drawing area.
func (v *Viewport) Resize(w, h float64) {
	v.Width = w
	v.Height = h
}

// Reset restores zero pan and zoom 1. Bounds and size are kept.
func (v *Viewport) Reset() {
	v.PanX, v.PanY = 0, 0
	v.Zoom = 1.0
}

// VisibleBounds returns the world-space rectangle covered by the drawing area.
func (v *Viewport) VisibleBounds() Rect {
	x0, y0 := v.ToWorld(0, 0)
	x1, y1 := v.ToWorld(v.Width, v.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
