package inkwell

import "math"

// maxGridDots caps a single GridDots walk. Past this the dots would be
// sub-pixel noise anyway.
const maxGridDots = 1 << 16

// GridDots calls fn for every grid intersection in bounds, with grid lines
// every spacing world units starting from the world origin. The left and
// top edges are inclusive, the right and bottom edges exclusive. Returns the
// number of dots visited. Nothing is visited if spacing is not positive or
// the grid would exceed maxGridDots.
func GridDots(bounds Rect, spacing float64, fn func(x, y float64)) int {
	if spacing <= 0 || bounds.Width <= 0 || bounds.Height <= 0 {
		return 0
	}
	startX := math.Ceil(bounds.X/spacing) * spacing
	startY := math.Ceil(bounds.Y/spacing) * spacing
	endX := bounds.X + bounds.Width
	endY := bounds.Y + bounds.Height

	cols := math.Ceil((endX - startX) / spacing)
	rows := math.Ceil((endY - startY) / spacing)
	if cols <= 0 || rows <= 0 || cols*rows > maxGridDots {
		return 0
	}

	n := 0
	for i := 0.0; i < cols; i++ {
		x := startX + i*spacing
		if x >= endX {
			break
		}
		for j := 0.0; j < rows; j++ {
			y := startY + j*spacing
			if y >= endY {
				break
			}
			fn(x, y)
			n++
		}
	}
	return n
}
