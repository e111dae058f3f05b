package inkwell

import "testing"

func TestGridDots(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Rect
		spacing float64
		want    int
	}{
		{"aligned", Rect{0, 0, 100, 100}, 40, 9},
		{"exclusive far edge", Rect{0, 0, 80, 80}, 40, 4},
		{"negative origin", Rect{-50, -45, 100, 80}, 40, 6},
		{"smaller than spacing", Rect{1, 1, 10, 10}, 40, 0},
		{"zero spacing", Rect{0, 0, 100, 100}, 0, 0},
		{"empty bounds", Rect{0, 0, 0, 100}, 40, 0},
		{"too dense", Rect{0, 0, 1e6, 1e6}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got := GridDots(tt.bounds, tt.spacing, func(x, y float64) {
				calls++
				if !tt.bounds.Contains(x, y) {
					t.Errorf("dot (%v,%v) outside %v", x, y, tt.bounds)
				}
			})
			if got != tt.want || calls != tt.want {
				t.Errorf("GridDots = %d (calls %d), want %d", got, calls, tt.want)
			}
		})
	}
}

func TestGridDotsOnMultiples(t *testing.T) {
	GridDots(Rect{-130, 70, 200, 200}, 40, func(x, y float64) {
		if int(x)%40 != 0 || int(y)%40 != 0 {
			t.Errorf("dot (%v,%v) not on a 40-unit multiple", x, y)
		}
	})
}
