package timer

import (
	"math"
	"testing"
)

func TestFillCount(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		cells int
		want  int
	}{
		{"empty", 0, 400, 0},
		{"half", 0.5, 400, 200},
		{"floors", 0.0049, 400, 1},
		{"just below full", 0.999, 400, 399},
		{"largest ratio below one", math.Nextafter(1, 0), 400, 399},
		{"full", 1, 400, 400},
		{"over full", 1.7, 400, 400},
		{"negative", -0.2, 400, 0},
		{"no cells", 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillCount(tt.ratio, tt.cells); got != tt.want {
				t.Errorf("FillCount(%v, %d) = %d, want %d", tt.ratio, tt.cells, got, tt.want)
			}
		})
	}
}

func TestCellFilled(t *testing.T) {
	const fill = 3
	for i := 0; i < 6; i++ {
		want := i < fill
		if got := CellFilled(i, fill); got != want {
			t.Errorf("CellFilled(%d, %d) = %v, want %v", i, fill, got, want)
		}
	}
}
