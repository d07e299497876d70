package timer

import (
	"cmp"
	"math"
)

// FillCount projects an elapsed ratio onto a grid of cells. The ratio is
// clamped to [0, 1] and floored, so the last cell only fills at ratio 1.
func FillCount(ratio float64, cells int) int {
	if cells <= 0 {
		return 0
	}
	ratio = clampValue(ratio, 0, 1)
	if ratio >= 1 {
		return cells
	}

	// ratio < 1 must never round up to a full grid
	return clampValue(int(math.Floor(ratio*float64(cells))), 0, cells-1)
}

// CellFilled reports whether the cell at index is filled for the given fill count.
func CellFilled(index, fill int) bool {
	return index < fill
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
