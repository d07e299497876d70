package geometry

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether point lies inside the rectangle. The right and
// bottom edges are exclusive so adjacent rectangles never share a point.
func (r Rect) Contains(point Vector) bool {
	return point.X >= r.X && point.X < r.X+r.Width &&
		point.Y >= r.Y && point.Y < r.Y+r.Height
}

// GridCell returns the cell at index in a count x count grid laid over r,
// numbered row by row from the top-left.
func (r Rect) GridCell(index, count int) Rect {
	cellWidth := r.Width / float64(count)
	cellHeight := r.Height / float64(count)
	row, col := index/count, index%count

	return Rect{
		X:      r.X + float64(col)*cellWidth,
		Y:      r.Y + float64(row)*cellHeight,
		Width:  cellWidth,
		Height: cellHeight,
	}
}
