package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/gridtimer/geometry"
	"github.com/meghashyamc/gridtimer/timer"
)

// GridView draws count x count cells over a square canvas. It holds only the
// last fill count it was given.
type GridView struct {
	canvas geometry.Rect
	count  int
	fill   int
}

func NewGridView(canvas geometry.Rect, count int) *GridView {
	return &GridView{
		canvas: canvas,
		count:  count,
	}
}

func (g *GridView) Cells() int {
	return g.count * g.count
}

func (g *GridView) SetFillCount(n int) {
	g.fill = n
}

func (g *GridView) Draw(screen *ebiten.Image) {
	for i := 0; i < g.Cells(); i++ {
		cell := g.canvas.GridCell(i, g.count)
		if timer.CellFilled(i, g.fill) {
			fillRect(screen, cell, spentColor)
		} else {
			fillRect(screen, cell, leftColor)
		}
		drawRectangleOutline(screen, cell, spentColor)
	}
}
