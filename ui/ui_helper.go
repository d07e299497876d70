package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/gridtimer/geometry"
)

func getCurrentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}
