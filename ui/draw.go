package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/gridtimer/assets"
	"github.com/meghashyamc/gridtimer/geometry"
)

var (
	spentColor    color.Color = color.White
	leftColor     color.Color = color.Black
	disabledColor color.Color = color.RGBA{90, 90, 90, 255}
	pausedColor   color.Color = color.RGBA{255, 200, 60, 255}
)

func fillRect(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(assets.Pixel, op)
}

func drawRectangleOutline(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	// Draw top line
	fillRect(screen, geometry.NewRect(rect.X, rect.Y, rect.Width, 1), col)

	// Draw bottom line
	fillRect(screen, geometry.NewRect(rect.X, rect.Y+rect.Height-1, rect.Width, 1), col)

	// Draw left line
	fillRect(screen, geometry.NewRect(rect.X, rect.Y, 1, rect.Height), col)

	// Draw right line
	fillRect(screen, geometry.NewRect(rect.X+rect.Width-1, rect.Y, 1, rect.Height), col)
}

func drawText(screen *ebiten.Image, s string, face text.Face, at geometry.Vector, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

// drawCenteredText draws s centered inside rect.
func drawCenteredText(screen *ebiten.Image, s string, face text.Face, rect geometry.Rect, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(rect.X+rect.Width/2, rect.Y+rect.Height/2)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
