package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/gridtimer/assets"
	"github.com/meghashyamc/gridtimer/geometry"
)

type Button struct {
	label   string
	rect    geometry.Rect
	enabled bool
}

func NewButton(label string, rect geometry.Rect, enabled bool) *Button {
	return &Button{
		label:   label,
		rect:    rect,
		enabled: enabled,
	}
}

// Clicked reports whether an enabled button was hit at point.
func (b *Button) Clicked(point geometry.Vector) bool {
	return b.enabled && b.rect.Contains(point)
}

func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Draw renders the button, inverted while hovered.
func (b *Button) Draw(screen *ebiten.Image, mouse geometry.Vector) {
	background, foreground := leftColor, spentColor
	switch {
	case !b.enabled:
		foreground = disabledColor
	case b.rect.Contains(mouse):
		background, foreground = spentColor, leftColor
	}

	fillRect(screen, b.rect, background)
	drawRectangleOutline(screen, b.rect, foreground)
	drawCenteredText(screen, b.label, assets.ButtonFont, b.rect, foreground)
}
