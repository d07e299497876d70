package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Pixel is a 1x1 white image; scale and tint it to draw solid rectangles.
	Pixel *ebiten.Image

	LabelFont  *text.GoTextFace
	ButtonFont *text.GoTextFace
	EntryFont  *text.GoTextFace
	StatusFont *text.GoTextFace
)

func init() {
	Pixel = ebiten.NewImage(1, 1)
	Pixel.Fill(color.White)

	boldSource := loadFontSource(gobold.TTF)
	regularSource := loadFontSource(goregular.TTF)

	LabelFont = &text.GoTextFace{Source: boldSource, Size: 20}
	ButtonFont = &text.GoTextFace{Source: boldSource, Size: 18}
	EntryFont = &text.GoTextFace{Source: boldSource, Size: 20}
	StatusFont = &text.GoTextFace{Source: regularSource, Size: 16}
}

func loadFontSource(ttf []byte) *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return source
}
