package refboard

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// HandleRadius is the radius in pixels of the scale and rotate handle knobs.
const HandleRadius = 5

// MinCardSize is the smallest width or height a card can be resized to.
// Any smaller and the two corner handles would overlap.
const MinCardSize = 2*HandleRadius + 1

// Default card dimensions used by CreateCard.
const (
	DefaultCardWidth  = 300
	DefaultCardHeight = 300
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when converting for the renderer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default card tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied 8-bit color for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// WhitePixel is a 1x1 white image used for solid color cards (cards with a
// nil Image render their Color through this).
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// HandleKind identifies which grab target on a card a press landed on.
type HandleKind uint8

const (
	HandleBody   HandleKind = iota // the card body: drag to move, raises to front
	HandleScale                    // bottom-right knob: drag to resize
	HandleRotate                   // top-right knob: drag to rotate, right-click to reset
)
