package refboard

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Handle knob fill colors.
var (
	scaleHandleColor  = color.RGBA{R: 0x3d, G: 0x9e, B: 0xff, A: 0xff}
	rotateHandleColor = color.RGBA{R: 0xff, G: 0x8c, B: 0x3d, A: 0xff}
)

// Draw renders the board back-to-front onto screen: the clear color, then
// every card ascending by z with its handle knobs on top. Queued screenshots
// are flushed from the rendered frame, and the dirty flag is cleared.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	for _, c := range s.board.Cards() {
		drawCard(screen, c)
		drawHandles(screen, c)
	}

	s.flushScreenshots(screen)
	s.dirty = false
}

// drawCard draws one card: its image stretched to the card size, or its
// color as a solid rectangle when the image is nil, rotated about the same
// integer-truncated center the drag engine uses.
func drawCard(screen *ebiten.Image, c *Card) {
	src := c.Image
	if src == nil {
		src = WhitePixel
	}
	bounds := src.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(c.Width)/float64(bounds.Dx()),
		float64(c.Height)/float64(bounds.Dy()),
	)
	// Rotate about the center, then place the center back in world space.
	halfW, halfH := float64(c.Width)/2, float64(c.Height)/2
	op.GeoM.Translate(-halfW, -halfH)
	op.GeoM.Rotate(c.Rotation)
	op.GeoM.Translate(float64(c.X)+halfW, float64(c.Y)+halfH)
	op.ColorScale.Scale(float32(c.Color.R), float32(c.Color.G), float32(c.Color.B), float32(c.Color.A))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(src, op)
}

// drawHandles draws the scale and rotate knobs at their world positions on
// the card's rotated corners.
func drawHandles(screen *ebiten.Image, c *Card) {
	m := cardTransform(c)

	ax, ay := rotateHandleAnchor(c)
	rx, ry := transformPoint(m, ax, ay)
	vector.DrawFilledCircle(screen, float32(rx), float32(ry), HandleRadius, rotateHandleColor, true)

	ax, ay = scaleHandleAnchor(c)
	sx, sy := transformPoint(m, ax, ay)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), HandleRadius, scaleHandleColor, true)
}
