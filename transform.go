package refboard

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// cardTransform computes the card's local-to-world affine matrix. Card-local
// space has its origin at the card's unrotated top-left corner, so a local
// point p maps to world as
//
//	center + Rotate(rotation) * (position + p - center)
//
// with the same integer-truncated center the drag engine rotates about.
func cardTransform(c *Card) [6]float64 {
	cx, cy := c.Center()
	fcx, fcy := float64(cx), float64(cy)

	sin, cos := math.Sincos(c.Rotation)
	rotate := [6]float64{cos, sin, -sin, cos, 0, 0}
	toCenter := [6]float64{1, 0, 0, 1, float64(c.X) - fcx, float64(c.Y) - fcy}
	back := [6]float64{1, 0, 0, 1, fcx, fcy}

	return multiplyAffine(back, multiplyAffine(rotate, toCenter))
}

// worldToCard converts a world-space point into the card's local space,
// undoing the card's rotation about its center. Used for hit testing
// rotated cards.
func worldToCard(c *Card, wx, wy float64) (lx, ly float64) {
	inv := invertAffine(cardTransform(c))
	return transformPoint(inv, wx, wy)
}

// Handle anchor points in card-local space. The rotate handle sits on the
// top-right corner and the scale handle on the bottom-right corner, each a
// knob of radius HandleRadius centered on the corner itself.

// rotateHandleAnchor returns the rotate handle's center in card-local space.
func rotateHandleAnchor(c *Card) (x, y float64) {
	return float64(c.Width), 0
}

// scaleHandleAnchor returns the scale handle's center in card-local space.
func scaleHandleAnchor(c *Card) (x, y float64) {
	return float64(c.Width), float64(c.Height)
}
