package refboard

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPointNear(t *testing.T, name string, gotX, gotY, wantX, wantY float64) {
	t.Helper()
	if math.Abs(gotX-wantX) > epsilon || math.Abs(gotY-wantY) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, gotX, gotY, wantX, wantY)
	}
}

// --- affine helpers ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	got := multiplyAffine(identityTransform, m)
	if got != m {
		t.Errorf("id*m = %v, want %v", got, m)
	}
	got = multiplyAffine(m, identityTransform)
	if got != m {
		t.Errorf("m*id = %v, want %v", got, m)
	}
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	result := multiplyAffine(m, invertAffine(m))
	for i := range result {
		assertNear(t, "m*inv", result[i], identityTransform[i])
	}
}

func TestInvertAffineSingular(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 5, 5}
	if got := invertAffine(m); got != identityTransform {
		t.Errorf("inverse of singular = %v, want identity", got)
	}
}

// --- card transforms ---

func TestCardTransformUnrotated(t *testing.T) {
	c := &Card{X: 40, Y: 60, Width: 100, Height: 80}
	m := cardTransform(c)

	x, y := transformPoint(m, 0, 0)
	assertPointNear(t, "top-left", x, y, 40, 60)

	x, y = transformPoint(m, 100, 80)
	assertPointNear(t, "bottom-right", x, y, 140, 140)
}

func TestCardTransformRotated90(t *testing.T) {
	// A 100x100 card at the origin rotated 90° about its center (50,50):
	// the local top-left corner lands at (100, 0).
	c := &Card{X: 0, Y: 0, Width: 100, Height: 100, Rotation: math.Pi / 2}
	m := cardTransform(c)

	x, y := transformPoint(m, 0, 0)
	assertPointNear(t, "rotated top-left", x, y, 100, 0)

	// The center is the fixed point.
	x, y = transformPoint(m, 50, 50)
	assertPointNear(t, "center", x, y, 50, 50)
}

func TestWorldToCardRoundTrip(t *testing.T) {
	c := &Card{X: 25, Y: -10, Width: 120, Height: 45, Rotation: 0.83}
	m := cardTransform(c)

	wx, wy := transformPoint(m, 17, 31)
	lx, ly := worldToCard(c, wx, wy)
	assertPointNear(t, "round trip", lx, ly, 17, 31)
}

func TestWorldToCardRotated(t *testing.T) {
	c := &Card{X: 0, Y: 0, Width: 100, Height: 100, Rotation: math.Pi / 2}
	lx, ly := worldToCard(c, 100, 0)
	assertPointNear(t, "world (100,0)", lx, ly, 0, 0)
}

func TestHandleAnchors(t *testing.T) {
	c := &Card{Width: 120, Height: 45}

	x, y := rotateHandleAnchor(c)
	assertPointNear(t, "rotate anchor", x, y, 120, 0)

	x, y = scaleHandleAnchor(c)
	assertPointNear(t, "scale anchor", x, y, 120, 45)
}

func TestHandleAngleTracksAspect(t *testing.T) {
	square := &Card{Width: 300, Height: 300}
	assertNear(t, "square handle angle", square.handleAngle(), math.Pi/4)

	wide := &Card{Width: 300, Height: 100}
	assertNear(t, "wide handle angle", wide.handleAngle(), math.Atan2(100, 300))
}
