package refboard

import "github.com/hajimehoshi/ebiten/v2"

// HitCircle is a circular hit area in card-local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// pointerState tracks the raw pointer between ticks so presses, releases,
// and movement deltas can be derived from absolute cursor readings.
type pointerState struct {
	lastX, lastY int
	leftDown     bool
	rightDown    bool
}

// hitTest finds the topmost grab target under the pointer. Cards are tested
// front-to-back; within a card the handle knobs win over the body, and a
// higher card's body occludes a lower card's handles. The test runs in
// card-local space so rotated cards hit correctly.
func hitTest(b *Board, x, y int) (HandleKind, CardID, bool) {
	cards := b.Cards()
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		lx, ly := worldToCard(c, float64(x), float64(y))

		rx, ry := rotateHandleAnchor(c)
		if (HitCircle{CenterX: rx, CenterY: ry, Radius: HandleRadius}).Contains(lx, ly) {
			return HandleRotate, c.ID, true
		}
		sx, sy := scaleHandleAnchor(c)
		if (HitCircle{CenterX: sx, CenterY: sy, Radius: HandleRadius}).Contains(lx, ly) {
			return HandleScale, c.ID, true
		}
		if lx >= 0 && lx <= float64(c.Width) && ly >= 0 && ly <= float64(c.Height) {
			return HandleBody, c.ID, true
		}
	}
	return HandleBody, 0, false
}

// readPointer samples the real mouse and feeds it through normalization.
// Called once per Scene.Update when no injected event was consumed.
func (s *Scene) readPointer() {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.feedPointer(mx, my, left, right)
}

// feedPointer translates one raw pointer sample into normalized events on
// the scene's queue. Press edges resolve the visual element under the cursor
// to a card and a handle kind; held movement becomes PointerMove with both
// the delta and the absolute position; a left release always becomes
// Release. A right press on a rotate handle becomes ResetRotation.
func (s *Scene) feedPointer(x, y int, left, right bool) {
	ps := &s.pointer
	dx, dy := x-ps.lastX, y-ps.lastY

	switch {
	case left && !ps.leftDown:
		if kind, id, ok := hitTest(s.board, x, y); ok {
			s.queue.Push(Event{Kind: EventPressHandle, Handle: kind, Card: id})
		}
	case !left && ps.leftDown:
		s.queue.Push(Event{Kind: EventRelease})
	case left && (dx != 0 || dy != 0):
		s.queue.Push(Event{Kind: EventPointerMove, DX: dx, DY: dy, X: x, Y: y})
	}

	if right && !ps.rightDown {
		if kind, id, ok := hitTest(s.board, x, y); ok && kind == HandleRotate {
			s.queue.Push(Event{Kind: EventResetRotation, Card: id})
		}
	}

	ps.lastX, ps.lastY = x, y
	ps.leftDown, ps.rightDown = left, right
}
