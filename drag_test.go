package refboard

import (
	"math"
	"testing"
)

func newTestEngine(t *testing.T) (*Board, *Engine, CardID) {
	t.Helper()
	b := NewBoard()
	id := b.CreateCard(nil, 0, 0)
	return b, NewEngine(b), id
}

func TestPressBodyRaisesAndMoves(t *testing.T) {
	b := NewBoard()
	bottom := b.CreateCard(nil, 0, 0)
	b.CreateCard(nil, 0, 0)
	e := NewEngine(b)

	if !e.PressHandle(HandleBody, bottom) {
		t.Fatal("PressHandle returned false")
	}
	if got := e.State(); got != (DragState{Mode: DragMove, Card: bottom}) {
		t.Errorf("state = %+v, want moving %d", got, bottom)
	}
	if z := b.CardByID(bottom).Z; z != 1 {
		t.Errorf("pressed card z = %d, want 1 (raised to front)", z)
	}
}

func TestPressHandlesDoNotRaise(t *testing.T) {
	tests := []struct {
		name string
		kind HandleKind
		mode DragMode
	}{
		{"scale", HandleScale, DragResize},
		{"rotate", HandleRotate, DragRotate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			bottom := b.CreateCard(nil, 0, 0)
			b.CreateCard(nil, 0, 0)
			e := NewEngine(b)

			e.PressHandle(tt.kind, bottom)
			if got := e.State(); got != (DragState{Mode: tt.mode, Card: bottom}) {
				t.Errorf("state = %+v, want mode %d on card %d", got, tt.mode, bottom)
			}
			if z := b.CardByID(bottom).Z; z != 0 {
				t.Errorf("z = %d, want 0 (handle press must not raise)", z)
			}
		})
	}
}

func TestPressMissingCardGoesIdle(t *testing.T) {
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleBody, id)
	b.RemoveCard(id)

	if e.PressHandle(HandleBody, id) {
		t.Error("press on a missing card returned true")
	}
	if e.State().Mode != DragIdle {
		t.Errorf("state = %+v, want idle", e.State())
	}
}

func TestPressReentryAbandonsPriorDrag(t *testing.T) {
	b := NewBoard()
	first := b.CreateCard(nil, 0, 0)
	second := b.CreateCard(nil, 0, 0)
	e := NewEngine(b)

	e.PressHandle(HandleBody, first)
	e.PressHandle(HandleScale, second)
	if got := e.State(); got != (DragState{Mode: DragResize, Card: second}) {
		t.Errorf("state = %+v, want resizing %d", got, second)
	}
}

func TestMoveWhileIdleIsNoop(t *testing.T) {
	b, e, id := newTestEngine(t)
	if e.PointerMove(10, 10, 10, 10) {
		t.Error("idle move returned true")
	}
	c := b.CardByID(id)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("card moved to (%d, %d) while idle", c.X, c.Y)
	}
}

func TestMoveTranslatesUnclamped(t *testing.T) {
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleBody, id)
	e.PointerMove(7, -3, 7, -3)
	e.PointerMove(-100, -100, -93, -103)

	c := b.CardByID(id)
	if c.X != -93 || c.Y != -103 {
		t.Errorf("position = (%d, %d), want (-93, -103)", c.X, c.Y)
	}
}

func TestResizeClampsPerAxis(t *testing.T) {
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleScale, id)
	e.PointerMove(-1000, 50, 0, 0)

	c := b.CardByID(id)
	if c.Width != MinCardSize {
		t.Errorf("width = %d, want %d", c.Width, MinCardSize)
	}
	if c.Height != 350 {
		t.Errorf("height = %d, want 350 (other axis grows freely)", c.Height)
	}
}

func TestResizeFloorScenario(t *testing.T) {
	// A 300x300 card shrunk by (-1000, -1000) clamps to (11, 11).
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleScale, id)
	e.PointerMove(-1000, -1000, 0, 0)

	c := b.CardByID(id)
	if c.Width != 11 || c.Height != 11 {
		t.Errorf("size = (%d, %d), want (11, 11)", c.Width, c.Height)
	}

	// The floor is idempotent: shrinking further changes nothing.
	e.PointerMove(-1000, -1000, 0, 0)
	if c.Width != 11 || c.Height != 11 {
		t.Errorf("size after second shrink = (%d, %d), want (11, 11)", c.Width, c.Height)
	}
}

func TestRotateScenario(t *testing.T) {
	// Card at (0,0) sized 300x300, cursor at (450,150): the center is
	// (150,150), the target angle is atan2(0,300) = 0, and the handle
	// offset is atan2(300,300) = π/4, so the rotation lands on π/4.
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleRotate, id)
	e.PointerMove(0, 0, 450, 150)

	assertNear(t, "rotation", b.CardByID(id).Rotation, math.Pi/4)
}

func TestRotateDeterministicUnderZeroDelta(t *testing.T) {
	// Holding the cursor still re-derives the same rotation; nothing
	// accumulates.
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleRotate, id)
	e.PointerMove(0, 0, 410, 305)
	first := b.CardByID(id).Rotation
	for i := 0; i < 5; i++ {
		e.PointerMove(0, 0, 410, 305)
	}
	assertNear(t, "rotation after repeats", b.CardByID(id).Rotation, first)
}

func TestRotateUsesCurrentSize(t *testing.T) {
	// The handle offset is recomputed from the live size, so resizing and
	// then rotating compensates with the new aspect ratio.
	b, e, id := newTestEngine(t)
	c := b.CardByID(id)
	c.Width, c.Height = 300, 100

	e.PressHandle(HandleRotate, id)
	e.PointerMove(0, 0, 450, 50) // center (150,50): target angle 0
	assertNear(t, "rotation", c.Rotation, math.Atan2(100, 300))
}

func TestRotateCursorAtCenter(t *testing.T) {
	// atan2(0,0) is defined and returns 0, so the rotation is exactly the
	// handle offset. No special casing.
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleRotate, id)
	e.PointerMove(0, 0, 150, 150)
	assertNear(t, "rotation", b.CardByID(id).Rotation, math.Pi/4)
}

func TestReleaseAlwaysGoesIdle(t *testing.T) {
	for _, kind := range []HandleKind{HandleBody, HandleScale, HandleRotate} {
		_, e, id := newTestEngine(t)
		e.PressHandle(kind, id)
		if !e.Release() {
			t.Errorf("kind %d: release of an active drag returned false", kind)
		}
		if e.State().Mode != DragIdle {
			t.Errorf("kind %d: state = %+v, want idle", kind, e.State())
		}
	}
}

func TestReleaseWhileIdle(t *testing.T) {
	_, e, _ := newTestEngine(t)
	if e.Release() {
		t.Error("release while idle returned true")
	}
}

func TestResetRotationKeepsDragState(t *testing.T) {
	b, e, id := newTestEngine(t)
	b.CardByID(id).Rotation = 2.5
	e.PressHandle(HandleScale, id)

	if !e.ResetRotation(id) {
		t.Fatal("ResetRotation returned false")
	}
	if r := b.CardByID(id).Rotation; r != 0 {
		t.Errorf("rotation = %v, want 0", r)
	}
	if got := e.State(); got != (DragState{Mode: DragResize, Card: id}) {
		t.Errorf("state = %+v, want unchanged resize", got)
	}
}

func TestCardRemovedMidDrag(t *testing.T) {
	b, e, id := newTestEngine(t)
	e.PressHandle(HandleBody, id)
	b.RemoveCard(id)

	if e.PointerMove(10, 10, 10, 10) {
		t.Error("move targeting a removed card returned true")
	}
	if e.State().Mode != DragIdle {
		t.Errorf("state = %+v, want idle after dangling move", e.State())
	}
}
