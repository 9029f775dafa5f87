package refboard

import "math"

// DragMode enumerates what the pointer is currently manipulating.
type DragMode uint8

const (
	DragIdle   DragMode = iota // pointer movement is ignored
	DragMove                   // the target card follows the pointer
	DragResize                 // the target card is resized from the bottom-right
	DragRotate                 // the target card is rotated about its center
)

// DragState is the engine's current interaction: a mode plus, for every mode
// except DragIdle, the target card. Modeled as one tagged value rather than
// parallel flags so dispatch stays exhaustive.
type DragState struct {
	Mode DragMode
	Card CardID
}

// Engine interprets normalized pointer events into geometric mutations of a
// board. It is a four-state machine: no event is ever rejected, every event
// has a defined effect in every state (a no-op where inapplicable).
//
// Each event method returns whether the board changed, mirroring a
// per-message "redraw needed" result. Events naming a card that no longer
// exists are recoverable no-ops that drop the engine back to idle; an
// interaction must never take down the UI loop.
type Engine struct {
	board *Board
	state DragState
}

// NewEngine creates an engine driving the given board.
func NewEngine(board *Board) *Engine {
	return &Engine{board: board}
}

// State returns the current drag state.
func (e *Engine) State() DragState {
	return e.state
}

// PressHandle begins an interaction with the given grab target. A press on
// the card body raises the card to the front; handle presses do not. A press
// while another drag is in flight abandons the prior drag in favor of the
// new target.
func (e *Engine) PressHandle(kind HandleKind, id CardID) bool {
	if e.board.CardByID(id) == nil {
		e.state = DragState{}
		return false
	}
	switch kind {
	case HandleBody:
		e.board.RaiseToFront(id)
		e.state = DragState{Mode: DragMove, Card: id}
	case HandleScale:
		e.state = DragState{Mode: DragResize, Card: id}
	case HandleRotate:
		e.state = DragState{Mode: DragRotate, Card: id}
	}
	return true
}

// PointerMove applies a pointer displacement. dx, dy is the delta since the
// previous event; px, py is the absolute pointer position. The effect
// depends on the current state:
//
//   - DragMove: the card translates by the delta, unclamped.
//   - DragResize: each axis grows by its delta and clamps independently at
//     MinCardSize, so shrinking one axis below the floor while growing the
//     other is fine.
//   - DragRotate: the rotation is re-derived from the absolute pointer
//     position so the rotate handle stays on the ray from the card center
//     to the cursor. The handle angle offset compensates for the handle
//     sitting on a corner rather than an axis, and is recomputed from the
//     current size so resizing then rotating behaves correctly.
//   - DragIdle: nothing.
func (e *Engine) PointerMove(dx, dy, px, py int) bool {
	if e.state.Mode == DragIdle {
		return false
	}
	card := e.board.CardByID(e.state.Card)
	if card == nil {
		e.state = DragState{}
		return false
	}
	switch e.state.Mode {
	case DragMove:
		card.X += dx
		card.Y += dy
	case DragResize:
		card.Width = max(MinCardSize, card.Width+dx)
		card.Height = max(MinCardSize, card.Height+dy)
	case DragRotate:
		cx, cy := card.Center()
		target := math.Atan2(float64(py-cy), float64(px-cx))
		card.Rotation = target + card.handleAngle()
	}
	return true
}

// ResetRotation zeroes the card's rotation. Usable in any engine state and
// never changes the state.
func (e *Engine) ResetRotation(id CardID) bool {
	return e.board.ResetRotation(id)
}

// Release ends the current interaction unconditionally.
func (e *Engine) Release() bool {
	changed := e.state.Mode != DragIdle
	e.state = DragState{}
	return changed
}
