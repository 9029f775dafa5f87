package refboard

import "github.com/hajimehoshi/ebiten/v2"

// EventKind identifies a kind of normalized board event.
type EventKind uint8

const (
	EventPressHandle   EventKind = iota // a grab target was pressed
	EventPointerMove                    // the pointer moved (delta + absolute position)
	EventResetRotation                  // right-click on a rotate handle
	EventRelease                        // the pointer button was released
	EventCreateCard                     // the presentation layer requested a new card
	EventRemoveCard                     // the presentation layer requested a removal
)

// Event is the normalized vocabulary the presentation layer speaks to the
// board. Raw platform pointer input (device-pixel deltas and absolute
// coordinates, element hit resolution) is translated into these before any
// mutation happens. Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind   EventKind
	Handle HandleKind    // EventPressHandle
	Card   CardID        // EventPressHandle, EventResetRotation, EventRemoveCard
	DX, DY int           // EventPointerMove delta
	X, Y   int           // EventPointerMove absolute position; EventCreateCard position
	Image  *ebiten.Image // EventCreateCard content
}

// Queue is a single-consumer FIFO of normalized events. Every board mutation
// funnels through one Queue drained on the update tick, which is what makes
// the "no concurrent mutation" guarantee explicit: events apply strictly in
// arrival order, one at a time, with no batching or coalescing of deltas.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain applies every pending event in arrival order and reports whether any
// of them changed state. apply runs to completion for each event before the
// next is popped.
func (q *Queue) Drain(apply func(Event) bool) bool {
	changed := false
	for len(q.events) > 0 {
		ev := q.events[0]
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
		if apply(ev) {
			changed = true
		}
	}
	return changed
}

// dispatch routes one normalized event to the drag engine or the board and
// reports whether it changed state.
func dispatch(board *Board, engine *Engine, ev Event) bool {
	switch ev.Kind {
	case EventPressHandle:
		return engine.PressHandle(ev.Handle, ev.Card)
	case EventPointerMove:
		return engine.PointerMove(ev.DX, ev.DY, ev.X, ev.Y)
	case EventResetRotation:
		return engine.ResetRotation(ev.Card)
	case EventRelease:
		return engine.Release()
	case EventCreateCard:
		board.CreateCard(ev.Image, ev.X, ev.Y)
		return true
	case EventRemoveCard:
		return board.RemoveCard(ev.Card)
	}
	return false
}
