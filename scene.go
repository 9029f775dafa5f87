package refboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the board, the drag engine, the
// event queue, and the pointer state. It is single-threaded by construction:
// all mutations drain through the queue inside Update, one event at a time.
type Scene struct {
	board  *Board
	engine *Engine
	queue  Queue
	debug  bool
	dirty  bool

	// ClearColor fills the canvas before cards are drawn.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG exports.
	ScreenshotDir string

	pointer pointerState

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a scene with an empty board.
func NewScene() *Scene {
	board := NewBoard()
	return &Scene{
		board:         board,
		engine:        NewEngine(board),
		ClearColor:    Color{R: 0.137, G: 0.118, B: 0.176, A: 1},
		ScreenshotDir: "screenshots",
		dirty:         true,
	}
}

// Board returns the scene's card store.
func (s *Scene) Board() *Board {
	return s.board
}

// Engine returns the scene's drag interaction engine.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// CreateCard queues a card creation at the given position. The card exists
// once the next Update drains the queue; collaborators that need the new
// CardID immediately can call Board().CreateCard directly instead, which is
// equally safe outside a drain.
func (s *Scene) CreateCard(img *ebiten.Image, x, y int) {
	s.queue.Push(Event{Kind: EventCreateCard, Image: img, X: x, Y: y})
}

// RemoveCard queues a card removal. Removing a card mid-drag is safe: the
// engine treats events naming a missing card as no-ops and returns to idle.
func (s *Scene) RemoveCard(id CardID) {
	s.queue.Push(Event{Kind: EventRemoveCard, Card: id})
}

// Update advances the scene one tick: it steps the test runner, consumes one
// injected pointer event or samples the real mouse, and drains the event
// queue into the engine. Every event handler runs to completion before the
// next event is popped.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.readPointer()
	}
	if s.queue.Drain(s.apply) {
		s.dirty = true
	}
}

// apply dispatches one event and, in debug mode, verifies the stacking
// invariant afterwards.
func (s *Scene) apply(ev Event) bool {
	changed := dispatch(s.board, s.engine, ev)
	if s.debug {
		s.checkStackingOrder(ev)
	}
	return changed
}

// Dirty reports whether any event since the last Draw changed state.
// Consumers using their own render loop can skip redrawing when false.
func (s *Scene) Dirty() bool {
	return s.dirty
}

// SetDebugMode enables or disables debug mode. When enabled, the dense
// stacking-order invariant is verified after every applied event and a
// violation panics with the offending event kind.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// checkStackingOrder panics if the board's z values are not a permutation of
// 0..N-1. Only called in debug mode; a violation is a programmer error.
func (s *Scene) checkStackingOrder(ev Event) {
	n := s.board.Len()
	seen := make([]bool, n)
	for _, c := range s.board.Cards() {
		if c.Z < 0 || c.Z >= n || seen[c.Z] {
			panic(fmt.Sprintf("refboard debug: z values are not a dense permutation after event kind %d (card %d has z=%d of %d)",
				ev.Kind, c.ID, c.Z, n))
		}
		seen[c.Z] = true
	}
}
