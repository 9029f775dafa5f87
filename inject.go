package refboard

// syntheticPointerEvent is a single injected pointer sample. It flows
// through the exact same normalization path as real mouse input, so
// injected interactions exercise hit testing, the event queue, and the
// engine end to end.
type syntheticPointerEvent struct {
	x, y  int
	left  bool
	right bool
}

// InjectPress queues a left-button press at the given coordinates. The
// sample is consumed on the next Update.
func (s *Scene) InjectPress(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, left: true})
}

// InjectMove queues a pointer move with the left button held down. Use
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, left: true})
}

// InjectRelease queues a left-button release at the given coordinates.
func (s *Scene) InjectRelease(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two updates.
func (s *Scene) InjectClick(x, y int) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectRightClick queues a right-button press and release at the given
// coordinates. Over a rotate handle this resets the card's rotation.
// Consumes two updates.
func (s *Scene) InjectRightClick(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, right: true})
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate updates ending exactly on
// (toX, toY), and a release there. The total sequence consumes `frames`
// updates. Minimum frames is 3 (press + move + release); a release alone
// carries no displacement.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY int, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/steps
		y := fromY + (toY-fromY)*i/steps
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one sample from the inject queue and feeds it
// through pointer normalization. Returns true if a sample was consumed
// (real mouse input is skipped for that update).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.feedPointer(evt.x, evt.y, evt.left, evt.right)
	return true
}
