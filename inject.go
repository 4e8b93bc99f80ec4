package neuroview

// syntheticPointerEvent represents a single injected pointer event in
// client coordinates, delivered exactly like real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	eventTy EventType
}

// InjectMove queues a pointer move at the given client coordinates. The
// event is consumed on the next Poll.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, eventTy: EventPointerMove})
}

// InjectPress queues a primary-button press at the given client coordinates.
func (s *Surface) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, eventTy: EventPointerDown})
}

// InjectClick is a convenience that queues a move followed by a press at the
// same coordinates, so hover state is current when the press lands.
// Consumes two frames.
func (s *Surface) InjectClick(x, y float64) {
	s.InjectMove(x, y)
	s.InjectPress(x, y)
}

// Pending returns the number of queued synthetic events.
func (s *Surface) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input is skipped).
func (s *Surface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.lastX, s.lastY, s.havePos = evt.x, evt.y, true
	s.Dispatch(PointerEvent{Type: evt.eventTy, ClientX: evt.x, ClientY: evt.y, Button: MouseButtonLeft})
	return true
}
