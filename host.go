package neuroview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent is a raw pointer event in client (window) coordinates.
type PointerEvent struct {
	Type    EventType
	ClientX float64
	ClientY float64
	Button  MouseButton
}

// PointerHost is the element the navigator listens on. It reports its
// bounding rectangle in client coordinates, shows a cursor affordance, and
// delivers pointer events to registered listeners.
type PointerHost interface {
	Bounds() Rect
	SetCursor(shape CursorShape)
	OnPointerMove(fn func(PointerEvent)) CallbackHandle
	OnPointerDown(fn func(PointerEvent)) CallbackHandle
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	pointerDown []pointerHandler
	nextID      uint32
}

func (r *handlerRegistry) add(event EventType, fn func(PointerEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	h := pointerHandler{id: id, fn: fn}
	switch event {
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	case EventPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	}
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *handlerRegistry) list(event EventType) []pointerHandler {
	if event == EventPointerDown {
		return r.pointerDown
	}
	return r.pointerMove
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this listener so it no longer fires. Removing twice
// is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Surface ---

// Surface is the PointerHost backing a Scene. A live surface reads the
// ebiten cursor and mouse each frame in Poll and drives the OS cursor
// shape; a headless surface only delivers injected or dispatched events.
type Surface struct {
	bounds   Rect
	cursor   CursorShape
	live     bool
	handlers handlerRegistry

	injectQueue []syntheticPointerEvent

	lastX, lastY float64
	havePos      bool
}

var _ PointerHost = (*Surface)(nil)

// NewSurface creates a headless surface covering bounds.
func NewSurface(bounds Rect) *Surface {
	return &Surface{bounds: bounds}
}

// NewEbitenSurface creates a surface that polls ebiten input.
func NewEbitenSurface(bounds Rect) *Surface {
	return &Surface{bounds: bounds, live: true}
}

// Bounds returns the surface rectangle in client coordinates.
func (s *Surface) Bounds() Rect {
	return s.bounds
}

// SetBounds moves or resizes the surface.
func (s *Surface) SetBounds(r Rect) {
	s.bounds = r
}

// Cursor returns the cursor shape last requested.
func (s *Surface) Cursor() CursorShape {
	return s.cursor
}

// SetCursor records the cursor affordance and applies it to the window
// when the surface is live.
func (s *Surface) SetCursor(shape CursorShape) {
	s.cursor = shape
	if !s.live {
		return
	}
	if shape == CursorPointer {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// OnPointerMove registers a listener for pointer moves.
func (s *Surface) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// OnPointerDown registers a listener for primary-button presses.
func (s *Surface) OnPointerDown(fn func(PointerEvent)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// ListenerCount returns how many listeners are registered for event.
func (s *Surface) ListenerCount(event EventType) int {
	return len(s.handlers.list(event))
}

// Dispatch delivers evt to every listener of its type. Listeners may
// remove themselves while being dispatched.
func (s *Surface) Dispatch(evt PointerEvent) {
	hs := s.handlers.list(evt.Type)
	if len(hs) == 0 {
		return
	}
	snapshot := make([]pointerHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(evt)
	}
}

// Poll processes one frame of input. A queued synthetic event takes the
// frame; otherwise a live surface reads the ebiten cursor and left button.
func (s *Surface) Poll() {
	if s.processInjectedInput() {
		return
	}
	if !s.live {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if !s.havePos || x != s.lastX || y != s.lastY {
		s.lastX, s.lastY, s.havePos = x, y, true
		if s.bounds.Contains(x, y) {
			s.Dispatch(PointerEvent{Type: EventPointerMove, ClientX: x, ClientY: y})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.bounds.Contains(x, y) {
		s.Dispatch(PointerEvent{Type: EventPointerDown, ClientX: x, ClientY: y, Button: MouseButtonLeft})
	}
}
