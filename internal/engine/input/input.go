// Package input defines the editor's typed input events and dispatches them
// to a handler in arrival order.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventKeyUp
	EventPointerMove
	EventPointerDown
	EventPointerUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	default:
		return "none"
	}
}

// Key is the subset of keys the editor reacts to. Everything else arrives as
// KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyShift
	KeyEscape
	KeyF12
)

// Event is a host-independent input event. Pointer coordinates are pixels
// from the top-left of the window, or of the view once routed.
type Event struct {
	Type   EventType
	X, Y   int
	Width  int
	Height int
	Key    Key
	Button uint8
}

// Handler receives routed events.
type Handler interface {
	HandlePointerMove(x, y int)
	HandlePointerDown(x, y int)
	HandlePointerUp(x, y int)
	HandleKeyDown(key Key)
	HandleKeyUp(key Key)
	HandleResize(width, height int)
}

// Router dispatches events to its handler synchronously. Each event is fully
// handled before the next one is looked at.
//
// Several physical keys can map to one Key (left and right shift). The
// handler sees one key-down when the first is pressed and one key-up when the
// last is released.
type Router struct {
	handler Handler
	quit    bool
	pressed map[Key]int
}

// NewRouter creates a router bound to h.
func NewRouter(h Handler) *Router {
	return &Router{
		handler: h,
		pressed: make(map[Key]int),
	}
}

// Dispatch delivers events in order. It returns true once a quit event has
// been seen; later events in the same batch are dropped.
func (r *Router) Dispatch(events ...Event) bool {
	for _, e := range events {
		if r.quit {
			break
		}
		r.dispatch(e)
	}
	return r.quit
}

func (r *Router) dispatch(e Event) {
	switch e.Type {
	case EventQuit:
		r.quit = true
	case EventResize:
		r.handler.HandleResize(e.Width, e.Height)
	case EventKeyDown:
		r.pressed[e.Key]++
		if r.pressed[e.Key] == 1 {
			r.handler.HandleKeyDown(e.Key)
		}
	case EventKeyUp:
		// An unmatched up (key held before the window had focus) still
		// reaches the handler.
		if r.pressed[e.Key] > 1 {
			r.pressed[e.Key]--
			return
		}
		delete(r.pressed, e.Key)
		r.handler.HandleKeyUp(e.Key)
	case EventPointerMove:
		r.handler.HandlePointerMove(e.X, e.Y)
	case EventPointerDown:
		r.handler.HandlePointerDown(e.X, e.Y)
	case EventPointerUp:
		r.handler.HandlePointerUp(e.X, e.Y)
	}
}

// Quit reports whether a quit event has been dispatched.
func (r *Router) Quit() bool {
	return r.quit
}

// IsKeyDown reports whether key is currently held.
func (r *Router) IsKeyDown(key Key) bool {
	return r.pressed[key] > 0
}
