package input

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder logs every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) HandlePointerMove(x, y int) { r.add("move %d,%d", x, y) }
func (r *recorder) HandlePointerDown(x, y int) { r.add("down %d,%d", x, y) }
func (r *recorder) HandlePointerUp(x, y int)   { r.add("up %d,%d", x, y) }
func (r *recorder) HandleKeyDown(k Key)        { r.add("keydown %d", k) }
func (r *recorder) HandleKeyUp(k Key)          { r.add("keyup %d", k) }
func (r *recorder) HandleResize(w, h int)      { r.add("resize %dx%d", w, h) }

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func TestDispatchPreservesOrder(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)

	quit := r.Dispatch(
		Event{Type: EventKeyDown, Key: KeyShift},
		Event{Type: EventPointerDown, X: 10, Y: 20},
		Event{Type: EventPointerMove, X: 11, Y: 21},
		Event{Type: EventPointerUp, X: 12, Y: 22},
		Event{Type: EventKeyUp, Key: KeyShift},
		Event{Type: EventResize, Width: 640, Height: 480},
		Event{Type: EventNone},
	)

	assert.False(t, quit)
	assert.Equal(t, []string{
		"keydown 1",
		"down 10,20",
		"move 11,21",
		"up 12,22",
		"keyup 1",
		"resize 640x480",
	}, rec.calls)
}

func TestQuitStopsDispatch(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)

	quit := r.Dispatch(
		Event{Type: EventPointerMove, X: 1, Y: 1},
		Event{Type: EventQuit},
		Event{Type: EventPointerMove, X: 2, Y: 2},
	)

	assert.True(t, quit)
	assert.True(t, r.Quit())
	assert.Equal(t, []string{"move 1,1"}, rec.calls)
	assert.True(t, r.Dispatch(Event{Type: EventPointerDown}))
	assert.Len(t, rec.calls, 1)
}

func TestIsKeyDown(t *testing.T) {
	r := NewRouter(&recorder{})

	r.Dispatch(Event{Type: EventKeyDown, Key: KeyShift})
	assert.True(t, r.IsKeyDown(KeyShift))
	assert.False(t, r.IsKeyDown(KeyF12))

	r.Dispatch(Event{Type: EventKeyUp, Key: KeyShift})
	assert.False(t, r.IsKeyDown(KeyShift))
}

func TestSharedKeyReleasedByLastSide(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)

	r.Dispatch(
		Event{Type: EventKeyDown, Key: KeyShift},
		Event{Type: EventKeyDown, Key: KeyShift},
		Event{Type: EventKeyUp, Key: KeyShift},
	)
	assert.True(t, r.IsKeyDown(KeyShift))
	assert.Equal(t, []string{"keydown 1"}, rec.calls)

	r.Dispatch(Event{Type: EventKeyUp, Key: KeyShift})
	assert.False(t, r.IsKeyDown(KeyShift))
	assert.Equal(t, []string{"keydown 1", "keyup 1"}, rec.calls)
}

func TestUnmatchedKeyUpIsDelivered(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(rec)

	r.Dispatch(Event{Type: EventKeyUp, Key: KeyShift})
	assert.Equal(t, []string{"keyup 1"}, rec.calls)
	assert.False(t, r.IsKeyDown(KeyShift))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "pointer-down", EventPointerDown.String())
	assert.Equal(t, "none", EventType(99).String())
}
