package workspace

import (
	"github.com/Faultbox/voxedit/internal/engine/input"
	"github.com/Faultbox/voxedit/internal/viewport"
)

// KeyHook sees key presses before the views. Returning true consumes the
// key. focus is the index of the view last under the pointer.
type KeyHook func(key input.Key, focus int) bool

// Mux is an input.Handler that fans window events out to per-view handlers.
// Pointer events go to the view under the pointer in view-local coordinates;
// a view that received pointer-down keeps the pointer until pointer-up.
// Keys reach every view, resizes re-split the window.
type Mux struct {
	panes   []input.Handler
	rects   []Rect
	border  int
	focus   int
	capture int
	hook    KeyHook
}

var _ input.Handler = (*Mux)(nil)

// NewMux creates a mux over panes laid out in a width x height window.
func NewMux(panes []input.Handler, width, height, border int) *Mux {
	return &Mux{
		panes:   panes,
		rects:   Split(width, height, len(panes), border),
		border:  border,
		capture: -1,
	}
}

// OnKey installs the key hook.
func (m *Mux) OnKey(hook KeyHook) { m.hook = hook }

// Rects returns the current view areas.
func (m *Mux) Rects() []Rect { return m.rects }

// Focus returns the index of the view last under the pointer.
func (m *Mux) Focus() int { return m.focus }

func (m *Mux) at(x, y int) int {
	for i, r := range m.rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HandlePointerMove routes to the captured view, or the one under (x, y).
func (m *Mux) HandlePointerMove(x, y int) {
	i := m.capture
	if i < 0 {
		if i = m.at(x, y); i < 0 {
			return
		}
		m.focus = i
	}
	m.panes[i].HandlePointerMove(m.rects[i].Local(x, y))
}

// HandlePointerDown focuses and captures the view under (x, y).
func (m *Mux) HandlePointerDown(x, y int) {
	i := m.at(x, y)
	if i < 0 {
		return
	}
	m.focus, m.capture = i, i
	m.panes[i].HandlePointerDown(m.rects[i].Local(x, y))
}

// HandlePointerUp releases the capture.
func (m *Mux) HandlePointerUp(x, y int) {
	i := m.capture
	m.capture = -1
	if i < 0 {
		if i = m.at(x, y); i < 0 {
			return
		}
	}
	m.panes[i].HandlePointerUp(m.rects[i].Local(x, y))
}

// HandleKeyDown offers key to the hook, then to every view.
func (m *Mux) HandleKeyDown(key input.Key) {
	if m.hook != nil && m.hook(key, m.focus) {
		return
	}
	for _, p := range m.panes {
		p.HandleKeyDown(key)
	}
}

// HandleKeyUp forwards key to every view.
func (m *Mux) HandleKeyUp(key input.Key) {
	for _, p := range m.panes {
		p.HandleKeyUp(key)
	}
}

// HandleResize re-splits the window and resizes every view.
func (m *Mux) HandleResize(width, height int) {
	m.rects = Split(width, height, len(m.panes), m.border)
	for i, p := range m.panes {
		p.HandleResize(m.rects[i].W, m.rects[i].H)
	}
}

// Link makes every controller mirror the edits of the others.
func Link(views []*viewport.Controller) {
	for i, src := range views {
		src.OnChange(func(ch viewport.Change) {
			for j, dst := range views {
				if j != i {
					dst.ApplyChange(ch)
				}
			}
		})
	}
}
