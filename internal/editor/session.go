// Package editor tracks the edit tool of an orthographic view and the command
// a pointer gesture is currently driving.
package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxedit/internal/engine/camera"
	"github.com/Faultbox/voxedit/internal/logger"
	"github.com/Faultbox/voxedit/internal/scene"
	"github.com/Faultbox/voxedit/pkg/math"
)

// ToolMode selects how pointer gestures are interpreted.
type ToolMode int

const (
	ToolNone ToolMode = iota
	ToolTranslateEntity
)

// ErrUnknownToolMode is returned by ParseToolMode.
var ErrUnknownToolMode = errors.New("unknown tool mode")

func (m ToolMode) String() string {
	switch m {
	case ToolNone:
		return "none"
	case ToolTranslateEntity:
		return "translate"
	default:
		return fmt.Sprintf("ToolMode(%d)", int(m))
	}
}

// ParseToolMode maps a config name to a ToolMode. Unknown names return an
// out-of-range mode with the error, so a session built from it warns on use.
func ParseToolMode(name string) (ToolMode, error) {
	switch name {
	case "", "none":
		return ToolNone, nil
	case "translate", "translate-entity":
		return ToolTranslateEntity, nil
	}
	return ToolMode(-1), fmt.Errorf("%w: %q", ErrUnknownToolMode, name)
}

// State is the phase of the session.
type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Command is the edit in flight between pointer-down and pointer-up.
type Command struct {
	Entity *scene.Entity
	// Start is the entity position when the gesture began.
	Start math.Vec3
}

// Session is the edit state of one view.
type Session struct {
	mode   ToolMode
	active *Command
	shift  bool
	log    *zap.Logger
}

// NewSession creates an idle session using mode.
func NewSession(mode ToolMode) *Session {
	return &Session{
		mode: mode,
		log:  logger.Named("editor"),
	}
}

// Mode returns the current tool mode.
func (s *Session) Mode() ToolMode { return s.mode }

// SetMode switches tools. A command in flight is dropped.
func (s *Session) SetMode(mode ToolMode) {
	s.mode = mode
	s.active = nil
}

// SetShift records the shift modifier.
func (s *Session) SetShift(down bool) { s.shift = down }

// Shift reports whether shift is held.
func (s *Session) Shift() bool { return s.shift }

// Active returns the command in flight, or nil.
func (s *Session) Active() *Command { return s.active }

// State reports Idle or Active.
func (s *Session) State() State {
	if s.active != nil {
		return StateActive
	}
	return StateIdle
}

// PointerDown starts a command on the hit entity. It returns false and stays
// idle when nothing was hit or the tool mode cannot start one.
func (s *Session) PointerDown(hit scene.HitResult, ok bool) bool {
	switch s.mode {
	case ToolTranslateEntity:
		if !ok || hit.Entity == nil {
			s.log.Warn("pointer down without entity hit", zap.Stringer("tool", s.mode))
			return false
		}
		s.active = &Command{Entity: hit.Entity, Start: hit.Entity.Position}
		s.log.Debug("command started",
			zap.Stringer("tool", s.mode),
			zap.Stringer("entity", hit.Entity.ID))
		return true
	default:
		s.log.Warn("pointer down: unhandled tool mode", zap.Stringer("tool", s.mode))
		return false
	}
}

// PointerMove advances the command in flight for a drag in view. Dragging
// does not move the entity yet; only the top view accepts the gesture.
func (s *Session) PointerMove(view camera.ViewKind) {
	if s.active == nil {
		return
	}
	switch s.mode {
	case ToolTranslateEntity:
		switch view {
		case camera.ViewTopXY:
			// TODO: translate the entity once the drag plane and snapping rules are decided.
		default:
			s.log.Warn("pointer drag: unhandled view", zap.Stringer("view", view))
		}
	default:
		s.log.Warn("pointer drag: unhandled tool mode", zap.Stringer("tool", s.mode))
	}
}

// PointerUp ends any command, whether or not it was dragged.
func (s *Session) PointerUp() {
	s.active = nil
}
