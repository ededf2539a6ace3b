// Package viewport owns everything one editor view needs: its camera, its
// registry of voxels, the rollover preview and the edit session. It turns
// routed input into hits and edits, and renders after every change.
package viewport

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/voxedit/internal/editor"
	"github.com/Faultbox/voxedit/internal/engine/camera"
	"github.com/Faultbox/voxedit/internal/engine/input"
	"github.com/Faultbox/voxedit/internal/engine/picking"
	"github.com/Faultbox/voxedit/internal/logger"
	"github.com/Faultbox/voxedit/internal/scene"
	"github.com/Faultbox/voxedit/internal/voxel"
	"github.com/Faultbox/voxedit/pkg/math"
)

var (
	ErrNoRenderer  = errors.New("viewport needs a renderer")
	ErrInvalidGrid = errors.New("cell and entity size must be positive")
)

// Renderer draws a frame of one view.
type Renderer interface {
	Render(frame Frame) error
}

// Frame is what a renderer needs to draw one view.
type Frame struct {
	Kind     camera.ViewKind
	Camera   *camera.Camera
	Viewport camera.Viewport
	Ground   *scene.Entity
	Entities []*scene.Entity

	// Preview is the centre of the rollover cube, PreviewSide its edge.
	Preview        math.Vec3
	PreviewSide    float32
	PreviewVisible bool
}

// ChangeKind tells whether a voxel appeared or went away.
type ChangeKind int

const (
	ChangeCreated ChangeKind = iota
	ChangeRemoved
)

func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "created"
}

// Change describes an edit so other views can mirror it.
type Change struct {
	Kind     ChangeKind
	ID       uuid.UUID
	Position math.Vec3
}

// Options configures a Controller.
type Options struct {
	Name       string
	View       camera.ViewConfig
	Viewport   camera.Viewport
	CellSize   float32
	EntitySize float32
	Tool       editor.ToolMode
	Renderer   Renderer
}

// Controller is the per-view owner. It is driven from one goroutine.
type Controller struct {
	name     string
	cfg      camera.ViewConfig
	vp       camera.Viewport
	cam      *camera.Camera
	registry *scene.Registry
	grid     *voxel.Grid
	session  *editor.Session
	renderer Renderer

	preview        math.Vec3
	previewVisible bool

	onChange []func(Change)
	log      *zap.Logger
}

var _ input.Handler = (*Controller)(nil)

// New builds a controller and its camera. An unknown view kind is logged and
// leaves the camera unconfigured; picking in such a view finds nothing.
func New(opts Options) (*Controller, error) {
	if opts.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if opts.CellSize <= 0 || opts.EntitySize <= 0 {
		return nil, fmt.Errorf("%w: cell=%v entity=%v", ErrInvalidGrid, opts.CellSize, opts.EntitySize)
	}
	name := opts.Name
	if name == "" {
		name = opts.View.Kind.String()
	}

	c := &Controller{
		name:     name,
		cfg:      opts.View,
		vp:       opts.Viewport,
		registry: scene.NewRegistry(opts.View.Extent),
		grid:     voxel.NewGrid(opts.CellSize, opts.EntitySize),
		session:  editor.NewSession(opts.Tool),
		renderer: opts.Renderer,
		log:      logger.Named("viewport").With(zap.String("view", name)),
	}
	c.buildCamera()
	return c, nil
}

func (c *Controller) buildCamera() {
	cam, err := camera.Build(c.cfg, c.vp)
	if err != nil {
		c.log.Warn("camera left unconfigured", zap.Error(err))
	}
	c.cam = cam
}

// Name returns the view name used in logs.
func (c *Controller) Name() string { return c.name }

// Kind returns the bound view kind.
func (c *Controller) Kind() camera.ViewKind { return c.cfg.Kind }

// Camera returns the current camera.
func (c *Controller) Camera() *camera.Camera { return c.cam }

// Viewport returns the current size in pixels.
func (c *Controller) Viewport() camera.Viewport { return c.vp }

// Registry returns the view's scene.
func (c *Controller) Registry() *scene.Registry { return c.registry }

// Grid returns the lattice used for edits.
func (c *Controller) Grid() *voxel.Grid { return c.grid }

// Session returns the edit session.
func (c *Controller) Session() *editor.Session { return c.session }

// Preview returns the rollover position and whether it is shown.
func (c *Controller) Preview() (math.Vec3, bool) { return c.preview, c.previewVisible }

// OnChange registers fn to be called after every local create or remove.
func (c *Controller) OnChange(fn func(Change)) {
	c.onChange = append(c.onChange, fn)
}

// ray maps a view-local pixel to a world ray. ok is false when the camera
// is unconfigured or the view has no area.
func (c *Controller) ray(x, y int) (picking.Ray, bool) {
	if !c.cam.Configured() || !c.vp.Valid() {
		return picking.Ray{}, false
	}
	return picking.ScreenToRay(float32(x), float32(y), float32(c.vp.Width), float32(c.vp.Height), c.cam.InverseViewProjection()), true
}

// HandlePointerMove updates the rollover in the perspective view and drives
// an active drag in the orthographic views.
func (c *Controller) HandlePointerMove(x, y int) {
	if c.cfg.Kind.Orthographic() {
		c.session.PointerMove(c.cfg.Kind)
		return
	}
	r, ok := c.ray(x, y)
	if !ok {
		return
	}
	hit, ok := c.registry.HitTest(r)
	if !ok {
		return
	}
	c.preview = c.grid.SnapPosition(hit.Point, hit.Normal)
	c.previewVisible = true
	c.Render()
}

// HandlePointerDown creates or removes a voxel in the perspective view, or
// starts a tool command in an orthographic view. Shift is sampled once here.
func (c *Controller) HandlePointerDown(x, y int) {
	r, ok := c.ray(x, y)

	if c.cfg.Kind.Orthographic() {
		var hit scene.HitResult
		if ok {
			hit, ok = c.registry.HitEntity(r)
		}
		c.session.PointerDown(hit, ok)
		return
	}

	if !ok {
		return
	}
	hit, ok := c.registry.HitTest(r)
	if !ok {
		return
	}
	action, e := c.grid.Apply(c.registry, hit, c.session.Shift())
	switch action {
	case voxel.ActionCreate:
		c.log.Debug("voxel created", zap.Stringer("id", e.ID), zap.Any("cell", c.grid.CellOf(e.Position)))
		c.emit(Change{Kind: ChangeCreated, ID: e.ID, Position: e.Position})
	case voxel.ActionRemove:
		c.log.Debug("voxel removed", zap.Stringer("id", e.ID))
		c.emit(Change{Kind: ChangeRemoved, ID: e.ID, Position: e.Position})
	}
	c.Render()
}

// HandlePointerUp clears any command in flight.
func (c *Controller) HandlePointerUp(x, y int) {
	c.session.PointerUp()
}

// HandleKeyDown tracks shift. Other keys are ignored.
func (c *Controller) HandleKeyDown(key input.Key) {
	if key == input.KeyShift {
		c.session.SetShift(true)
	}
}

// HandleKeyUp tracks shift. Other keys are ignored.
func (c *Controller) HandleKeyUp(key input.Key) {
	if key == input.KeyShift {
		c.session.SetShift(false)
	}
}

// HandleResize reprojects the camera for the new size and renders.
func (c *Controller) HandleResize(width, height int) {
	c.vp = camera.Viewport{Width: width, Height: height}
	c.cam.Resize(c.vp)
	c.Render()
}

// SetToolMode switches the edit tool.
func (c *Controller) SetToolMode(mode editor.ToolMode) {
	c.session.SetMode(mode)
}

// SetViewKind rebinds the view to kind. The camera is rebuilt from scratch
// and the rollover hidden.
func (c *Controller) SetViewKind(kind camera.ViewKind) {
	c.cfg.Kind = kind
	c.session.PointerUp()
	c.previewVisible = false
	c.buildCamera()
	c.Render()
}

// ApplyChange mirrors an edit made in another view. It does not notify
// OnChange listeners.
func (c *Controller) ApplyChange(ch Change) {
	switch ch.Kind {
	case ChangeCreated:
		if _, exists := c.registry.Get(ch.ID); exists {
			return
		}
		e := scene.NewEntity(ch.Position, c.grid.Geometry(), c.grid.Material())
		e.ID = ch.ID
		c.registry.Add(e)
	case ChangeRemoved:
		if !c.registry.RemoveID(ch.ID) {
			return
		}
	default:
		c.log.Warn("unknown change kind", zap.Int("kind", int(ch.Kind)))
		return
	}
	c.Render()
}

func (c *Controller) emit(ch Change) {
	for _, fn := range c.onChange {
		fn(ch)
	}
}

// Frame snapshots the view for rendering.
func (c *Controller) Frame() Frame {
	return Frame{
		Kind:           c.cfg.Kind,
		Camera:         c.cam,
		Viewport:       c.vp,
		Ground:         c.registry.Ground(),
		Entities:       c.registry.Entities(),
		Preview:        c.preview,
		PreviewSide:    c.grid.Geometry().Side,
		PreviewVisible: c.previewVisible && !c.cfg.Kind.Orthographic(),
	}
}

// Render draws the view now.
func (c *Controller) Render() {
	if err := c.renderer.Render(c.Frame()); err != nil {
		c.log.Error("render failed", zap.Error(err))
	}
}
