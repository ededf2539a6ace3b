// Package camera builds the per-view cameras of the editor: one perspective
// camera for the main view and fixed axis-aligned orthographic cameras for the
// top, side and front views.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/voxedit/pkg/math"
)

// ViewKind selects the camera configuration of a view.
type ViewKind int

const (
	ViewPerspective ViewKind = iota
	ViewTopXY
	ViewSideYZ
	ViewFrontZX
)

// ErrUnknownViewKind is returned for a view kind outside the closed set above.
var ErrUnknownViewKind = errors.New("unknown view kind")

func (k ViewKind) String() string {
	switch k {
	case ViewPerspective:
		return "perspective"
	case ViewTopXY:
		return "xy"
	case ViewSideYZ:
		return "yz"
	case ViewFrontZX:
		return "zx"
	default:
		return fmt.Sprintf("ViewKind(%d)", int(k))
	}
}

// Orthographic reports whether the kind uses an orthographic projection.
func (k ViewKind) Orthographic() bool {
	return k == ViewTopXY || k == ViewSideYZ || k == ViewFrontZX
}

// ParseViewKind maps a config name to a ViewKind.
func ParseViewKind(name string) (ViewKind, error) {
	switch name {
	case "perspective", "3d":
		return ViewPerspective, nil
	case "xy", "top":
		return ViewTopXY, nil
	case "yz", "side":
		return ViewSideYZ, nil
	case "zx", "front":
		return ViewFrontZX, nil
	}
	return ViewKind(-1), fmt.Errorf("%w: %q", ErrUnknownViewKind, name)
}

// ViewConfig describes the camera bound to one view.
type ViewConfig struct {
	Kind ViewKind
	// Extent is the scene size. It places the fixed cameras and sets the far
	// planes (Extent for orthographic, 10*Extent for perspective).
	Extent float32
	Near   float32
	FOV    float32 // vertical, degrees; perspective only
	Target math.Vec3
}

// DefaultViewConfig returns the reference configuration for a kind.
func DefaultViewConfig(kind ViewKind, extent float32) ViewConfig {
	return ViewConfig{
		Kind:   kind,
		Extent: extent,
		Near:   1,
		FOV:    45,
	}
}

// Far returns the far plane distance for the configured kind.
func (c ViewConfig) Far() float32 {
	if c.Kind == ViewPerspective {
		return c.Extent * 10
	}
	return c.Extent
}

// Viewport is the drawable size of a view in pixels.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if !v.Valid() {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Camera is a built camera. Position and rotation are fixed at Build time;
// Resize only touches the projection. Built with an empty viewport, the
// projection and its inverse stay identity until the first valid Resize.
type Camera struct {
	kind       ViewKind
	configured bool

	Position math.Vec3
	Rotation math.Quat

	Near, Far float32

	// Perspective
	FOV    float32 // radians
	Aspect float32

	// Orthographic
	Left, Right, Top, Bottom float32

	view        math.Mat4
	projection  math.Mat4
	invViewProj math.Mat4
}

// Build creates the camera for cfg sized to vp. For an unknown kind it
// returns an unconfigured camera together with ErrUnknownViewKind so callers
// can warn and carry on.
func Build(cfg ViewConfig, vp Viewport) (*Camera, error) {
	c := &Camera{
		kind:     cfg.Kind,
		Rotation: math.QuatIdentity(),
		Near:     cfg.Near,
		Far:      cfg.Far(),
	}

	d := cfg.Extent
	switch cfg.Kind {
	case ViewPerspective:
		c.FOV = cfg.FOV * gomath.Pi / 180
		c.Position = math.Vec3{X: 0, Y: d / 2, Z: d}
		c.Rotation = lookRotation(c.Position, cfg.Target)
	case ViewTopXY:
		c.Position = math.Vec3{X: 0, Y: 0, Z: d}
	case ViewSideYZ:
		c.Position = math.Vec3{X: d, Y: 0, Z: 0}
		c.Rotation = math.QuatFromEuler(math.Euler{Y: gomath.Pi / 2})
	case ViewFrontZX:
		c.Position = math.Vec3{X: 0, Y: d, Z: 0}
		c.Rotation = math.QuatFromEuler(math.Euler{X: -gomath.Pi / 2})
	default:
		c.view = math.Identity()
		c.projection = math.Identity()
		c.invViewProj = math.Identity()
		return c, fmt.Errorf("%w: %v", ErrUnknownViewKind, cfg.Kind)
	}

	c.configured = true
	c.view = math.Compose(c.Position, c.Rotation).Inverse()
	// Identity until a valid viewport gives the projection.
	c.projection = math.Identity()
	c.invViewProj = math.Identity()
	c.Resize(vp)
	return c, nil
}

// Resize recomputes the projection for a new viewport. It is idempotent and
// must run before the next render after the surface changes size. An empty
// viewport (a collapsed pane) keeps the previous projection.
func (c *Camera) Resize(vp Viewport) {
	if !c.configured || !vp.Valid() {
		return
	}

	if c.kind == ViewPerspective {
		c.Aspect = vp.Aspect()
		c.projection = math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	} else {
		c.Left = -float32(vp.Width) / 2
		c.Right = float32(vp.Width) / 2
		c.Top = float32(vp.Height) / 2
		c.Bottom = -float32(vp.Height) / 2
		c.projection = math.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	}
	c.invViewProj = c.projection.Mul(c.view).Inverse()
}

// Kind returns the view kind the camera was built for.
func (c *Camera) Kind() ViewKind { return c.kind }

// Configured is false when Build was given an unknown kind.
func (c *Camera) Configured() bool { return c.configured }

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 { return c.view }

// ProjectionMatrix returns the camera-to-clip transform.
func (c *Camera) ProjectionMatrix() math.Mat4 { return c.projection }

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 { return c.projection.Mul(c.view) }

// InverseViewProjection is used to unproject pointer positions.
func (c *Camera) InverseViewProjection() math.Mat4 { return c.invViewProj }

// Forward returns the world-space viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Rotation.Rotate(math.Vec3{Z: -1})
}

// lookRotation returns the orientation of a camera at eye looking at target
// with +Y up.
func lookRotation(eye, target math.Vec3) math.Quat {
	world := math.LookAt(eye, target, math.Vec3{Y: 1}).Inverse()
	return quatFromMat4(world)
}

// quatFromMat4 extracts the rotation of a pure rotation+translation matrix.
func quatFromMat4(m math.Mat4) math.Quat {
	m00, m01, m02 := m[0], m[4], m[8]
	m10, m11, m12 := m[1], m[5], m[9]
	m20, m21, m22 := m[2], m[6], m[10]

	trace := m00 + m11 + m22
	var q math.Quat
	switch {
	case trace > 0:
		s := 0.5 / float32(gomath.Sqrt(float64(trace+1)))
		q = math.Quat{W: 0.25 / s, X: (m21 - m12) * s, Y: (m02 - m20) * s, Z: (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * float32(gomath.Sqrt(float64(1+m00-m11-m22)))
		q = math.Quat{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * float32(gomath.Sqrt(float64(1+m11-m00-m22)))
		q = math.Quat{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}
	default:
		s := 2 * float32(gomath.Sqrt(float64(1+m22-m00-m11)))
		q = math.Quat{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}
	return q.Normalize()
}
