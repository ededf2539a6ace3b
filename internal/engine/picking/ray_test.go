package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxedit/internal/engine/camera"
	"github.com/Faultbox/voxedit/pkg/math"
)

func TestNDCCorners(t *testing.T) {
	tests := []struct {
		name   string
		px, py float32
		want   math.Vec2
	}{
		{"top-left", 0, 0, math.Vec2{X: -1, Y: 1}},
		{"center", 400, 300, math.Vec2{X: 0, Y: 0}},
		{"bottom-right edge", 800, 600, math.Vec2{X: 1, Y: -1}},
		{"quarter", 200, 150, math.Vec2{X: -0.5, Y: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NDC(tt.px, tt.py, 800, 600))
		})
	}
}

func TestNDCStaysInRange(t *testing.T) {
	const w, h = 37, 23
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			ndc := NDC(float32(px), float32(py), w, h)
			require.True(t, ndc.InRange(-1, 1), "pixel (%d,%d) mapped to %v", px, py, ndc)
		}
	}
}

func TestScreenToRayOrthographicIsParallel(t *testing.T) {
	cam, err := camera.Build(camera.DefaultViewConfig(camera.ViewTopXY, 1000), camera.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)

	a := ScreenToRay(10, 10, 800, 600, cam.InverseViewProjection())
	b := ScreenToRay(700, 500, 800, 600, cam.InverseViewProjection())

	assert.True(t, a.Direction.ApproxEqual(math.Vec3{Z: -1}, 1e-4), "direction %v", a.Direction)
	assert.True(t, b.Direction.ApproxEqual(a.Direction, 1e-4))

	// Center of the view maps onto the camera axis
	c := ScreenToRay(400, 300, 800, 600, cam.InverseViewProjection())
	assert.InDelta(t, 0, c.Origin.X, 1e-3)
	assert.InDelta(t, 0, c.Origin.Y, 1e-3)
}

func TestScreenToRayOrthographicTracksResize(t *testing.T) {
	cam, err := camera.Build(camera.DefaultViewConfig(camera.ViewTopXY, 1000), camera.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)
	before := ScreenToRay(400, 150, 800, 600, cam.InverseViewProjection())

	cam.Resize(camera.Viewport{Width: 400, Height: 300})
	after := ScreenToRay(200, 75, 400, 300, cam.InverseViewProjection())

	assert.True(t, before.Direction.ApproxEqual(after.Direction, 1e-5))
	// The view shows half the world extent, so the same relative point lies at
	// half the world offset.
	assert.InDelta(t, before.Origin.Y/2, after.Origin.Y, 1e-3)
}

func TestScreenToRayPerspectiveCenterHitsTarget(t *testing.T) {
	cam, err := camera.Build(camera.DefaultViewConfig(camera.ViewPerspective, 1000), camera.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)

	r := ScreenToRay(400, 300, 800, 600, cam.InverseViewProjection())
	assert.True(t, r.Direction.ApproxEqual(cam.Forward(), 1e-3), "direction %v, forward %v", r.Direction, cam.Forward())

	tHit, ok := r.IntersectQuadY(0, 500)
	require.True(t, ok)
	assert.True(t, r.At(tHit).ApproxEqual(math.Vec3{}, 0.5), "hit %v", r.At(tHit))
}

func TestIntersectQuadY(t *testing.T) {
	down := Ray{Origin: math.Vec3{X: 10, Y: 100, Z: -20}, Direction: math.Vec3{Y: -1}}
	tHit, ok := down.IntersectQuadY(0, 500)
	require.True(t, ok)
	assert.Equal(t, float32(100), tHit)

	up := Ray{Origin: math.Vec3{Y: -100}, Direction: math.Vec3{Y: 1}}
	_, ok = up.IntersectQuadY(0, 500)
	assert.False(t, ok, "ground is single sided")

	outside := Ray{Origin: math.Vec3{X: 600, Y: 100}, Direction: math.Vec3{Y: -1}}
	_, ok = outside.IntersectQuadY(0, 500)
	assert.False(t, ok, "ground is finite")

	parallel := Ray{Origin: math.Vec3{Y: 10}, Direction: math.Vec3{X: 1}}
	_, ok = parallel.IntersectQuadY(0, 500)
	assert.False(t, ok)
}

func TestIntersectAABBNormals(t *testing.T) {
	box := CubeAABB(math.Vec3{X: 25, Y: 25, Z: 25}, 50)

	tests := []struct {
		name   string
		ray    Ray
		t      float32
		normal math.Vec3
	}{
		{"from above", Ray{Origin: math.Vec3{X: 25, Y: 200, Z: 25}, Direction: math.Vec3{Y: -1}}, 150, math.Vec3{Y: 1}},
		{"from +x", Ray{Origin: math.Vec3{X: 100, Y: 25, Z: 25}, Direction: math.Vec3{X: -1}}, 50, math.Vec3{X: 1}},
		{"from -z", Ray{Origin: math.Vec3{X: 25, Y: 25, Z: -100}, Direction: math.Vec3{Z: 1}}, 100, math.Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, n, ok := tt.ray.IntersectAABB(box)
			require.True(t, ok)
			assert.Equal(t, tt.t, tHit)
			assert.Equal(t, tt.normal, n)
		})
	}
}

func TestIntersectAABBMisses(t *testing.T) {
	box := CubeAABB(math.Vec3{X: 25, Y: 25, Z: 25}, 50)

	away := Ray{Origin: math.Vec3{X: 25, Y: 200, Z: 25}, Direction: math.Vec3{Y: 1}}
	_, _, ok := away.IntersectAABB(box)
	assert.False(t, ok)

	beside := Ray{Origin: math.Vec3{X: 100, Y: 200, Z: 25}, Direction: math.Vec3{Y: -1}}
	_, _, ok = beside.IntersectAABB(box)
	assert.False(t, ok)

	inside := Ray{Origin: math.Vec3{X: 25, Y: 25, Z: 25}, Direction: math.Vec3{Y: -1}}
	_, _, ok = inside.IntersectAABB(box)
	assert.False(t, ok, "back faces are not hit")
}

func TestNewAABBOrdersCorners(t *testing.T) {
	box := NewAABB(math.Vec3{X: 5, Y: -1, Z: 3}, math.Vec3{X: -5, Y: 1, Z: -3})
	assert.Equal(t, math.Vec3{X: -5, Y: -1, Z: -3}, box.Min)
	assert.Equal(t, math.Vec3{X: 5, Y: 1, Z: 3}, box.Max)
}
