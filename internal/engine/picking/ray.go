// Package picking converts pointer positions into world-space rays and finds
// the nearest object a ray hits.
package picking

import (
	gomath "math"

	"github.com/Faultbox/voxedit/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners, ordering each axis.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// CubeAABB returns the box of a cube of the given side centered at center.
func CubeAABB(center math.Vec3, side float32) AABB {
	h := side / 2
	return AABB{
		Min: center.AddScalar(-h),
		Max: center.AddScalar(h),
	}
}

// NDC converts pixel coordinates inside a width x height surface to
// normalized device coordinates: x grows right, y grows up, both in [-1, 1].
func NDC(px, py, width, height float32) math.Vec2 {
	return math.Vec2{
		X: (px/width)*2 - 1,
		Y: -(py/height)*2 + 1,
	}
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix; both perspective
// and orthographic projections unproject correctly.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	return NDCToRay(NDC(screenX, screenY, viewportW, viewportH), invViewProj)
}

// NDCToRay unprojects an NDC point on the near and far planes and returns the
// ray between them, starting on the near plane.
func NDCToRay(ndc math.Vec2, invViewProj math.Mat4) Ray {
	nearWorld := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, -1.0, 1.0})
	farWorld := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, 1.0, 1.0})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

func unproject(invViewProj math.Mat4, p math.Vec4) math.Vec3 {
	w := invViewProj.MulVec4(p)
	if w[3] != 0 {
		w[0] /= w[3]
		w[1] /= w[3]
		w[2] /= w[3]
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// IntersectQuadY intersects the ray with the upward-facing square of side
// 2*halfSize centered on the Y axis at height planeY. Rays coming from below
// or running parallel miss, matching single-sided ground geometry.
func (r Ray) IntersectQuadY(planeY, halfSize float32) (t float32, ok bool) {
	// Ray: P = Origin + t * Direction
	// Plane: Y = planeY
	if r.Direction.Y > -1e-6 {
		return 0, false
	}

	t = (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	if gomath.Abs(float64(p.X)) > float64(halfSize) || gomath.Abs(float64(p.Z)) > float64(halfSize) {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests the ray against the outside of box and returns the
// distance to the entry point and the outward normal of the entry face. Rays
// starting inside the box miss: only front faces are hit.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	entryAxis := -1

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, math.Vec3{}, false
			}
			continue
		}

		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = axis
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmin < 0 || entryAxis < 0 {
		return 0, math.Vec3{}, false
	}

	// The entry face faces against the ray direction on its axis.
	var n [3]float32
	if dir[entryAxis] > 0 {
		n[entryAxis] = -1
	} else {
		n[entryAxis] = 1
	}
	return tmin, math.Vec3{X: n[0], Y: n[1], Z: n[2]}, true
}
