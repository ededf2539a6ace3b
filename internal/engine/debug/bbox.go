package debug

import (
	"github.com/Faultbox/voxedit/internal/engine/picking"
	"github.com/Faultbox/voxedit/pkg/math"
)

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// BoxWireframe returns line vertices for the edges of box, [x, y, z] per
// vertex.
func BoxWireframe(box picking.AABB) []float32 {
	lo, hi := box.Min, box.Max
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Vertical edges
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// UnitCubeWireframe is the wireframe of the cube of side 1 centred on the
// origin. Scaled and translated per voxel by the renderer.
func UnitCubeWireframe() []float32 {
	return BoxWireframe(picking.CubeAABB(math.Vec3{}, 1))
}

// UnitCube returns the 36 vertices (12 triangles) of the cube of side 1
// centred on the origin, [x, y, z, nx, ny, nz] per vertex, counter-clockwise
// seen from outside.
func UnitCube() []float32 {
	type face struct {
		n    math.Vec3
		u, v math.Vec3
	}
	faces := []face{
		{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
	}

	out := make([]float32, 0, 36*6)
	for _, f := range faces {
		c := f.n.Scale(0.5)
		u := f.u.Scale(0.5)
		v := f.v.Scale(0.5)
		corners := [4]math.Vec3{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := corners[i]
			out = append(out, p.X, p.Y, p.Z, f.n.X, f.n.Y, f.n.Z)
		}
	}
	return out
}
