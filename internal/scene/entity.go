// Package scene owns the editable objects of a view: the permanent ground
// plane and the voxel entities placed on the lattice.
package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/voxedit/internal/engine/picking"
	"github.com/Faultbox/voxedit/pkg/math"
)

// Geometry is the render primitive of an entity. Voxels share one value by
// pointer.
type Geometry struct {
	// Side is the edge length of the cube, or the side of the ground square.
	Side float32
}

// Material holds the flat colour an entity is drawn with. Shared by pointer.
type Material struct {
	Color   [3]float32
	Opacity float32
	Visible bool
}

// ColorFromHex converts 0xRRGGBB to normalized RGB.
func ColorFromHex(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

// Entity is a placed object. Entities are owned by a Registry.
type Entity struct {
	ID       uuid.UUID
	Position math.Vec3
	Geometry *Geometry
	Material *Material

	ground bool
}

// NewEntity creates a voxel entity with a fresh ID.
func NewEntity(position math.Vec3, geometry *Geometry, material *Material) *Entity {
	return &Entity{
		ID:       uuid.New(),
		Position: position,
		Geometry: geometry,
		Material: material,
	}
}

// IsGround reports whether e is the ground plane sentinel.
func (e *Entity) IsGround() bool {
	return e.ground
}

// Bounds returns the world-space box of a voxel entity.
func (e *Entity) Bounds() picking.AABB {
	if e.ground {
		h := e.Geometry.Side / 2
		return picking.AABB{
			Min: math.Vec3{X: -h, Y: e.Position.Y, Z: -h},
			Max: math.Vec3{X: h, Y: e.Position.Y, Z: h},
		}
	}
	return picking.CubeAABB(e.Position, e.Geometry.Side)
}

// IntersectRay implements picking.Target.
func (e *Entity) IntersectRay(r picking.Ray) (float32, math.Vec3, bool) {
	if e.ground {
		t, ok := r.IntersectQuadY(e.Position.Y, e.Geometry.Side/2)
		return t, math.Vec3{Y: 1}, ok
	}
	return r.IntersectAABB(e.Bounds())
}

// HitResult is the nearest intersection between a ray and a registry's
// entities.
type HitResult struct {
	Point    math.Vec3
	Normal   math.Vec3
	Entity   *Entity
	Distance float32
}

// OnGround reports whether the hit landed on the ground plane.
func (h HitResult) OnGround() bool {
	return h.Entity != nil && h.Entity.ground
}
