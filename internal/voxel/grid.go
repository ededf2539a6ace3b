// Package voxel places and removes lattice-aligned cubes in a scene registry.
package voxel

import (
	gomath "math"

	"github.com/Faultbox/voxedit/internal/scene"
	"github.com/Faultbox/voxedit/pkg/math"
)

// Reference materials.
const (
	VoxelColor     uint32  = 0xff0000
	VoxelOpacity   float32 = 0.8
	PreviewColor   uint32  = 0xff0000
	PreviewOpacity float32 = 0.5
)

// Cell is an integer lattice coordinate.
type Cell struct {
	X, Y, Z int
}

// Grid quantizes world positions to a cubic lattice and creates voxels on it.
// Every voxel created by one Grid shares its geometry and material.
type Grid struct {
	CellSize float32

	geometry *scene.Geometry
	material *scene.Material
}

// NewGrid creates a grid with the given cell size whose voxels are cubes of
// side entitySize.
func NewGrid(cellSize, entitySize float32) *Grid {
	return &Grid{
		CellSize: cellSize,
		geometry: &scene.Geometry{Side: entitySize},
		material: &scene.Material{
			Color:   scene.ColorFromHex(VoxelColor),
			Opacity: VoxelOpacity,
			Visible: true,
		},
	}
}

// Geometry returns the cube shared by every voxel of the grid.
func (g *Grid) Geometry() *scene.Geometry { return g.geometry }

// Material returns the material shared by every voxel of the grid.
func (g *Grid) Material() *scene.Material { return g.material }

// SnapToCell nudges point one unit along normal, off the surface that was
// hit, and returns the cell containing the result.
func (g *Grid) SnapToCell(point, normal math.Vec3) Cell {
	q := point.Add(normal).DivScalar(g.CellSize).Floor()
	return Cell{X: int(q.X), Y: int(q.Y), Z: int(q.Z)}
}

// Center returns the world position at the middle of c.
func (g *Grid) Center(c Cell) math.Vec3 {
	half := g.CellSize / 2
	return math.Vec3{
		X: float32(c.X)*g.CellSize + half,
		Y: float32(c.Y)*g.CellSize + half,
		Z: float32(c.Z)*g.CellSize + half,
	}
}

// SnapPosition is Center(SnapToCell(point, normal)), the placement a click at
// point would produce. The rollover preview is drawn there.
func (g *Grid) SnapPosition(point, normal math.Vec3) math.Vec3 {
	return g.Center(g.SnapToCell(point, normal))
}

// CellOf returns the cell whose interior contains position.
func (g *Grid) CellOf(position math.Vec3) Cell {
	return Cell{
		X: int(gomath.Floor(float64(position.X / g.CellSize))),
		Y: int(gomath.Floor(float64(position.Y / g.CellSize))),
		Z: int(gomath.Floor(float64(position.Z / g.CellSize))),
	}
}

// Create adds a voxel centred in c to reg and returns it.
func (g *Grid) Create(reg *scene.Registry, c Cell) *scene.Entity {
	e := scene.NewEntity(g.Center(c), g.geometry, g.material)
	reg.Add(e)
	return e
}

// Remove deletes e from reg. The ground plane and entities already gone are
// left alone and false is returned.
func (g *Grid) Remove(reg *scene.Registry, e *scene.Entity) bool {
	if e == nil || e.IsGround() {
		return false
	}
	return reg.Remove(e)
}

// Action is the edit performed by Apply.
type Action int

const (
	ActionNone Action = iota
	ActionCreate
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionRemove:
		return "remove"
	default:
		return "none"
	}
}

// Apply interprets a pointer-down hit. With shift held the hit voxel is
// removed; the ground is never removed, so a shift-click on it does nothing.
// Without shift a voxel is created in the cell next to the hit face. The
// returned entity is the one created or removed.
func (g *Grid) Apply(reg *scene.Registry, hit scene.HitResult, shift bool) (Action, *scene.Entity) {
	if hit.Entity == nil {
		return ActionNone, nil
	}
	if shift {
		if !g.Remove(reg, hit.Entity) {
			return ActionNone, nil
		}
		return ActionRemove, hit.Entity
	}
	return ActionCreate, g.Create(reg, g.SnapToCell(hit.Point, hit.Normal))
}
