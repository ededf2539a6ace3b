package scene

import (
	"slices"

	"github.com/google/uuid"

	"github.com/Faultbox/voxedit/internal/engine/picking"
	"github.com/Faultbox/voxedit/pkg/math"
)

// Registry holds the ground plane and every voxel entity of one view, in
// insertion order. The order is the raycast candidate order.
type Registry struct {
	ground  *Entity
	objects []*Entity // ground first, then voxels
	byID    map[uuid.UUID]*Entity
}

// NewRegistry creates a registry containing only a ground plane of the given
// side, lying at y=0.
func NewRegistry(groundSide float32) *Registry {
	ground := &Entity{
		ID:       uuid.New(),
		Geometry: &Geometry{Side: groundSide},
		Material: &Material{Visible: false},
		ground:   true,
	}
	return &Registry{
		ground:  ground,
		objects: []*Entity{ground},
		byID:    map[uuid.UUID]*Entity{ground.ID: ground},
	}
}

// Ground returns the ground plane sentinel.
func (r *Registry) Ground() *Entity {
	return r.ground
}

// Add appends e. Adding nil, a ground entity or an ID already present is a
// no-op and returns false.
func (r *Registry) Add(e *Entity) bool {
	if e == nil || e.ground {
		return false
	}
	if _, exists := r.byID[e.ID]; exists {
		return false
	}
	r.objects = append(r.objects, e)
	r.byID[e.ID] = e
	return true
}

// Remove deletes e. The ground plane and entities not in the registry are
// rejected with false; removing twice is therefore harmless.
func (r *Registry) Remove(e *Entity) bool {
	if e == nil {
		return false
	}
	return r.RemoveID(e.ID)
}

// RemoveID deletes the entity with the given ID.
func (r *Registry) RemoveID(id uuid.UUID) bool {
	e, ok := r.byID[id]
	if !ok || e.ground {
		return false
	}
	idx := slices.Index(r.objects, e)
	r.objects = slices.Delete(r.objects, idx, idx+1)
	delete(r.byID, id)
	return true
}

// Get looks an entity up by ID.
func (r *Registry) Get(id uuid.UUID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Contains reports whether e is currently registered.
func (r *Registry) Contains(e *Entity) bool {
	if e == nil {
		return false
	}
	got, ok := r.byID[e.ID]
	return ok && got == e
}

// Len counts registered objects including the ground plane.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Candidates returns the raycast candidates in registration order, ground
// first. The slice is a copy.
func (r *Registry) Candidates() []*Entity {
	return slices.Clone(r.objects)
}

// Entities returns the voxel entities without the ground plane.
func (r *Registry) Entities() []*Entity {
	return slices.Clone(r.objects[1:])
}

// FindAt returns the voxel whose position equals p.
func (r *Registry) FindAt(p math.Vec3) (*Entity, bool) {
	for _, e := range r.objects[1:] {
		if e.Position == p {
			return e, true
		}
	}
	return nil, false
}

// HitTest returns the nearest hit among all candidates, ground included.
func (r *Registry) HitTest(ray picking.Ray) (HitResult, bool) {
	return hitTest(ray, r.objects)
}

// HitEntity returns the nearest hit among voxel entities only. Edit tools use
// it so the ground plane can never be picked up.
func (r *Registry) HitEntity(ray picking.Ray) (HitResult, bool) {
	return hitTest(ray, r.objects[1:])
}

func hitTest(ray picking.Ray, candidates []*Entity) (HitResult, bool) {
	hit, ok := picking.Pick(ray, candidates)
	if !ok {
		return HitResult{}, false
	}
	return HitResult{
		Point:    hit.Point,
		Normal:   hit.Normal,
		Entity:   candidates[hit.Index],
		Distance: hit.Distance,
	}, true
}
