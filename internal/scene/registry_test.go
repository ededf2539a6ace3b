package scene

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxedit/internal/engine/picking"
	"github.com/Faultbox/voxedit/pkg/math"
)

var (
	cube    = &Geometry{Side: 50}
	redFill = &Material{Color: ColorFromHex(0xff0000), Opacity: 0.8, Visible: true}
)

func voxelAt(x, y, z float32) *Entity {
	return NewEntity(math.Vec3{X: x, Y: y, Z: z}, cube, redFill)
}

func down(x, z float32) picking.Ray {
	return picking.Ray{Origin: math.Vec3{X: x, Y: 500, Z: z}, Direction: math.Vec3{Y: -1}}
}

func TestNewRegistryHasGround(t *testing.T) {
	r := NewRegistry(1000)

	require.Equal(t, 1, r.Len())
	assert.True(t, r.Ground().IsGround())
	assert.Empty(t, r.Entities())
	assert.Equal(t, []*Entity{r.Ground()}, r.Candidates())
}

func TestAddRemove(t *testing.T) {
	r := NewRegistry(1000)
	a := voxelAt(25, 25, 25)
	b := voxelAt(75, 25, 25)

	require.True(t, r.Add(a))
	require.True(t, r.Add(b))
	assert.False(t, r.Add(a), "duplicate add")
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []*Entity{a, b}, r.Entities())

	require.True(t, r.Remove(a))
	assert.False(t, r.Contains(a))
	assert.Equal(t, []*Entity{r.Ground(), b}, r.Candidates())
}

func TestRemoveIdempotent(t *testing.T) {
	r := NewRegistry(1000)
	a := voxelAt(25, 25, 25)
	r.Add(a)
	r.Add(voxelAt(25, 75, 25))

	require.True(t, r.Remove(a))
	after := r.Candidates()

	assert.False(t, r.Remove(a))
	assert.Equal(t, after, r.Candidates())
}

func TestGroundCannotBeRemoved(t *testing.T) {
	r := NewRegistry(1000)

	assert.False(t, r.Remove(r.Ground()))
	assert.False(t, r.RemoveID(r.Ground().ID))
	assert.False(t, r.Add(r.Ground()))
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(r.Ground()))
}

func TestRemoveUnknown(t *testing.T) {
	r := NewRegistry(1000)
	assert.False(t, r.Remove(nil))
	assert.False(t, r.RemoveID(uuid.New()))
	assert.False(t, r.Remove(voxelAt(0, 0, 0)))
}

func TestCandidatesIsACopy(t *testing.T) {
	r := NewRegistry(1000)
	r.Add(voxelAt(25, 25, 25))

	c := r.Candidates()
	c[0] = nil
	assert.NotNil(t, r.Candidates()[0])
}

func TestGetAndFindAt(t *testing.T) {
	r := NewRegistry(1000)
	a := voxelAt(25, 25, 25)
	r.Add(a)

	got, ok := r.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	got, ok = r.FindAt(math.Vec3{X: 25, Y: 25, Z: 25})
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = r.FindAt(math.Vec3{X: 75, Y: 25, Z: 25})
	assert.False(t, ok)
}

func TestHitTestPrefersNearest(t *testing.T) {
	r := NewRegistry(1000)
	low := voxelAt(25, 25, 25)
	high := voxelAt(25, 75, 25)
	r.Add(low)
	r.Add(high)

	hit, ok := r.HitTest(down(25, 25))
	require.True(t, ok)
	assert.Same(t, high, hit.Entity)
	assert.Equal(t, math.Vec3{X: 25, Y: 100, Z: 25}, hit.Point)
	assert.Equal(t, math.Vec3{Y: 1}, hit.Normal)
	assert.Equal(t, float32(400), hit.Distance)
}

func TestHitTestFallsBackToGround(t *testing.T) {
	r := NewRegistry(1000)
	r.Add(voxelAt(25, 25, 25))

	hit, ok := r.HitTest(down(-110, 130))
	require.True(t, ok)
	assert.True(t, hit.OnGround())
	assert.Equal(t, math.Vec3{X: -110, Y: 0, Z: 130}, hit.Point)
	assert.Equal(t, math.Vec3{Y: 1}, hit.Normal)
}

func TestHitTestMiss(t *testing.T) {
	r := NewRegistry(1000)

	_, ok := r.HitTest(down(800, 800))
	assert.False(t, ok)

	up := picking.Ray{Origin: math.Vec3{Y: -10}, Direction: math.Vec3{Y: 1}}
	_, ok = r.HitTest(up)
	assert.False(t, ok)
}

func TestHitEntitySkipsGround(t *testing.T) {
	r := NewRegistry(1000)

	_, ok := r.HitEntity(down(0, 0))
	assert.False(t, ok)

	a := voxelAt(25, 25, 25)
	r.Add(a)
	hit, ok := r.HitEntity(down(25, 25))
	require.True(t, ok)
	assert.Same(t, a, hit.Entity)
	assert.False(t, hit.OnGround())
}

func TestColorFromHex(t *testing.T) {
	assert.Equal(t, [3]float32{1, 0, 0}, ColorFromHex(0xff0000))
	assert.Equal(t, [3]float32{0, 0, 1}, ColorFromHex(0x0000ff))
}
