package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/voxedit/pkg/math"
)

// fixedTarget reports a hit at a preset distance.
type fixedTarget struct {
	t   float32
	hit bool
}

func (f fixedTarget) IntersectRay(Ray) (float32, math.Vec3, bool) {
	return f.t, math.Vec3{Y: 1}, f.hit
}

func TestPickNearestRegardlessOfOrder(t *testing.T) {
	r := Ray{Direction: math.Vec3{Z: -1}}
	targets := []fixedTarget{
		{t: 30, hit: true},
		{t: 10, hit: true},
		{t: 20, hit: true},
	}

	hit, ok := Pick(r, targets)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.Equal(t, float32(10), hit.Distance)
	assert.Equal(t, math.Vec3{Z: -10}, hit.Point)
	assert.Equal(t, math.Vec3{Y: 1}, hit.Normal)
}

func TestPickTieKeepsFirstRegistered(t *testing.T) {
	r := Ray{Direction: math.Vec3{Z: -1}}
	targets := []fixedTarget{
		{t: 50, hit: true},
		{t: 5, hit: true},
		{t: 5, hit: true},
	}

	hit, ok := Pick(r, targets)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
}

func TestPickSkipsMisses(t *testing.T) {
	r := Ray{Direction: math.Vec3{Z: -1}}
	targets := []fixedTarget{
		{t: 1, hit: false},
		{t: 7, hit: true},
	}

	hit, ok := Pick(r, targets)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
}

func TestPickNoHit(t *testing.T) {
	r := Ray{Direction: math.Vec3{Z: -1}}

	_, ok := Pick(r, []fixedTarget{{hit: false}})
	assert.False(t, ok)

	_, ok = Pick[fixedTarget](r, nil)
	assert.False(t, ok)
}
