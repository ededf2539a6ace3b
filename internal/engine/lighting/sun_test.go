package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/voxedit/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name          string
		azimuth, elev float32
		want          math.Vec3
	}{
		{"south horizon", 0, 0, math.Vec3{Z: 1}},
		{"east horizon", 90, 0, math.Vec3{X: 1}},
		{"zenith", 0, 90, math.Vec3{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elev)
			assert.True(t, got.ApproxEqual(tt.want, 1e-5), "got %v", got)
			assert.InDelta(t, 1, got.Length(), 1e-5)
		})
	}
}

func TestDefaultLight(t *testing.T) {
	l := Default()
	assert.InDelta(t, 1, l.Direction.Length(), 1e-5)
	assert.InDelta(t, 0.376, l.Ambient, 1e-3)
}

func TestShade(t *testing.T) {
	l := Light{Direction: math.Vec3{Y: 1}, Ambient: 0.25}

	assert.InDelta(t, 1, l.Shade(math.Vec3{Y: 1}), 1e-6)
	assert.InDelta(t, 0.25, l.Shade(math.Vec3{Y: -1}), 1e-6)
	assert.InDelta(t, 0.25, l.Shade(math.Vec3{X: 1}), 1e-6)
	// Normals need not be unit length.
	assert.InDelta(t, 1, l.Shade(math.Vec3{Y: 3}), 1e-6)
}
