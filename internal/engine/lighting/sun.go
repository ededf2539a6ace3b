// Package lighting describes the scene light used to shade voxels.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/voxedit/pkg/math"
)

// Light is a white directional light plus a uniform ambient term.
type Light struct {
	// Direction points from the scene towards the light, normalized.
	Direction math.Vec3
	Ambient   float32
}

// Default returns the editor light: ambient 0x606060 and a light from
// (1, 0.75, 0.5).
func Default() Light {
	return Light{
		Direction: math.Vec3{X: 1, Y: 0.75, Z: 0.5}.Normalize(),
		Ambient:   float32(0x60) / 255,
	}
}

// SunDirection converts an azimuth around Y and an elevation above the
// horizon, both in degrees, to a unit vector towards the light.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(azimuth) * stdmath.Pi / 180
	el := float64(elevation) * stdmath.Pi / 180
	return math.Vec3{
		X: float32(stdmath.Cos(el) * stdmath.Sin(az)),
		Y: float32(stdmath.Sin(el)),
		Z: float32(stdmath.Cos(el) * stdmath.Cos(az)),
	}
}

// Shade returns the brightness factor for a surface normal, in [Ambient, 1].
func (l Light) Shade(normal math.Vec3) float32 {
	diffuse := max(normal.Normalize().Dot(l.Direction), 0)
	return min(l.Ambient+(1-l.Ambient)*diffuse, 1)
}
