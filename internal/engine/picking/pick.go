package picking

import "github.com/Faultbox/voxedit/pkg/math"

// Target is anything a ray can be tested against.
type Target interface {
	IntersectRay(r Ray) (t float32, normal math.Vec3, ok bool)
}

// Hit describes the nearest intersection found by Pick.
type Hit struct {
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
	// Index is the position of the hit target in the slice given to Pick.
	Index int
}

// Pick tests every target and returns the globally nearest hit. Targets are
// visited in slice order and a later target must be strictly closer to win,
// so on an exact tie the earlier one is kept. A miss is reported with
// ok == false and is not an error.
func Pick[T Target](r Ray, targets []T) (hit Hit, ok bool) {
	for i, target := range targets {
		t, normal, found := target.IntersectRay(r)
		if !found {
			continue
		}
		if ok && t >= hit.Distance {
			continue
		}
		hit = Hit{
			Point:    r.At(t),
			Normal:   normal,
			Distance: t,
			Index:    i,
		}
		ok = true
	}
	return hit, ok
}
