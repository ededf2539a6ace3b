package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromEulerForward(t *testing.T) {
	forward := Vec3{0, 0, -1}
	tests := []struct {
		name  string
		euler Euler
		want  Vec3
	}{
		{"identity", Euler{}, Vec3{0, 0, -1}},
		{"yaw 90", Euler{Y: math.Pi / 2}, Vec3{-1, 0, 0}},
		{"pitch -90", Euler{X: -math.Pi / 2}, Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromEuler(tt.euler).Rotate(forward)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("QuatFromEuler(%v).Rotate(forward) = %v, want %v", tt.euler, got, tt.want)
			}
		})
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatFromEuler(Euler{X: 0.3, Y: -1.1, Z: 0.7})
	v := Vec3{1, 2, 3}

	viaQuat := q.Rotate(v)
	viaMat := q.ToMat4().TransformVec3(v)
	if !viaQuat.ApproxEqual(viaMat, 1e-4) {
		t.Errorf("ToMat4 disagrees with Rotate: %v vs %v", viaMat, viaQuat)
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/4)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/4)
	want := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)

	got := a.Mul(b)
	if math.Abs(float64(got.W-want.W)) > 1e-5 || math.Abs(float64(got.Y-want.Y)) > 1e-5 {
		t.Errorf("a*b = %v, want %v", got, want)
	}
}
