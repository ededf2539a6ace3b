package math

// Vec2 is a 2D vector. Pointer positions and normalized device coordinates
// use it.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// InRange reports whether both components lie in [lo, hi].
func (v Vec2) InRange(lo, hi float32) bool {
	return v.X >= lo && v.X <= hi && v.Y >= lo && v.Y <= hi
}
