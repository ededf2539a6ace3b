// Package debug generates helper geometry (ground grid, box wireframes) and
// saves view screenshots.
package debug

// LineVertex is one end of a coloured line segment.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// Reference grid colours.
var (
	GridCenterColor = [3]float32{0x44 / 255.0, 0x44 / 255.0, 0x44 / 255.0}
	GridLineColor   = [3]float32{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0}
)

// GridLines returns a square grid of side size centred on the origin in the
// y=0 plane, split into divisions cells per axis. The two lines through the
// origin use centerColor.
// Returns 2 vertices per line, (divisions+1)*2 lines.
func GridLines(size float32, divisions int, centerColor, lineColor [3]float32) []LineVertex {
	if divisions <= 0 || size <= 0 {
		return nil
	}

	half := size / 2
	step := size / float32(divisions)
	mid := divisions / 2
	vertices := make([]LineVertex, 0, (divisions+1)*4)

	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		c := lineColor
		if divisions%2 == 0 && i == mid {
			c = centerColor
		}
		vertices = append(vertices,
			// Parallel to Z
			LineVertex{k, 0, -half, c[0], c[1], c[2]},
			LineVertex{k, 0, half, c[0], c[1], c[2]},
			// Parallel to X
			LineVertex{-half, 0, k, c[0], c[1], c[2]},
			LineVertex{half, 0, k, c[0], c[1], c[2]},
		)
	}
	return vertices
}

// Flatten packs vertices as [x, y, z, r, g, b] for upload.
func Flatten(vertices []LineVertex) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B)
	}
	return out
}
