// Package workspace lays editor views out in the window, routes window input
// to the view under the pointer and keeps the views' scenes in step.
package workspace

// Rect is a view area in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the window point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Local converts a window point to view-local coordinates.
func (r Rect) Local(x, y int) (int, int) {
	return x - r.X, y - r.Y
}

// Split divides a width x height window into n views. One view fills the
// window, two sit side by side, three or four take the quadrants in reading
// order. border pixels are trimmed from every side of each view.
func Split(width, height, n, border int) []Rect {
	if n <= 0 {
		return nil
	}
	cols, rows := 2, 2
	switch n {
	case 1:
		cols, rows = 1, 1
	case 2:
		rows = 1
	}

	cellW, cellH := width/cols, height/rows
	rects := make([]Rect, n)
	for i := range rects {
		col, row := i%cols, i/cols
		r := Rect{
			X: col*cellW + border,
			Y: row*cellH + border,
			W: cellW - 2*border,
			H: cellH - 2*border,
		}
		r.W, r.H = max(r.W, 0), max(r.H, 0)
		rects[i] = r
	}
	return rects
}
