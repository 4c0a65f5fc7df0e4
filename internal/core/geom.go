// Package core provides fundamental types and utilities shared by the memory
// game and its terminal shell. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a cell coordinate on the screen.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned rectangle used for hit testing and drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenteredRow lays out n rectangles of size w×h in a single row, centered
// horizontally within totalW, separated by gap cells.
func CenteredRow(n, w, h, gap, totalW, y int) []Rect {
	if n <= 0 {
		return nil
	}
	rowW := n*w + (n-1)*gap
	x := (totalW - rowW) / 2
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = NewRect(x+i*(w+gap), y, w, h)
	}
	return rects
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
