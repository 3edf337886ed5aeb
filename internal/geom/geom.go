// Package geom holds the value types shared by the box engine and the
// platform adapters.
package geom

import "fmt"

// Box is the canonical region representation: origin plus extent.
// Left and Top may be negative on multi-monitor layouts.
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect describes a region by its edges.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Point is an x/y coordinate pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the edge representation of b.
func (b Box) Rect() Rect {
	return Rect{
		Left:   b.Left,
		Top:    b.Top,
		Right:  b.Left + b.Width,
		Bottom: b.Top + b.Height,
	}
}

// Point returns the top-left corner of b.
func (b Box) Point() Point {
	return Point{X: b.Left, Y: b.Top}
}

// Size returns the extent of b.
func (b Box) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

// IsZero reports whether every field of b is zero.
func (b Box) IsZero() bool {
	return b == Box{}
}

func (b Box) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b.Left, b.Top, b.Width, b.Height)
}

// Box converts r to the canonical form. Width and height are absolute
// differences, so inverted edges still yield a non-negative extent.
func (r Rect) Box() Box {
	return Box{
		Left:   r.Left,
		Top:    r.Top,
		Width:  abs(r.Right - r.Left),
		Height: abs(r.Bottom - r.Top),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// PointInBox reports whether (x, y) lies within b. All four edges count as
// inside.
func PointInBox(x, y int, b Box) bool {
	return b.Left <= x && x <= b.Left+b.Width &&
		b.Top <= y && y <= b.Top+b.Height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
