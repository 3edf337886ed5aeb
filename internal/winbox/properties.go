package winbox

import "github.com/1broseidon/winbox/internal/geom"

// Left returns the x coordinate of the left edge.
func (c *Controller) Left() int {
	return get(c, func(b geom.Box) int { return b.Left })
}

// SetLeft moves the box horizontally so its left edge is at v.
func (c *Controller) SetLeft(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Left = v
		return b
	})
}

// Right returns the x coordinate of the right edge, Left+Width.
func (c *Controller) Right() int {
	return get(c, func(b geom.Box) int { return b.Left + b.Width })
}

// SetRight moves the box so its right edge is at v, keeping the width.
func (c *Controller) SetRight(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Left = v - b.Width
		return b
	})
}

// Top returns the y coordinate of the top edge.
func (c *Controller) Top() int {
	return get(c, func(b geom.Box) int { return b.Top })
}

// SetTop moves the box vertically so its top edge is at v.
func (c *Controller) SetTop(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Top = v
		return b
	})
}

// Bottom returns the y coordinate of the bottom edge, Top+Height.
func (c *Controller) Bottom() int {
	return get(c, func(b geom.Box) int { return b.Top + b.Height })
}

// SetBottom moves the box so its bottom edge is at v, keeping the height.
func (c *Controller) SetBottom(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Top = v - b.Height
		return b
	})
}

// Width returns the horizontal extent.
func (c *Controller) Width() int {
	return get(c, func(b geom.Box) int { return b.Width })
}

// SetWidth resizes the box from its left edge.
func (c *Controller) SetWidth(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Width = v
		return b
	})
}

// Height returns the vertical extent.
func (c *Controller) Height() int {
	return get(c, func(b geom.Box) int { return b.Height })
}

// SetHeight resizes the box from its top edge.
func (c *Controller) SetHeight(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Height = v
		return b
	})
}

// Position is the top-left corner; an alias of TopLeft.
func (c *Controller) Position() geom.Point {
	return c.TopLeft()
}

// SetPosition moves the top-left corner to p.
func (c *Controller) SetPosition(p geom.Point) {
	c.SetTopLeft(p)
}

// Size returns the width and height.
func (c *Controller) Size() geom.Size {
	return get(c, geom.Box.Size)
}

// SetSize resizes the box, keeping the top-left corner in place.
func (c *Controller) SetSize(s geom.Size) {
	c.update(func(b geom.Box) geom.Box {
		b.Width, b.Height = s.Width, s.Height
		return b
	})
}

// Box returns the full canonical box.
func (c *Controller) Box() geom.Box {
	return get(c, func(b geom.Box) geom.Box { return b })
}

// SetBox replaces the box without reading it first.
func (c *Controller) SetBox(v geom.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.write(v)
}

// Rect returns the box as edges.
func (c *Controller) Rect() geom.Rect {
	return get(c, geom.Box.Rect)
}

// SetRect replaces the box from edges without reading it first.
func (c *Controller) SetRect(r geom.Rect) {
	c.SetBox(r.Box())
}

// TopLeft returns the top-left corner.
func (c *Controller) TopLeft() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left, Y: b.Top} })
}

// SetTopLeft moves the box so its top-left corner is at p.
func (c *Controller) SetTopLeft(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X, p.Y
		return b
	})
}

// BottomLeft returns the bottom-left corner.
func (c *Controller) BottomLeft() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left, Y: b.Top + b.Height} })
}

// SetBottomLeft moves the box so its bottom-left corner is at p.
func (c *Controller) SetBottomLeft(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X, p.Y-b.Height
		return b
	})
}

// TopRight returns the top-right corner.
func (c *Controller) TopRight() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left + b.Width, Y: b.Top} })
}

// SetTopRight moves the box so its top-right corner is at p.
func (c *Controller) SetTopRight(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-b.Width, p.Y
		return b
	})
}

// BottomRight returns the bottom-right corner.
func (c *Controller) BottomRight() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left + b.Width, Y: b.Top + b.Height} })
}

// SetBottomRight moves the box so its bottom-right corner is at p.
func (c *Controller) SetBottomRight(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-b.Width, p.Y-b.Height
		return b
	})
}

// MidTop returns the midpoint of the top edge.
func (c *Controller) MidTop() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left + half(b.Width), Y: b.Top} })
}

// SetMidTop moves the box so the midpoint of its top edge is at p.
// Left becomes p.X minus half the width, rounded down.
func (c *Controller) SetMidTop(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-half(b.Width), p.Y
		return b
	})
}

// MidBottom returns the midpoint of the bottom edge.
func (c *Controller) MidBottom() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left + half(b.Width), Y: b.Top + b.Height} })
}

// SetMidBottom moves the box so the midpoint of its bottom edge is at p.
func (c *Controller) SetMidBottom(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-half(b.Width), p.Y-b.Height
		return b
	})
}

// MidLeft returns the midpoint of the left edge.
func (c *Controller) MidLeft() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left, Y: b.Top + half(b.Height)} })
}

// SetMidLeft moves the box so the midpoint of its left edge is at p.
func (c *Controller) SetMidLeft(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X, p.Y-half(b.Height)
		return b
	})
}

// MidRight returns the midpoint of the right edge.
func (c *Controller) MidRight() geom.Point {
	return get(c, func(b geom.Box) geom.Point { return geom.Point{X: b.Left + b.Width, Y: b.Top + half(b.Height)} })
}

// SetMidRight moves the box so the midpoint of its right edge is at p.
func (c *Controller) SetMidRight(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-b.Width, p.Y-half(b.Height)
		return b
	})
}

// Center rounds down on odd extents, so setting and reading back may differ
// by one unit.
func (c *Controller) Center() geom.Point {
	return get(c, func(b geom.Box) geom.Point {
		return geom.Point{X: b.Left + half(b.Width), Y: b.Top + half(b.Height)}
	})
}

// SetCenter moves the box so its center is at p.
func (c *Controller) SetCenter(p geom.Point) {
	c.update(func(b geom.Box) geom.Box {
		b.Left, b.Top = p.X-half(b.Width), p.Y-half(b.Height)
		return b
	})
}

// CenterX returns the x coordinate of the center.
func (c *Controller) CenterX() int {
	return get(c, func(b geom.Box) int { return b.Left + half(b.Width) })
}

// SetCenterX moves the box horizontally so its center is at v.
func (c *Controller) SetCenterX(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Left = v - half(b.Width)
		return b
	})
}

// CenterY returns the y coordinate of the center.
func (c *Controller) CenterY() int {
	return get(c, func(b geom.Box) int { return b.Top + half(b.Height) })
}

// SetCenterY moves the box vertically so its center is at v.
func (c *Controller) SetCenterY(v int) {
	c.update(func(b geom.Box) geom.Box {
		b.Top = v - half(b.Height)
		return b
	})
}
