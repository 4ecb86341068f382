package geometry

// ScrollDirection selects the primary (scroll) axis. When vertical, the
// primary axis is y/height and the cross axis is x/width; horizontal swaps them.
type ScrollDirection uint8

const (
	Vertical   ScrollDirection = iota // Scrolls top-to-bottom
	Horizontal                        // Scrolls left-to-right
)

// String returns the direction name.
func (d ScrollDirection) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Primary returns the primary-axis length of s.
func (d ScrollDirection) Primary(s Size) float64 {
	if d == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis length of s.
func (d ScrollDirection) Cross(s Size) float64 {
	if d == Horizontal {
		return s.Height
	}
	return s.Width
}

// Leading returns the inset before content on the primary axis.
func (d ScrollDirection) Leading(e Edges) float64 {
	return d.vertical(e).Top
}

// Trailing returns the inset after content on the primary axis.
func (d ScrollDirection) Trailing(e Edges) float64 {
	return d.vertical(e).Bottom
}

// PrimaryPos returns the leading coordinate of r on the primary axis.
func (d ScrollDirection) PrimaryPos(r Rect) float64 {
	if d == Horizontal {
		return r.X
	}
	return r.Y
}

// PrimaryLength returns the extent of r on the primary axis.
func (d ScrollDirection) PrimaryLength(r Rect) float64 {
	if d == Horizontal {
		return r.Width
	}
	return r.Height
}

// PrimaryEnd returns the trailing coordinate of r on the primary axis.
func (d ScrollDirection) PrimaryEnd(r Rect) float64 {
	return d.PrimaryPos(r) + d.PrimaryLength(r)
}

// CrossPos returns the leading coordinate of r on the cross axis.
func (d ScrollDirection) CrossPos(r Rect) float64 {
	if d == Horizontal {
		return r.Y
	}
	return r.X
}

// CrossLength returns the extent of r on the cross axis.
func (d ScrollDirection) CrossLength(r Rect) float64 {
	if d == Horizontal {
		return r.Height
	}
	return r.Width
}

// Rect builds a rectangle from primary/cross coordinates.
func (d ScrollDirection) Rect(primaryPos, crossPos, primaryLen, crossLen float64) Rect {
	r := Rect{X: crossPos, Y: primaryPos, Width: crossLen, Height: primaryLen}
	if d == Horizontal {
		return r.Transposed()
	}
	return r
}

// Size builds a size from primary/cross lengths.
func (d ScrollDirection) Size(primaryLen, crossLen float64) Size {
	s := Size{Width: crossLen, Height: primaryLen}
	if d == Horizontal {
		return s.Transposed()
	}
	return s
}

// Offset moves r by delta along the primary axis.
func (d ScrollDirection) Offset(r Rect, delta float64) Rect {
	if d == Horizontal {
		return r.Translate(delta, 0)
	}
	return r.Translate(0, delta)
}

// vertical maps e into the vertical frame, where top and bottom lie on the
// primary axis.
func (d ScrollDirection) vertical(e Edges) Edges {
	if d == Horizontal {
		return e.Transposed()
	}
	return e
}
