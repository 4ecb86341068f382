package geometry

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Transposed swaps the roles of the vertical and horizontal edges:
// top becomes left and bottom becomes right.
func (e Edges) Transposed() Edges {
	return Edges{Top: e.Left, Right: e.Bottom, Bottom: e.Right, Left: e.Top}
}

// NonNegative returns a copy with negative sides clamped to zero.
func (e Edges) NonNegative() Edges {
	return Edges{
		Top:    max(e.Top, 0),
		Right:  max(e.Right, 0),
		Bottom: max(e.Bottom, 0),
		Left:   max(e.Left, 0),
	}
}
