package geometry

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Transposed swaps width and height.
func (s Size) Transposed() Size {
	return Size{Width: s.Height, Height: s.Width}
}
