package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// Z-index bands. Pinned supplementary elements draw above everything else.
const (
	ZBackground    = -1
	ZItem          = 0
	ZSupplementary = 1
	ZPinned        = 10
)

// Attributes is a read-only snapshot of one element's geometry in content
// coordinates.
type Attributes struct {
	Kind            ElementKind
	IndexPath       IndexPath
	Frame           geometry.Rect
	ZIndex          int
	Alpha           float64
	Pinned          bool
	ExtraAttributes any
}
