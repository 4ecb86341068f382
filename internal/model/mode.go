package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// LengthKind specifies how a LengthMode is resolved.
type LengthKind uint8

const (
	LengthStatic  LengthKind = iota // Known up front
	LengthDynamic                   // Measured by the host after rendering
)

// LengthMode describes how the length of an element along one axis is
// determined.
type LengthMode struct {
	Length float64
	Kind   LengthKind
}

// Static returns a LengthMode with a fixed length.
func Static(length float64) LengthMode {
	return LengthMode{Length: length, Kind: LengthStatic}
}

// Dynamic returns a LengthMode whose length is reported by the host once the
// element has been measured.
func Dynamic() LengthMode {
	return LengthMode{Kind: LengthDynamic}
}

// IsDynamic returns true if the length is measured rather than configured.
func (m LengthMode) IsDynamic() bool {
	return m.Kind == LengthDynamic
}

// Resolve returns the static length, or fallback for dynamic lengths.
// Negative static lengths resolve to zero.
func (m LengthMode) Resolve(fallback float64) float64 {
	if m.Kind == LengthDynamic {
		return fallback
	}
	return max(m.Length, 0)
}

// SizeMode pairs the width and height modes of an element.
type SizeMode struct {
	Width  LengthMode
	Height LengthMode
}

// StaticSize returns a SizeMode with fixed width and height.
func StaticSize(width, height float64) SizeMode {
	return SizeMode{Width: Static(width), Height: Static(height)}
}

// DynamicSize returns a SizeMode measured on both axes.
func DynamicSize() SizeMode {
	return SizeMode{Width: Dynamic(), Height: Dynamic()}
}

// IsDynamic returns true if either axis is measured.
func (s SizeMode) IsDynamic() bool {
	return s.Width.IsDynamic() || s.Height.IsDynamic()
}

// Primary returns the mode along the scroll axis.
func (s SizeMode) Primary(dir geometry.ScrollDirection) LengthMode {
	if dir == geometry.Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the mode along the cross axis.
func (s SizeMode) Cross(dir geometry.ScrollDirection) LengthMode {
	if dir == geometry.Horizontal {
		return s.Height
	}
	return s.Width
}

// WithPrimary returns a copy with the scroll-axis mode replaced.
func (s SizeMode) WithPrimary(dir geometry.ScrollDirection, m LengthMode) SizeMode {
	if dir == geometry.Horizontal {
		s.Width = m
	} else {
		s.Height = m
	}
	return s
}

// WithCross returns a copy with the cross-axis mode replaced.
func (s SizeMode) WithCross(dir geometry.ScrollDirection, m LengthMode) SizeMode {
	if dir == geometry.Horizontal {
		s.Height = m
	} else {
		s.Width = m
	}
	return s
}

// SupplementaryVisibility controls whether a header or footer exists and, if
// so, how it is sized.
type SupplementaryVisibility struct {
	Visible  bool
	SizeMode SizeMode
}

// HiddenSupplementary returns a visibility that omits the element.
func HiddenSupplementary() SupplementaryVisibility {
	return SupplementaryVisibility{}
}

// VisibleSupplementary returns a visibility that shows the element with the
// given size mode.
func VisibleSupplementary(mode SizeMode) SupplementaryVisibility {
	return SupplementaryVisibility{Visible: true, SizeMode: mode}
}

// BackgroundVisibility controls whether a section background decoration exists.
// ExtraAttributes is an opaque payload handed back to the host with the
// decoration's attributes.
type BackgroundVisibility struct {
	Visible         bool
	ExtraAttributes any
}

// HiddenBackground returns a visibility that omits the background.
func HiddenBackground() BackgroundVisibility {
	return BackgroundVisibility{}
}

// VisibleBackground returns a visibility that shows the background.
func VisibleBackground(extraAttributes any) BackgroundVisibility {
	return BackgroundVisibility{Visible: true, ExtraAttributes: extraAttributes}
}
