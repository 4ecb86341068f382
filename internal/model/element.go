package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// measurement is a host-reported length frozen until the next metrics pass.
type measurement struct {
	value float64
	ok    bool
}

// ElementModel is the cached state shared by items, headers and footers.
type ElementModel struct {
	// SizeMode is the corrected mode; see Store.CorrectSizeMode.
	SizeMode SizeMode

	// Frame is section-relative on the primary axis.
	Frame geometry.Rect

	measuredWidth  measurement
	measuredHeight measurement
}

// ResolvedSize returns the size the layout pass uses for this element:
// static lengths as configured, dynamic lengths as measured, or the estimate
// when the host has not measured the element yet.
func (e *ElementModel) ResolvedSize(estimated geometry.Size) geometry.Size {
	width := e.SizeMode.Width.Resolve(estimated.Width)
	if e.SizeMode.Width.IsDynamic() && e.measuredWidth.ok {
		width = e.measuredWidth.value
	}
	height := e.SizeMode.Height.Resolve(estimated.Height)
	if e.SizeMode.Height.IsDynamic() && e.measuredHeight.ok {
		height = e.measuredHeight.value
	}
	return geometry.Size{Width: width, Height: height}
}

// measure records size on every dynamic axis and reports whether any of them
// differs from the length currently in effect. Static axes are ignored.
func (e *ElementModel) measure(size geometry.Size) bool {
	size = geometry.Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	changed := false
	if e.SizeMode.Width.IsDynamic() {
		current := e.Frame.Width
		if e.measuredWidth.ok {
			current = e.measuredWidth.value
		}
		changed = changed || current != size.Width
		e.measuredWidth = measurement{value: size.Width, ok: true}
	}
	if e.SizeMode.Height.IsDynamic() {
		current := e.Frame.Height
		if e.measuredHeight.ok {
			current = e.measuredHeight.value
		}
		changed = changed || current != size.Height
		e.measuredHeight = measurement{value: size.Height, ok: true}
	}
	return changed
}

// resetMeasurements forgets measured lengths.
func (e *ElementModel) resetMeasurements() {
	e.measuredWidth = measurement{}
	e.measuredHeight = measurement{}
}

// ItemModel is the cached state of one item.
type ItemModel struct {
	ElementModel
}

// NewItemModel creates an item with the given corrected size mode.
func NewItemModel(mode SizeMode) *ItemModel {
	return &ItemModel{ElementModel{SizeMode: mode}}
}

// HeaderModel is the cached state of a section header.
type HeaderModel struct {
	ElementModel
}

// NewHeaderModel creates a header with the given corrected size mode.
func NewHeaderModel(mode SizeMode) *HeaderModel {
	return &HeaderModel{ElementModel{SizeMode: mode}}
}

// FooterModel is the cached state of a section footer.
type FooterModel struct {
	ElementModel
}

// NewFooterModel creates a footer with the given corrected size mode.
func NewFooterModel(mode SizeMode) *FooterModel {
	return &FooterModel{ElementModel{SizeMode: mode}}
}

// DecorationModel is the section background. Its frame is always derived from
// the section's other elements.
type DecorationModel struct {
	ExtraAttributes any
	ExtraInset      geometry.Edges
	Frame           geometry.Rect
}

// NewDecorationModel creates a background decoration.
func NewDecorationModel(extraAttributes any, extraInset geometry.Edges) *DecorationModel {
	return &DecorationModel{ExtraAttributes: extraAttributes, ExtraInset: extraInset}
}
