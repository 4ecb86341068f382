// layout.go re-exports geometry and model types from internal packages.
// Any changes to internal/geometry or internal/model types must be mirrored here.
package flowlayout

import (
	"github.com/grindlemire/go-flowlayout/internal/geometry"
	"github.com/grindlemire/go-flowlayout/internal/model"
)

// Rect represents a rectangle with position and dimensions.
type Rect = geometry.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geometry.Edges

// Size represents a width/height pair.
type Size = geometry.Size

// ScrollDirection is the axis content scrolls along.
type ScrollDirection = geometry.ScrollDirection

const (
	Vertical   = geometry.Vertical
	Horizontal = geometry.Horizontal
)

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return geometry.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geometry.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h float64) Edges {
	return geometry.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges from top, right, bottom and left values.
func EdgeTRBL(t, r, b, l float64) Edges {
	return geometry.EdgeTRBL(t, r, b, l)
}

// LengthMode describes how one axis of an element is sized.
type LengthMode = model.LengthMode

// SizeMode pairs the width and height modes of an element.
type SizeMode = model.SizeMode

// Static returns a fixed LengthMode.
func Static(length float64) LengthMode { return model.Static(length) }

// Dynamic returns a LengthMode measured by the host.
func Dynamic() LengthMode { return model.Dynamic() }

// StaticSize returns a SizeMode with fixed width and height.
func StaticSize(width, height float64) SizeMode { return model.StaticSize(width, height) }

// DynamicSize returns a SizeMode measured on both axes.
func DynamicSize() SizeMode { return model.DynamicSize() }

// SupplementaryVisibility controls whether a header or footer exists.
type SupplementaryVisibility = model.SupplementaryVisibility

// BackgroundVisibility controls whether a section background exists.
type BackgroundVisibility = model.BackgroundVisibility

// HiddenSupplementary omits a header or footer.
func HiddenSupplementary() SupplementaryVisibility { return model.HiddenSupplementary() }

// VisibleSupplementary shows a header or footer sized by mode.
func VisibleSupplementary(mode SizeMode) SupplementaryVisibility {
	return model.VisibleSupplementary(mode)
}

// HiddenBackground omits the section background.
func HiddenBackground() BackgroundVisibility { return model.HiddenBackground() }

// VisibleBackground shows the section background. extraAttributes is handed
// back with the background's Attributes.
func VisibleBackground(extraAttributes any) BackgroundVisibility {
	return model.VisibleBackground(extraAttributes)
}

// SectionKind selects how a section arranges its items.
type SectionKind = model.SectionKind

const (
	Waterfall = model.Waterfall
	Row       = model.Row
	TagList   = model.TagList
)

// SectionType is a section arrangement with its parameters.
type SectionType = model.SectionType

// WaterfallSection arranges items into tracks, each item going to the
// shortest track.
func WaterfallSection(tracks int) SectionType { return model.WaterfallSection(tracks) }

// RowSection flows items into wrapping lines.
func RowSection(direction RowDirection, alignment RowAlignment) SectionType {
	return model.RowSection(direction, alignment)
}

// TagListSection flows items into wrapping lines, clamping each item to the
// line capacity.
func TagListSection(direction RowDirection, alignment RowAlignment) SectionType {
	return model.TagListSection(direction, alignment)
}

// RowDirection selects the edge row-flow lines are packed against.
type RowDirection = model.RowDirection

const (
	RowLeading  = model.RowLeading
	RowTrailing = model.RowTrailing
	RowCenter   = model.RowCenter
)

// RowAlignment aligns items within one line.
type RowAlignment = model.RowAlignment

const (
	RowAlignStart  = model.RowAlignStart
	RowAlignCenter = model.RowAlignCenter
	RowAlignEnd    = model.RowAlignEnd
)

// SectionMetrics is the per-section configuration snapshot.
type SectionMetrics = model.SectionMetrics

// IndexPath addresses an item within a section.
type IndexPath = model.IndexPath

// NotFound as an IndexPath item addresses the whole section.
const NotFound = model.NotFound

// SectionPath returns an IndexPath for a whole section.
func SectionPath(section int) IndexPath { return model.SectionPath(section) }

// ElementKind identifies the element an Attributes value describes.
type ElementKind = model.ElementKind

const (
	KindItem       = model.KindItem
	KindHeader     = model.KindHeader
	KindFooter     = model.KindFooter
	KindBackground = model.KindBackground
)

// Attributes is a read-only snapshot of one element's geometry.
type Attributes = model.Attributes
