package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// SectionKind selects how a section arranges its items.
type SectionKind uint8

const (
	Waterfall SectionKind = iota // Greedy shortest-track placement
	Row                          // Lines that wrap when the cross axis is full
	TagList                      // Row flow with items clamped to the line capacity
)

// String returns the kind name.
func (k SectionKind) String() string {
	switch k {
	case Waterfall:
		return "waterfall"
	case Row:
		return "row"
	case TagList:
		return "tagList"
	default:
		return "unknown"
	}
}

// RowDirection selects the cross-axis edge that row-flow lines are packed against.
type RowDirection uint8

const (
	RowLeading  RowDirection = iota // Pack from the leading edge (left when vertical)
	RowTrailing                     // Pack from the trailing edge, mirroring item order
	RowCenter                       // Center each line
)

// RowAlignment aligns items of different lengths inside one line along the
// primary axis.
type RowAlignment uint8

const (
	RowAlignStart  RowAlignment = iota // Align to the line's leading edge
	RowAlignCenter                     // Center within the line
	RowAlignEnd                        // Align to the line's trailing edge
)

// SectionType is the arrangement a section uses, with its parameters.
type SectionType struct {
	Kind      SectionKind
	Tracks    int
	Direction RowDirection
	Alignment RowAlignment
}

// WaterfallSection arranges items into the given number of tracks.
func WaterfallSection(tracks int) SectionType {
	return SectionType{Kind: Waterfall, Tracks: tracks}
}

// RowSection flows items into wrapping lines.
func RowSection(direction RowDirection, alignment RowAlignment) SectionType {
	return SectionType{Kind: Row, Tracks: 1, Direction: direction, Alignment: alignment}
}

// TagListSection flows items into wrapping lines, never letting an item exceed
// the line capacity.
func TagListSection(direction RowDirection, alignment RowAlignment) SectionType {
	return SectionType{Kind: TagList, Tracks: 1, Direction: direction, Alignment: alignment}
}

// SectionMetrics is the per-section configuration snapshot pulled once per
// preparation pass.
type SectionMetrics struct {
	Section int
	Type    SectionKind

	// Arrangement
	TrackCount int
	Direction  RowDirection
	Alignment  RowAlignment

	// Spacing
	Inset            geometry.Edges
	LineSpacing      float64 // Primary axis, between items in a track or between lines
	InteritemSpacing float64 // Cross axis, between tracks or between items in a line

	// Supplementary placement
	InsetContainsHeader bool
	InsetContainsFooter bool
	PinHeader           bool
	PinFooter           bool
}

// DefaultMetrics returns the metrics used when the host declines to configure
// a section: one waterfall track, no insets and no spacing.
func DefaultMetrics(section int) SectionMetrics {
	return SectionMetrics{
		Section:    section,
		Type:       Waterfall,
		TrackCount: 1,
	}
}

// ApplyType copies the arrangement parameters of t into the metrics.
func (m SectionMetrics) ApplyType(t SectionType) SectionMetrics {
	m.Type = t.Kind
	m.TrackCount = t.Tracks
	m.Direction = t.Direction
	m.Alignment = t.Alignment
	return m
}

// Sanitized clamps invalid arrangement parameters: at least one track and no
// negative spacing or insets.
func (m SectionMetrics) Sanitized() SectionMetrics {
	if m.TrackCount < 1 || m.Type != Waterfall {
		m.TrackCount = 1
	}
	m.Inset = m.Inset.NonNegative()
	m.LineSpacing = max(m.LineSpacing, 0)
	m.InteritemSpacing = max(m.InteritemSpacing, 0)
	return m
}

// trackLength returns the cross-axis length of one waterfall track given the
// inner cross extent of the section.
func (m SectionMetrics) trackLength(inner float64) float64 {
	tracks := float64(max(m.TrackCount, 1))
	return max((inner-(tracks-1)*m.InteritemSpacing)/tracks, 0)
}
