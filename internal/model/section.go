package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// SectionModel is the cached state of one section. Its lengths are pure
// functions of the frames assigned by the last layout pass.
type SectionModel struct {
	Header     *HeaderModel
	Footer     *FooterModel
	Items      []*ItemModel
	Decoration *DecorationModel
	Metrics    SectionMetrics

	dirty  bool
	length float64
}

// NewSectionModel creates a section that still needs a layout pass.
func NewSectionModel(header *HeaderModel, footer *FooterModel, items []*ItemModel, decoration *DecorationModel, metrics SectionMetrics) *SectionModel {
	return &SectionModel{
		Header:     header,
		Footer:     footer,
		Items:      items,
		Decoration: decoration,
		Metrics:    metrics.Sanitized(),
		dirty:      true,
	}
}

// NumberOfItems returns the number of items in the section.
func (s *SectionModel) NumberOfItems() int {
	return len(s.Items)
}

// HeaderLength returns the header's primary-axis length, zero when hidden.
func (s *SectionModel) HeaderLength(dir geometry.ScrollDirection) float64 {
	if s.Header == nil {
		return 0
	}
	return dir.PrimaryLength(s.Header.Frame)
}

// FooterLength returns the footer's primary-axis length, zero when hidden.
func (s *SectionModel) FooterLength(dir geometry.ScrollDirection) float64 {
	if s.Footer == nil {
		return 0
	}
	return dir.PrimaryLength(s.Footer.Frame)
}

// BodyBeforeLength is the distance from the section's leading edge to its
// first item: leading inset plus header length.
func (s *SectionModel) BodyBeforeLength(dir geometry.ScrollDirection) float64 {
	return dir.Leading(s.Metrics.Inset) + s.HeaderLength(dir)
}

// AllItemsLength is the primary-axis extent of the bounding box of all item
// frames, zero-area frames included. An empty section has length zero.
func (s *SectionModel) AllItemsLength(dir geometry.ScrollDirection) float64 {
	if len(s.Items) == 0 {
		return 0
	}
	frames := make([]geometry.Rect, 0, len(s.Items)-1)
	for _, item := range s.Items[1:] {
		frames = append(frames, item.Frame)
	}
	return dir.PrimaryLength(s.Items[0].Frame.Bounds(frames...))
}

// FooterBeforeLength is the distance from the section's leading edge to the
// footer when the footer sits outside the inset.
func (s *SectionModel) FooterBeforeLength(dir geometry.ScrollDirection) float64 {
	return s.BodyBeforeLength(dir) + s.AllItemsLength(dir) + dir.Trailing(s.Metrics.Inset)
}

// TotalLength is the section's full primary-axis length.
func (s *SectionModel) TotalLength(dir geometry.ScrollDirection) float64 {
	return s.FooterBeforeLength(dir) + s.FooterLength(dir)
}

// Dirty reports whether the section needs a layout pass.
func (s *SectionModel) Dirty() bool {
	return s.dirty
}

// MarkDirty schedules the section for a layout pass.
func (s *SectionModel) MarkDirty() {
	s.dirty = true
}

// InsertItem inserts item at index. Panics if index is out of range.
func (s *SectionModel) InsertItem(item *ItemModel, index int) {
	if index < 0 || index > len(s.Items) {
		panic("model: InsertItem index out of range")
	}
	s.Items = append(s.Items, nil)
	copy(s.Items[index+1:], s.Items[index:])
	s.Items[index] = item
	s.dirty = true
}

// DeleteItem removes and returns the item at index. Panics if index is out
// of range.
func (s *SectionModel) DeleteItem(index int) *ItemModel {
	if index < 0 || index >= len(s.Items) {
		panic("model: DeleteItem index out of range")
	}
	item := s.Items[index]
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.dirty = true
	return item
}

// clone returns a deep copy so edits on the copy never reach s.
func (s *SectionModel) clone() *SectionModel {
	c := *s
	if s.Header != nil {
		h := *s.Header
		c.Header = &h
	}
	if s.Footer != nil {
		f := *s.Footer
		c.Footer = &f
	}
	if s.Decoration != nil {
		d := *s.Decoration
		c.Decoration = &d
	}
	c.Items = make([]*ItemModel, len(s.Items))
	for i, item := range s.Items {
		it := *item
		c.Items[i] = &it
	}
	return &c
}
