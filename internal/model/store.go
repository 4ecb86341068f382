package model

import (
	"fmt"

	"github.com/grindlemire/go-flowlayout/internal/geometry"
)

// Store owns every section model and the derived prefix table of section
// offsets. It is not safe for concurrent use.
type Store struct {
	direction geometry.ScrollDirection
	bounds    geometry.Rect
	estimated geometry.Size

	sections []*SectionModel

	// offsets[k] is the primary-axis offset of section k. Only the first
	// len(offsets) entries are valid; the rest are filled on demand.
	offsets []float64

	// decorationReach is the furthest any background extends past its own
	// section on the primary axis.
	decorationReach float64

	needsLayout bool
	batch       *batchState
}

// NewStore creates an empty store.
func NewStore(direction geometry.ScrollDirection, bounds geometry.Rect, estimated geometry.Size) *Store {
	return &Store{
		direction: direction,
		bounds:    bounds,
		estimated: estimated,
		offsets:   []float64{0},
	}
}

// Direction returns the scroll direction.
func (s *Store) Direction() geometry.ScrollDirection {
	return s.direction
}

// SetDirection changes the scroll direction. Every section is relaid out.
func (s *Store) SetDirection(dir geometry.ScrollDirection) {
	if dir == s.direction {
		return
	}
	s.direction = dir
	s.markAllDirty()
}

// Bounds returns the visible region; its origin is the scroll offset.
func (s *Store) Bounds() geometry.Rect {
	return s.bounds
}

// SetBounds updates the visible region. A change in cross-axis extent relays
// out every section; a pure scroll only moves pinned elements.
func (s *Store) SetBounds(bounds geometry.Rect) {
	crossChanged := s.direction.Cross(bounds.Size()) != s.direction.Cross(s.bounds.Size())
	s.bounds = bounds
	if crossChanged {
		s.markAllDirty()
	}
}

// EstimatedSize returns the size used for unmeasured dynamic lengths.
func (s *Store) EstimatedSize() geometry.Size {
	return s.estimated
}

// SetEstimatedSize changes the estimate and relays out every section.
func (s *Store) SetEstimatedSize(size geometry.Size) {
	s.estimated = size
	s.markAllDirty()
}

// SetSections replaces every section model.
func (s *Store) SetSections(sections []*SectionModel) {
	s.sections = sections
	s.offsets = s.offsets[:1]
	s.markAllDirty()
}

// NumberOfSections returns the number of sections.
func (s *Store) NumberOfSections() int {
	return len(s.sections)
}

// NumberOfItems returns the number of items in section, or 0 if the section
// does not exist.
func (s *Store) NumberOfItems(section int) int {
	sec, ok := s.Section(section)
	if !ok {
		return 0
	}
	return len(sec.Items)
}

// Section returns the model for section.
func (s *Store) Section(section int) (*SectionModel, bool) {
	if section < 0 || section >= len(s.sections) {
		return nil, false
	}
	return s.sections[section], true
}

// UpdateMetrics replaces the metrics of section.
func (s *Store) UpdateMetrics(metrics SectionMetrics, section int) {
	sec, ok := s.Section(section)
	if !ok {
		return
	}
	sec.Metrics = metrics.Sanitized()
	s.markDirty(section)
}

// SetHeader replaces the header of section. A nil header removes it.
func (s *Store) SetHeader(header *HeaderModel, section int) {
	if sec, ok := s.Section(section); ok {
		sec.Header = header
		s.markDirty(section)
	}
}

// SetFooter replaces the footer of section. A nil footer removes it.
func (s *Store) SetFooter(footer *FooterModel, section int) {
	if sec, ok := s.Section(section); ok {
		sec.Footer = footer
		s.markDirty(section)
	}
}

// SetDecoration replaces the background of section. A nil decoration removes it.
func (s *Store) SetDecoration(decoration *DecorationModel, section int) {
	if sec, ok := s.Section(section); ok {
		sec.Decoration = decoration
		s.markDirty(section)
	}
}

// UpdateItemSizeMode replaces the size mode of the item at path and forgets
// its measurement.
func (s *Store) UpdateItemSizeMode(mode SizeMode, path IndexPath) {
	sec, ok := s.Section(path.Section)
	if !ok || path.Item < 0 || path.Item >= len(sec.Items) {
		return
	}
	item := sec.Items[path.Item]
	item.SizeMode = mode
	item.resetMeasurements()
	s.markDirty(path.Section)
}

// innerCross returns the cross-axis position and length left inside the
// container once inset is applied.
func (s *Store) innerCross(inset geometry.Edges) (pos, length float64) {
	box := geometry.Rect{Width: s.bounds.Width, Height: s.bounds.Height}.Inset(inset)
	return s.direction.CrossPos(box), max(s.direction.CrossLength(box), 0)
}

// CorrectSizeMode adapts a configured size mode to the element's position:
// headers and footers fill the available cross extent unless given a static
// cross length, which is clamped to it; waterfall items take the track
// length; tag list items are clamped to the line capacity.
func (s *Store) CorrectSizeMode(mode SizeMode, kind ElementKind, metrics SectionMetrics) SizeMode {
	dir := s.direction
	metrics = metrics.Sanitized()
	outer := dir.Cross(s.bounds.Size())
	_, inner := s.innerCross(metrics.Inset)

	mode = mode.WithPrimary(dir, clampStatic(mode.Primary(dir), -1))
	cross := mode.Cross(dir)

	switch kind {
	case KindHeader, KindFooter:
		available := outer
		if (kind == KindHeader && metrics.InsetContainsHeader) || (kind == KindFooter && metrics.InsetContainsFooter) {
			available = inner
		}
		if cross.IsDynamic() {
			return mode.WithCross(dir, Static(available))
		}
		return mode.WithCross(dir, clampStatic(cross, available))
	case KindItem:
		switch metrics.Type {
		case Waterfall:
			return mode.WithCross(dir, Static(metrics.trackLength(inner)))
		case TagList:
			return mode.WithCross(dir, clampStatic(cross, inner))
		}
		return mode.WithCross(dir, clampStatic(cross, -1))
	}
	return mode
}

// clampStatic clamps a static length into [0, limit]. A negative limit means
// unbounded. Dynamic lengths pass through.
func clampStatic(m LengthMode, limit float64) LengthMode {
	if m.IsDynamic() {
		return m
	}
	length := max(m.Length, 0)
	if limit >= 0 {
		length = min(length, limit)
	}
	return Static(length)
}

// VerifyCounts checks that the store's shape matches the given counts.
func (s *Store) VerifyCounts(sections int, itemsIn func(section int) int) error {
	if len(s.sections) != sections {
		return fmt.Errorf("%w: store has %d sections, data source has %d", ErrCountMismatch, len(s.sections), sections)
	}
	for i, sec := range s.sections {
		if want := itemsIn(i); len(sec.Items) != want {
			return fmt.Errorf("%w: section %d has %d items, data source has %d", ErrCountMismatch, i, len(sec.Items), want)
		}
	}
	return nil
}

// markDirty schedules section for layout and drops every offset that depends
// on its length.
func (s *Store) markDirty(section int) {
	s.sections[section].dirty = true
	s.needsLayout = true
	s.truncateOffsets(section)
}

func (s *Store) markAllDirty() {
	for _, sec := range s.sections {
		sec.dirty = true
	}
	s.needsLayout = true
	s.offsets = s.offsets[:1]
}

// truncateOffsets invalidates the offsets of every section after section.
func (s *Store) truncateOffsets(section int) {
	if keep := section + 1; keep < len(s.offsets) {
		s.offsets = s.offsets[:keep]
	}
}

// LayoutIfNeeded assigns frames in every dirty section.
func (s *Store) LayoutIfNeeded() {
	if !s.needsLayout {
		return
	}
	s.decorationReach = 0
	for i, sec := range s.sections {
		if sec.dirty {
			before := sec.length
			s.layoutSection(sec)
			if sec.length != before {
				s.truncateOffsets(i)
			}
		}
		if sec.Decoration != nil {
			inset := sec.Decoration.ExtraInset
			s.decorationReach = max(s.decorationReach, s.direction.Leading(inset), s.direction.Trailing(inset))
		}
	}
	s.needsLayout = false
}

// SectionOffset returns the primary-axis offset of section. Passing
// NumberOfSections returns the total content length.
func (s *Store) SectionOffset(section int) float64 {
	s.LayoutIfNeeded()
	section = min(max(section, 0), len(s.sections))
	for len(s.offsets) <= section {
		last := len(s.offsets) - 1
		s.offsets = append(s.offsets, s.offsets[last]+s.sections[last].length)
	}
	return s.offsets[section]
}

// ContentLength returns the primary-axis length of all sections.
func (s *Store) ContentLength() float64 {
	return s.SectionOffset(len(s.sections))
}

// ContentSize returns the content size: the content length on the primary
// axis and the container extent on the cross axis.
func (s *Store) ContentSize() geometry.Size {
	return s.direction.Size(s.ContentLength(), s.direction.Cross(s.bounds.Size()))
}

// HasPinnedHeaderOrFooter returns true if any section pins a visible header
// or footer.
func (s *Store) HasPinnedHeaderOrFooter() bool {
	for _, sec := range s.sections {
		if (sec.Header != nil && sec.Metrics.PinHeader) || (sec.Footer != nil && sec.Metrics.PinFooter) {
			return true
		}
	}
	return false
}
