package model

import (
	"sort"

	"github.com/grindlemire/go-flowlayout/internal/geometry"
)

// ItemAttributes returns the attributes of the item at path.
func (s *Store) ItemAttributes(path IndexPath) (Attributes, bool) {
	s.LayoutIfNeeded()
	sec, ok := s.Section(path.Section)
	if !ok || path.Item < 0 || path.Item >= len(sec.Items) {
		return Attributes{}, false
	}
	return s.itemAttributes(sec, path), true
}

// SupplementaryAttributes returns the attributes of the header, footer or
// background of section. Pinned elements are positioned against the current
// bounds.
func (s *Store) SupplementaryAttributes(kind ElementKind, section int) (Attributes, bool) {
	s.LayoutIfNeeded()
	sec, ok := s.Section(section)
	if !ok {
		return Attributes{}, false
	}
	switch kind {
	case KindHeader:
		if sec.Header == nil {
			return Attributes{}, false
		}
		return s.headerAttributes(sec, section), true
	case KindFooter:
		if sec.Footer == nil {
			return Attributes{}, false
		}
		return s.footerAttributes(sec, section), true
	case KindBackground:
		if sec.Decoration == nil {
			return Attributes{}, false
		}
		return s.decorationAttributes(sec, section), true
	}
	return Attributes{}, false
}

// ElementsIn returns the attributes of every element whose frame intersects
// rect, in section order: background, header, items, footer.
func (s *Store) ElementsIn(rect geometry.Rect) []Attributes {
	dir := s.direction
	total := s.ContentLength()
	// Widen the window so backgrounds outset into a neighbour are found.
	start, end := dir.PrimaryPos(rect)-s.decorationReach, dir.PrimaryEnd(rect)+s.decorationReach
	if len(s.sections) == 0 || end < 0 || start > total {
		return nil
	}

	// First section whose trailing edge lies past the start of the window.
	first := sort.Search(len(s.sections), func(i int) bool {
		return s.offsets[i+1] > start
	})

	var out []Attributes
	add := func(a Attributes) {
		if a.Frame.Intersects(rect) {
			out = append(out, a)
		}
	}
	for i := first; i < len(s.sections) && s.offsets[i] < end; i++ {
		sec := s.sections[i]
		if sec.Decoration != nil {
			add(s.decorationAttributes(sec, i))
		}
		if sec.Header != nil {
			add(s.headerAttributes(sec, i))
		}
		for item := range sec.Items {
			add(s.itemAttributes(sec, IndexPath{Section: i, Item: item}))
		}
		if sec.Footer != nil {
			add(s.footerAttributes(sec, i))
		}
	}
	return out
}

// UpdateMeasuredSize folds a host-measured size into the element at path.
// It returns true if the measurement changed the element's length, in which
// case only that section is relaid out.
func (s *Store) UpdateMeasuredSize(kind ElementKind, path IndexPath, size geometry.Size) bool {
	sec, ok := s.Section(path.Section)
	if !ok {
		return false
	}
	var el *ElementModel
	switch kind {
	case KindItem:
		if path.Item < 0 || path.Item >= len(sec.Items) {
			return false
		}
		el = &sec.Items[path.Item].ElementModel
	case KindHeader:
		if sec.Header == nil {
			return false
		}
		el = &sec.Header.ElementModel
	case KindFooter:
		if sec.Footer == nil {
			return false
		}
		el = &sec.Footer.ElementModel
	default:
		return false
	}
	if !el.SizeMode.IsDynamic() || !el.measure(size) {
		return false
	}
	s.markDirty(path.Section)
	return true
}

func (s *Store) absolute(frame geometry.Rect, section int) geometry.Rect {
	return s.direction.Offset(frame, s.SectionOffset(section))
}

func (s *Store) itemAttributes(sec *SectionModel, path IndexPath) Attributes {
	return Attributes{
		Kind:      KindItem,
		IndexPath: path,
		Frame:     s.absolute(sec.Items[path.Item].Frame, path.Section),
		ZIndex:    ZItem,
		Alpha:     1,
	}
}

func (s *Store) decorationAttributes(sec *SectionModel, section int) Attributes {
	return Attributes{
		Kind:            KindBackground,
		IndexPath:       SectionPath(section),
		Frame:           s.absolute(sec.Decoration.Frame, section),
		ZIndex:          ZBackground,
		Alpha:           1,
		ExtraAttributes: sec.Decoration.ExtraAttributes,
	}
}

// headerAttributes sticks a pinned header to the leading edge of the bounds
// without letting it leave its section.
func (s *Store) headerAttributes(sec *SectionModel, section int) Attributes {
	dir := s.direction
	frame := s.absolute(sec.Header.Frame, section)
	a := Attributes{
		Kind:      KindHeader,
		IndexPath: SectionPath(section),
		Frame:     frame,
		ZIndex:    ZSupplementary,
		Alpha:     1,
	}
	if !sec.Metrics.PinHeader {
		return a
	}
	pos := dir.PrimaryPos(frame)
	sectionEnd := s.SectionOffset(section) + sec.length
	pinned := min(max(pos, dir.PrimaryPos(s.bounds)), sectionEnd-dir.PrimaryLength(frame))
	pinned = max(pinned, pos)
	if pinned != pos {
		a.Frame = dir.Offset(frame, pinned-pos)
		a.Pinned = true
		a.ZIndex = ZPinned
	}
	return a
}

// footerAttributes sticks a pinned footer to the trailing edge of the bounds
// without letting it leave its section.
func (s *Store) footerAttributes(sec *SectionModel, section int) Attributes {
	dir := s.direction
	frame := s.absolute(sec.Footer.Frame, section)
	a := Attributes{
		Kind:      KindFooter,
		IndexPath: SectionPath(section),
		Frame:     frame,
		ZIndex:    ZSupplementary,
		Alpha:     1,
	}
	if !sec.Metrics.PinFooter {
		return a
	}
	pos := dir.PrimaryPos(frame)
	viewEnd := dir.PrimaryEnd(s.bounds)
	pinned := max(min(pos, viewEnd-dir.PrimaryLength(frame)), s.SectionOffset(section))
	pinned = min(pinned, pos)
	if pinned != pos {
		a.Frame = dir.Offset(frame, pinned-pos)
		a.Pinned = true
		a.ZIndex = ZPinned
	}
	return a
}
