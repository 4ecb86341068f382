package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

// layoutSection assigns section-relative frames to every element of sec.
func (s *Store) layoutSection(sec *SectionModel) {
	dir := s.direction
	m := sec.Metrics
	outer := dir.Cross(s.bounds.Size())
	crossStart, inner := s.innerCross(m.Inset)

	if h := sec.Header; h != nil {
		size := h.ResolvedSize(s.estimated)
		if m.InsetContainsHeader {
			h.Frame = dir.Rect(dir.Leading(m.Inset), crossStart, dir.Primary(size), min(dir.Cross(size), inner))
		} else {
			h.Frame = dir.Rect(0, 0, dir.Primary(size), min(dir.Cross(size), outer))
		}
	}

	bodyStart := sec.BodyBeforeLength(dir)
	switch m.Type {
	case Row, TagList:
		s.layoutRows(sec, bodyStart, crossStart, inner)
	default:
		s.layoutWaterfall(sec, bodyStart, crossStart, inner)
	}

	if f := sec.Footer; f != nil {
		size := f.ResolvedSize(s.estimated)
		if m.InsetContainsFooter {
			f.Frame = dir.Rect(bodyStart+sec.AllItemsLength(dir), crossStart, dir.Primary(size), min(dir.Cross(size), inner))
		} else {
			f.Frame = dir.Rect(sec.FooterBeforeLength(dir), 0, dir.Primary(size), min(dir.Cross(size), outer))
		}
	}

	if d := sec.Decoration; d != nil {
		d.Frame = sectionContentBounds(sec, dir.Rect(bodyStart, crossStart, 0, inner)).Outset(d.ExtraInset)
	}

	sec.length = sec.TotalLength(dir)
	sec.dirty = false
}

// sectionContentBounds returns the bounding box of every element frame in
// sec, or empty when the section has no elements.
func sectionContentBounds(sec *SectionModel, empty geometry.Rect) geometry.Rect {
	var frames []geometry.Rect
	if sec.Header != nil {
		frames = append(frames, sec.Header.Frame)
	}
	for _, item := range sec.Items {
		frames = append(frames, item.Frame)
	}
	if sec.Footer != nil {
		frames = append(frames, sec.Footer.Frame)
	}
	if len(frames) == 0 {
		return empty
	}
	return frames[0].Bounds(frames[1:]...)
}

// layoutWaterfall places each item in the track with the smallest running
// extent. Ties go to the lowest track index.
func (s *Store) layoutWaterfall(sec *SectionModel, bodyStart, crossStart, inner float64) {
	dir := s.direction
	m := sec.Metrics
	trackLen := m.trackLength(inner)
	extents := make([]float64, max(m.TrackCount, 1))
	counts := make([]int, len(extents))

	for _, item := range sec.Items {
		track := shortestTrack(extents)
		pos := extents[track]
		if counts[track] > 0 {
			pos += m.LineSpacing
		}
		length := dir.Primary(item.ResolvedSize(s.estimated))
		cross := crossStart + float64(track)*(trackLen+m.InteritemSpacing)
		item.Frame = dir.Rect(bodyStart+pos, cross, length, trackLen)
		extents[track] = pos + length
		counts[track]++
	}
}

func shortestTrack(extents []float64) int {
	best := 0
	for i := 1; i < len(extents); i++ {
		if extents[i] < extents[best] {
			best = i
		}
	}
	return best
}

// rowSlot is an item placed on the current line before the line is packed.
type rowSlot struct {
	item     *ItemModel
	cross    float64
	crossLen float64
	length   float64
}

// layoutRows flows items along the cross axis, wrapping to a new line when
// the next item would exceed capacity. An item wider than capacity gets a
// line to itself.
func (s *Store) layoutRows(sec *SectionModel, bodyStart, crossStart, capacity float64) {
	dir := s.direction
	m := sec.Metrics
	lineStart := bodyStart
	used := 0.0
	var line []rowSlot

	flush := func() {
		if len(line) == 0 {
			return
		}
		lineLen := 0.0
		for _, slot := range line {
			lineLen = max(lineLen, slot.length)
		}
		shift := 0.0
		if m.Direction == RowCenter {
			shift = max((capacity-used)/2, 0)
		}
		for _, slot := range line {
			cross := slot.cross + shift
			if m.Direction == RowTrailing {
				cross = max(capacity-slot.cross-slot.crossLen, 0)
			}
			var offset float64
			switch m.Alignment {
			case RowAlignCenter:
				offset = (lineLen - slot.length) / 2
			case RowAlignEnd:
				offset = lineLen - slot.length
			}
			slot.item.Frame = dir.Rect(lineStart+offset, crossStart+cross, slot.length, slot.crossLen)
		}
		lineStart += lineLen + m.LineSpacing
		line = line[:0]
		used = 0
	}

	for _, item := range sec.Items {
		size := item.ResolvedSize(s.estimated)
		length, crossLen := dir.Primary(size), dir.Cross(size)
		if m.Type == TagList {
			crossLen = min(crossLen, capacity)
		}
		pos := 0.0
		if len(line) > 0 {
			pos = used + m.InteritemSpacing
			if pos+crossLen > capacity {
				flush()
				pos = 0
			}
		}
		line = append(line, rowSlot{item: item, cross: pos, crossLen: crossLen, length: length})
		used = pos + crossLen
	}
	flush()
}
