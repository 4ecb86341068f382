package model

import "github.com/grindlemire/go-flowlayout/internal/geometry"

var testEstimate = geometry.Size{Width: 50, Height: 50}

func newTestStore(width, height float64) *Store {
	return NewStore(geometry.Vertical, geometry.NewRect(0, 0, width, height), testEstimate)
}

// waterfallSection builds a section whose items have the given static heights.
func waterfallSection(s *Store, metrics SectionMetrics, heights ...float64) *SectionModel {
	items := make([]*ItemModel, len(heights))
	for i, h := range heights {
		items[i] = NewItemModel(s.CorrectSizeMode(SizeMode{Width: Dynamic(), Height: Static(h)}, KindItem, metrics))
	}
	return NewSectionModel(nil, nil, items, nil, metrics)
}

// flowSection builds a row or tag list section from static item sizes.
func flowSection(s *Store, metrics SectionMetrics, sizes ...geometry.Size) *SectionModel {
	items := make([]*ItemModel, len(sizes))
	for i, size := range sizes {
		items[i] = NewItemModel(s.CorrectSizeMode(StaticSize(size.Width, size.Height), KindItem, metrics))
	}
	return NewSectionModel(nil, nil, items, nil, metrics)
}

func itemFrame(t interface{ Fatalf(string, ...any) }, s *Store, section, item int) geometry.Rect {
	a, ok := s.ItemAttributes(IndexPath{Section: section, Item: item})
	if !ok {
		t.Fatalf("ItemAttributes(%d, %d) not found", section, item)
	}
	return a.Frame
}
