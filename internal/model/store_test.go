package model

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-flowlayout/internal/geometry"
)

func singleTrack() SectionMetrics {
	return SectionMetrics{Type: Waterfall, TrackCount: 1}
}

func TestStore_PrefixOffsets(t *testing.T) {
	s := newTestStore(100, 200)
	withHeader := SectionMetrics{Type: Waterfall, TrackCount: 1, Inset: geometry.EdgeTRBL(5, 0, 7, 0)}
	sec1 := waterfallSection(s, withHeader, 10)
	sec1.Header = NewHeaderModel(s.CorrectSizeMode(SizeMode{Width: Dynamic(), Height: Static(8)}, KindHeader, withHeader))
	s.SetSections([]*SectionModel{
		waterfallSection(s, singleTrack(), 10, 20),
		sec1,
		waterfallSection(s, singleTrack()),
	})

	wantOffsets := []float64{0, 30, 60, 60}
	for k, want := range wantOffsets {
		if got := s.SectionOffset(k); got != want {
			t.Errorf("SectionOffset(%d) = %v, want %v", k, got, want)
		}
	}

	sum := 0.0
	for k := range s.NumberOfSections() {
		sec, _ := s.Section(k)
		if got := s.SectionOffset(k); got != sum {
			t.Errorf("SectionOffset(%d) = %v, want sum of preceding lengths %v", k, got, sum)
		}
		sum += sec.TotalLength(geometry.Vertical)
	}
	if got, want := s.ContentSize(), (geometry.Size{Width: 100, Height: sum}); got != want {
		t.Errorf("ContentSize() = %+v, want %+v", got, want)
	}

	if got := itemFrame(t, s, 1, 0); got != geometry.NewRect(0, 43, 100, 10) {
		t.Errorf("section 1 item frame = %+v, want {0 43 100 10}", got)
	}
}

func TestStore_MeasuredSize(t *testing.T) {
	s := newTestStore(100, 200)
	metrics := singleTrack()
	dynamic := NewItemModel(s.CorrectSizeMode(DynamicSize(), KindItem, metrics))
	s.SetSections([]*SectionModel{
		NewSectionModel(nil, nil, []*ItemModel{dynamic, NewItemModel(s.CorrectSizeMode(StaticSize(0, 20), KindItem, metrics))}, nil, metrics),
		waterfallSection(s, metrics, 10),
	})

	if got := s.SectionOffset(1); got != 70 {
		t.Fatalf("SectionOffset(1) before measuring = %v, want 70", got)
	}

	path := IndexPath{Section: 0, Item: 0}
	if !s.UpdateMeasuredSize(KindItem, path, geometry.Size{Width: 50, Height: 15}) {
		t.Error("UpdateMeasuredSize() = false, want true for a new length")
	}
	if got := s.SectionOffset(1); got != 35 {
		t.Errorf("SectionOffset(1) after measuring = %v, want 35", got)
	}
	if s.UpdateMeasuredSize(KindItem, path, geometry.Size{Width: 50, Height: 15}) {
		t.Error("UpdateMeasuredSize() repeated = true, want false")
	}
	// Width is the waterfall track length, which measurements cannot change.
	if s.UpdateMeasuredSize(KindItem, path, geometry.Size{Width: 999, Height: 15}) {
		t.Error("UpdateMeasuredSize() with new static-axis length = true, want false")
	}
	if s.UpdateMeasuredSize(KindItem, IndexPath{Section: 0, Item: 1}, geometry.Size{Width: 50, Height: 99}) {
		t.Error("UpdateMeasuredSize() on static item = true, want false")
	}
	if s.UpdateMeasuredSize(KindItem, IndexPath{Section: 4, Item: 0}, geometry.Size{}) {
		t.Error("UpdateMeasuredSize() out of range = true, want false")
	}

	if got := itemFrame(t, s, 0, 1); got != geometry.NewRect(0, 15, 100, 20) {
		t.Errorf("following item frame = %+v, want {0 15 100 20}", got)
	}

	// A metrics pass forgets the measurement.
	s.UpdateItemSizeMode(s.CorrectSizeMode(DynamicSize(), KindItem, metrics), path)
	if got := itemFrame(t, s, 0, 0); got.Height != 50 {
		t.Errorf("height after size mode update = %v, want estimate 50", got.Height)
	}
}

func TestStore_MeasuredSizeMatchingEstimate(t *testing.T) {
	s := newTestStore(100, 200)
	metrics := singleTrack()
	s.SetSections([]*SectionModel{
		NewSectionModel(nil, nil, []*ItemModel{NewItemModel(s.CorrectSizeMode(DynamicSize(), KindItem, metrics))}, nil, metrics),
	})
	s.LayoutIfNeeded()

	if s.UpdateMeasuredSize(KindItem, IndexPath{}, geometry.Size{Width: 100, Height: 50}) {
		t.Error("UpdateMeasuredSize() equal to estimate = true, want false")
	}
	s.SetEstimatedSize(geometry.Size{Width: 10, Height: 10})
	if got := itemFrame(t, s, 0, 0); got.Height != 50 {
		t.Errorf("height = %v, want frozen measurement 50", got.Height)
	}
}

func TestStore_MeasuredSizeNegative(t *testing.T) {
	s := newTestStore(100, 200)
	metrics := singleTrack()
	s.SetSections([]*SectionModel{
		NewSectionModel(nil, nil, []*ItemModel{NewItemModel(s.CorrectSizeMode(DynamicSize(), KindItem, metrics))}, nil, metrics),
	})
	s.LayoutIfNeeded()

	negative := geometry.Size{Width: 100, Height: -5}
	if !s.UpdateMeasuredSize(KindItem, IndexPath{}, negative) {
		t.Error("UpdateMeasuredSize() first = false, want true")
	}
	if s.UpdateMeasuredSize(KindItem, IndexPath{}, negative) {
		t.Error("UpdateMeasuredSize() repeated = true, want false")
	}
	if got := itemFrame(t, s, 0, 0); got.Height != 0 {
		t.Errorf("height = %v, want 0", got.Height)
	}
}

func TestStore_ElementsIn(t *testing.T) {
	s := newTestStore(100, 200)
	s.SetSections([]*SectionModel{
		waterfallSection(s, singleTrack(), 30),
		waterfallSection(s, singleTrack(), 30),
		waterfallSection(s, singleTrack(), 30),
	})

	type tc struct {
		rect geometry.Rect
		want []IndexPath
	}

	tests := map[string]tc{
		"inside one section": {
			rect: geometry.NewRect(0, 35, 100, 10),
			want: []IndexPath{{Section: 1, Item: 0}},
		},
		"spanning two sections": {
			rect: geometry.NewRect(0, 25, 100, 10),
			want: []IndexPath{{Section: 0, Item: 0}, {Section: 1, Item: 0}},
		},
		"touching edge excluded": {
			rect: geometry.NewRect(0, 60, 100, 10),
			want: []IndexPath{{Section: 2, Item: 0}},
		},
		"past the end": {
			rect: geometry.NewRect(0, 500, 100, 10),
		},
		"before the start": {
			rect: geometry.NewRect(0, -50, 100, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := s.ElementsIn(tt.rect)
			if len(got) != len(tt.want) {
				t.Fatalf("ElementsIn() returned %d elements, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, a := range got {
				if a.Kind != KindItem || a.IndexPath != tt.want[i] {
					t.Errorf("element %d = %v %v, want item %v", i, a.Kind, a.IndexPath, tt.want[i])
				}
			}
		})
	}
}

func TestStore_ElementsInOutsetBackground(t *testing.T) {
	s := newTestStore(100, 200)
	second := waterfallSection(s, singleTrack(), 50)
	second.Decoration = NewDecorationModel(nil, geometry.EdgeTRBL(10, 0, 0, 0))
	s.SetSections([]*SectionModel{waterfallSection(s, singleTrack(), 50), second})

	got := s.ElementsIn(geometry.NewRect(0, 40, 100, 10))
	want := []struct {
		kind ElementKind
		path IndexPath
	}{
		{KindItem, IndexPath{Section: 0, Item: 0}},
		{KindBackground, SectionPath(1)},
	}
	if len(got) != len(want) {
		t.Fatalf("ElementsIn() returned %d elements, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].IndexPath != w.path {
			t.Errorf("element %d = %v %v, want %v %v", i, got[i].Kind, got[i].IndexPath, w.kind, w.path)
		}
	}
	if bg := got[1].Frame; bg != geometry.NewRect(0, 40, 100, 60) {
		t.Errorf("background frame = %+v, want {0 40 100 60}", bg)
	}
}

func TestStore_PinnedHeader(t *testing.T) {
	s := newTestStore(100, 50)
	metrics := SectionMetrics{Type: Waterfall, TrackCount: 1, PinHeader: true}
	var sections []*SectionModel
	for range 2 {
		sec := waterfallSection(s, metrics, 100)
		sec.Header = NewHeaderModel(s.CorrectSizeMode(StaticSize(100, 10), KindHeader, metrics))
		sections = append(sections, sec)
	}
	s.SetSections(sections)

	if !s.HasPinnedHeaderOrFooter() {
		t.Fatal("HasPinnedHeaderOrFooter() = false, want true")
	}

	type tc struct {
		scroll     float64
		section    int
		wantY      float64
		wantPinned bool
	}

	tests := map[string]tc{
		"at rest":                 {scroll: 0, section: 0, wantY: 0},
		"stuck to viewport":       {scroll: 30, section: 0, wantY: 30, wantPinned: true},
		"clamped to section end":  {scroll: 105, section: 0, wantY: 100, wantPinned: true},
		"next header not reached": {scroll: 105, section: 1, wantY: 110},
		"next header stuck":       {scroll: 150, section: 1, wantY: 150, wantPinned: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s.SetBounds(geometry.NewRect(0, tt.scroll, 100, 50))
			a, ok := s.SupplementaryAttributes(KindHeader, tt.section)
			if !ok {
				t.Fatal("header not found")
			}
			if a.Frame.Y != tt.wantY {
				t.Errorf("header Y = %v, want %v", a.Frame.Y, tt.wantY)
			}
			if a.Pinned != tt.wantPinned {
				t.Errorf("Pinned = %v, want %v", a.Pinned, tt.wantPinned)
			}
			if tt.wantPinned && a.ZIndex <= ZItem {
				t.Errorf("ZIndex = %d, want above items", a.ZIndex)
			}
		})
	}
}

func TestStore_PinnedFooter(t *testing.T) {
	s := newTestStore(100, 50)
	metrics := SectionMetrics{Type: Waterfall, TrackCount: 1, PinFooter: true}
	sec := waterfallSection(s, metrics, 100)
	sec.Footer = NewFooterModel(s.CorrectSizeMode(StaticSize(100, 10), KindFooter, metrics))
	s.SetSections([]*SectionModel{sec})

	a, _ := s.SupplementaryAttributes(KindFooter, 0)
	if a.Frame.Y != 40 || !a.Pinned {
		t.Errorf("footer = %+v, want pinned at 40", a)
	}

	s.SetBounds(geometry.NewRect(0, 80, 100, 50))
	a, _ = s.SupplementaryAttributes(KindFooter, 0)
	if a.Frame.Y != 100 || a.Pinned {
		t.Errorf("footer = %+v, want resting at 100", a)
	}
}

func TestStore_VerifyCounts(t *testing.T) {
	s := newTestStore(100, 200)
	s.SetSections([]*SectionModel{
		waterfallSection(s, singleTrack(), 10, 10),
		waterfallSection(s, singleTrack(), 10),
	})

	type tc struct {
		sections int
		items    []int
		wantErr  bool
	}

	tests := map[string]tc{
		"matching":         {sections: 2, items: []int{2, 1}},
		"section mismatch": {sections: 3, items: []int{2, 1, 0}, wantErr: true},
		"item mismatch":    {sections: 2, items: []int{2, 2}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := s.VerifyCounts(tt.sections, func(i int) int { return tt.items[i] })
			if tt.wantErr && !errors.Is(err, ErrCountMismatch) {
				t.Errorf("VerifyCounts() = %v, want ErrCountMismatch", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("VerifyCounts() = %v, want nil", err)
			}
		})
	}
}
