package model

import (
	"testing"

	"github.com/grindlemire/go-flowlayout/internal/geometry"
)

func TestLengthMode_Resolve(t *testing.T) {
	type tc struct {
		mode     LengthMode
		fallback float64
		want     float64
	}

	tests := map[string]tc{
		"static":          {mode: Static(30), fallback: 50, want: 30},
		"negative static": {mode: Static(-4), fallback: 50, want: 0},
		"dynamic":         {mode: Dynamic(), fallback: 50, want: 50},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mode.Resolve(tt.fallback); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.fallback, got, tt.want)
			}
		})
	}
}

func TestSizeMode_Axes(t *testing.T) {
	mode := SizeMode{Width: Static(10), Height: Dynamic()}

	if got := mode.Primary(geometry.Vertical); !got.IsDynamic() {
		t.Errorf("Primary(Vertical) = %+v, want dynamic", got)
	}
	if got := mode.Primary(geometry.Horizontal); got != Static(10) {
		t.Errorf("Primary(Horizontal) = %+v, want Static(10)", got)
	}

	crossed := mode.WithCross(geometry.Vertical, Static(99))
	if crossed.Width != Static(99) || !crossed.Height.IsDynamic() {
		t.Errorf("WithCross(Vertical) = %+v", crossed)
	}
	crossed = mode.WithCross(geometry.Horizontal, Static(99))
	if crossed.Height != Static(99) || crossed.Width != Static(10) {
		t.Errorf("WithCross(Horizontal) = %+v", crossed)
	}
}

func TestSectionMetrics_Sanitized(t *testing.T) {
	type tc struct {
		metrics    SectionMetrics
		wantTracks int
		wantLine   float64
		wantInter  float64
	}

	tests := map[string]tc{
		"zero tracks": {
			metrics:    SectionMetrics{Type: Waterfall, TrackCount: 0},
			wantTracks: 1,
		},
		"negative tracks and spacing": {
			metrics:    SectionMetrics{Type: Waterfall, TrackCount: -3, LineSpacing: -2, InteritemSpacing: -1},
			wantTracks: 1,
		},
		"valid waterfall": {
			metrics:    SectionMetrics{Type: Waterfall, TrackCount: 3, LineSpacing: 4, InteritemSpacing: 2},
			wantTracks: 3,
			wantLine:   4,
			wantInter:  2,
		},
		"row ignores tracks": {
			metrics:    SectionMetrics{Type: Row, TrackCount: 4},
			wantTracks: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.metrics.Sanitized()
			if got.TrackCount != tt.wantTracks {
				t.Errorf("TrackCount = %d, want %d", got.TrackCount, tt.wantTracks)
			}
			if got.LineSpacing != tt.wantLine {
				t.Errorf("LineSpacing = %v, want %v", got.LineSpacing, tt.wantLine)
			}
			if got.InteritemSpacing != tt.wantInter {
				t.Errorf("InteritemSpacing = %v, want %v", got.InteritemSpacing, tt.wantInter)
			}
		})
	}
}

func TestStore_CorrectSizeMode(t *testing.T) {
	s := newTestStore(100, 200)
	inset := geometry.EdgeTRBL(0, 10, 0, 10)

	type tc struct {
		mode    SizeMode
		kind    ElementKind
		metrics SectionMetrics
		want    SizeMode
	}

	tests := map[string]tc{
		"header fills container": {
			mode:    SizeMode{Width: Dynamic(), Height: Static(20)},
			kind:    KindHeader,
			metrics: SectionMetrics{Inset: inset},
			want:    StaticSize(100, 20),
		},
		"enclosed header fills inner extent": {
			mode:    SizeMode{Width: Dynamic(), Height: Static(20)},
			kind:    KindHeader,
			metrics: SectionMetrics{Inset: inset, InsetContainsHeader: true},
			want:    StaticSize(80, 20),
		},
		"static footer width clamped": {
			mode:    StaticSize(500, 20),
			kind:    KindFooter,
			metrics: SectionMetrics{},
			want:    StaticSize(100, 20),
		},
		"static footer width honoured": {
			mode:    StaticSize(40, 20),
			kind:    KindFooter,
			metrics: SectionMetrics{},
			want:    StaticSize(40, 20),
		},
		"waterfall item takes track length": {
			mode:    SizeMode{Width: Static(10), Height: Dynamic()},
			kind:    KindItem,
			metrics: SectionMetrics{Type: Waterfall, TrackCount: 2, InteritemSpacing: 10, Inset: inset},
			want:    SizeMode{Width: Static(35), Height: Dynamic()},
		},
		"tag list item clamped": {
			mode:    StaticSize(300, 20),
			kind:    KindItem,
			metrics: SectionMetrics{Type: TagList, Inset: inset},
			want:    StaticSize(80, 20),
		},
		"row item not clamped": {
			mode:    StaticSize(300, 20),
			kind:    KindItem,
			metrics: SectionMetrics{Type: Row, Inset: inset},
			want:    StaticSize(300, 20),
		},
		"negative primary clamped": {
			mode:    StaticSize(30, -5),
			kind:    KindItem,
			metrics: SectionMetrics{Type: Row},
			want:    StaticSize(30, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := s.CorrectSizeMode(tt.mode, tt.kind, tt.metrics); got != tt.want {
				t.Errorf("CorrectSizeMode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
