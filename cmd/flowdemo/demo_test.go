package main

import (
	"strings"
	"testing"

	"github.com/grindlemire/go-flowlayout"
)

func TestCanvas_Blit(t *testing.T) {
	c := newCanvas(6, 3)
	c.fill(0, 0, 6, 3, '.')
	c.blit(1, 1, 3, 1, "abcdef\nxyz")

	want := "......\n.abc..\n......"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMeasureItem(t *testing.T) {
	type tc struct {
		kind  flowlayout.SectionKind
		dir   flowlayout.ScrollDirection
		text  string
		frame flowlayout.Rect
		want  flowlayout.Size
	}

	tests := map[string]tc{
		"tag": {
			kind: flowlayout.TagList,
			dir:  flowlayout.Vertical,
			text: "go",
			want: flowlayout.Size{Width: 6, Height: 3},
		},
		"card wraps to its track": {
			kind:  flowlayout.Waterfall,
			dir:   flowlayout.Vertical,
			text:  "one two three",
			frame: flowlayout.NewRect(0, 0, 9, 3),
			want:  flowlayout.Size{Width: 9, Height: 5},
		},
		"horizontal card keeps track height": {
			kind:  flowlayout.Waterfall,
			dir:   flowlayout.Horizontal,
			text:  "short",
			frame: flowlayout.NewRect(0, 0, 12, 7),
			want:  flowlayout.Size{Width: 9, Height: 7},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := measureItem(tt.kind, tt.dir, tt.text, tt.frame); got != tt.want {
				t.Errorf("measureItem() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettleConverges(t *testing.T) {
	l, cat, _, err := newDemoLayout(flowlayout.Vertical, flowlayout.NewRect(0, 0, 60, 30))
	if err != nil {
		t.Fatalf("newDemoLayout() error = %v", err)
	}
	if n := settle(l, cat, flowlayout.Rect{}); n == 0 {
		t.Error("first settle reported no changes")
	}
	if n := settle(l, cat, flowlayout.Rect{}); n != 0 {
		t.Errorf("second settle reported %d changes, want 0", n)
	}
}

func TestDemoModel_Edits(t *testing.T) {
	m, err := newDemoModel(flowlayout.Vertical)
	if err != nil {
		t.Fatalf("newDemoModel() error = %v", err)
	}

	type tc struct {
		edit func()
		want string
	}

	tests := []tc{
		{edit: m.deleteVisible, want: "deleted"},
		{edit: m.insertCard, want: "inserted"},
		{edit: m.reloadVisible, want: "reloaded"},
		{edit: m.moveVisible, want: "moved"},
		{edit: m.appendSection, want: "inserted section"},
		{edit: m.removeLastSection, want: "deleted section"},
		{edit: m.toggleAxis, want: "scrolling horizontal"},
	}

	for _, tt := range tests {
		tt.edit()
		m.settle()
		if !strings.Contains(m.status, tt.want) {
			t.Errorf("status = %q, want it to contain %q", m.status, tt.want)
		}
		for section := range m.cat.NumberOfSections() {
			n := m.cat.NumberOfItems(section)
			if _, ok := m.layout.AttributesForItem(flowlayout.IndexPath{Section: section, Item: n - 1}); n > 0 && !ok {
				t.Errorf("after %q: section %d missing item %d", tt.want, section, n-1)
			}
			if _, ok := m.layout.AttributesForItem(flowlayout.IndexPath{Section: section, Item: n}); ok {
				t.Errorf("after %q: section %d has more than %d items", tt.want, section, n)
			}
		}
	}
}
