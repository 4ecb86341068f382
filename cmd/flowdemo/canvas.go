package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/grindlemire/go-flowlayout"
)

// canvas is a grid of cells the visible elements are painted onto.
type canvas struct {
	width, height int
	cells         [][]rune
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]rune, c.height)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.width))
	}
	return c
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) fill(x, y, w, h int, r rune) {
	for dy := range max(h, 0) {
		for dx := range max(w, 0) {
			c.set(x+dx, y+dy, r)
		}
	}
}

// blit copies a multi-line block with its top-left corner at (x, y), clipped
// to w by h cells.
func (c *canvas) blit(x, y, w, h int, block string) {
	for dy, line := range strings.Split(block, "\n") {
		if dy >= h {
			return
		}
		dx := 0
		for _, r := range line {
			if dx >= w {
				break
			}
			c.set(x+dx, y+dy, r)
			dx++
		}
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// paint draws every element in view onto a canvas the size of view.
func paint(l *flowlayout.Layout, cat *catalog, view flowlayout.Rect) *canvas {
	c := newCanvas(cells(view.Width), cells(view.Height))
	elements := l.AttributesForElements(view)

	// Lower z-index first so pinned headers end up on top.
	slices.SortStableFunc(elements, func(a, b flowlayout.Attributes) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	for _, a := range elements {
		x := cells(a.Frame.X - view.X)
		y := cells(a.Frame.Y - view.Y)
		w, h := cells(a.Frame.Width), cells(a.Frame.Height)
		switch a.Kind {
		case flowlayout.KindBackground:
			r, _ := a.ExtraAttributes.(rune)
			c.fill(x, y, w, h, r)
		case flowlayout.KindHeader:
			c.fill(x, y, w, h, ' ')
			title := "▌ " + cat.sections[a.IndexPath.Section].title
			if a.Pinned {
				title += " (pinned)"
			}
			c.blit(x, y, w, h, title)
		case flowlayout.KindFooter:
			c.fill(x, y, w, h, '─')
			c.blit(x, y, w, h, "─ end ")
		case flowlayout.KindItem:
			item, ok := cat.item(a.IndexPath)
			if !ok {
				continue
			}
			c.blit(x, y, w, h, renderItem(cat.sections[a.IndexPath.Section].kind, item.text, w, h))
		}
	}
	return c
}
