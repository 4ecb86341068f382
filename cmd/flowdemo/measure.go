package main

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-flowlayout"
	"github.com/muesli/reflow/wordwrap"
)

// Width of card text when cards are measured along a horizontal scroll axis.
const horizontalCardText = 18

var (
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tagStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// cells rounds a layout length to terminal cells.
func cells(v float64) int {
	return int(math.Round(v))
}

// wrapCard wraps text to fit a card of the given outer width.
func wrapCard(text string, outer int) string {
	inner := outer - cardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		return ""
	}
	return wordwrap.String(text, inner)
}

// renderItem draws an item into a block exactly w by h cells.
func renderItem(kind flowlayout.SectionKind, text string, w, h int) string {
	style := cardStyle
	if kind != flowlayout.Waterfall {
		style = tagStyle
	}
	fw, fh := style.GetHorizontalFrameSize(), style.GetVerticalFrameSize()
	if w <= fw || h <= fh {
		return ""
	}
	body := text
	if kind == flowlayout.Waterfall {
		body = wrapCard(text, w)
	}
	// Width and Height include padding but not the border.
	return style.
		Width(w - style.GetHorizontalBorderSize()).
		Height(h - fh).
		MaxHeight(h).
		Render(body)
}

// measureItem returns the size an item needs when drawn. frame is the item's
// current frame; the cross-axis length of a waterfall card is fixed by its
// track, so the card is wrapped to it.
func measureItem(kind flowlayout.SectionKind, dir flowlayout.ScrollDirection, text string, frame flowlayout.Rect) flowlayout.Size {
	if kind != flowlayout.Waterfall {
		block := tagStyle.Render(text)
		return flowlayout.Size{Width: float64(lipgloss.Width(block)), Height: float64(lipgloss.Height(block))}
	}
	if dir == flowlayout.Horizontal {
		block := cardStyle.Render(wordwrap.String(text, horizontalCardText))
		return flowlayout.Size{Width: float64(lipgloss.Width(block)), Height: frame.Height}
	}
	width := cells(frame.Width)
	block := cardStyle.Render(wrapCard(text, width))
	return flowlayout.Size{Width: frame.Width, Height: float64(lipgloss.Height(block))}
}

// settle measures every dynamic item inside rect and reports the sizes until
// the layout stops changing. Passing an empty rect measures everything.
func settle(l *flowlayout.Layout, cat *catalog, rect flowlayout.Rect) int {
	const maxPasses = 8
	reports := 0
	for range maxPasses {
		changed := false
		for _, path := range pathsIn(l, cat, rect) {
			a, ok := l.AttributesForItem(path)
			if !ok {
				continue
			}
			item, _ := cat.item(path)
			size := measureItem(cat.sections[path.Section].kind, l.ScrollDirection(), item.text, a.Frame)
			if l.ReportMeasuredSize(flowlayout.KindItem, path, size) {
				changed = true
				reports++
			}
		}
		if !changed {
			break
		}
	}
	return reports
}

func pathsIn(l *flowlayout.Layout, cat *catalog, rect flowlayout.Rect) []flowlayout.IndexPath {
	var paths []flowlayout.IndexPath
	if rect.IsEmpty() {
		for section := range cat.NumberOfSections() {
			for item := range cat.NumberOfItems(section) {
				paths = append(paths, flowlayout.IndexPath{Section: section, Item: item})
			}
		}
		return paths
	}
	for _, a := range l.AttributesForElements(rect) {
		if a.Kind == flowlayout.KindItem {
			paths = append(paths, a.IndexPath)
		}
	}
	return paths
}
