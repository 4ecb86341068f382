package main

import (
	"fmt"

	"github.com/grindlemire/go-flowlayout"
)

var tagWords = []string{
	"go", "layout", "waterfall", "tags", "rows", "pinned", "headers", "footers",
	"batch", "edits", "measure", "self-sizing", "prefix", "offsets", "scroll",
	"terminal", "bubbletea", "lipgloss", "reflow", "cells",
}

var cardTexts = []string{
	"Items go to the shortest track.",
	"A header pinned to the top of the viewport stays inside its section.",
	"Deleting an item only shifts the items after it.",
	"Measured sizes are frozen until the next metrics pass, so reporting the same size twice is free.",
	"Tags wrap to a new line when the next one does not fit.",
	"Content size is the sum of every section length.",
	"Horizontal scrolling swaps the axes.",
	"Backgrounds wrap every element of their section.",
}

type demoItem struct {
	id   int
	text string
}

type demoSection struct {
	title string
	kind  flowlayout.SectionKind
	items []demoItem
}

// catalog is the demo DataSource. It owns the item text the host measures and
// draws, and every edit the demo makes goes through it first.
type catalog struct {
	sections []demoSection
	nextID   int
}

var _ flowlayout.DataSource = (*catalog)(nil)

func newCatalog() *catalog {
	c := &catalog{}
	c.sections = []demoSection{
		{title: "Tags", kind: flowlayout.TagList, items: c.items(tagWords)},
		{title: "Cards", kind: flowlayout.Waterfall, items: c.items(cardTexts)},
		{title: "Row", kind: flowlayout.Row, items: c.items(tagWords[:8])},
	}
	return c
}

func (c *catalog) items(texts []string) []demoItem {
	items := make([]demoItem, len(texts))
	for i, text := range texts {
		items[i] = c.newItem(text)
	}
	return items
}

func (c *catalog) newItem(text string) demoItem {
	c.nextID++
	return demoItem{id: c.nextID, text: text}
}

func (c *catalog) NumberOfSections() int { return len(c.sections) }

func (c *catalog) NumberOfItems(section int) int { return len(c.sections[section].items) }

func (c *catalog) item(path flowlayout.IndexPath) (demoItem, bool) {
	if path.Section < 0 || path.Section >= len(c.sections) {
		return demoItem{}, false
	}
	items := c.sections[path.Section].items
	if path.Item < 0 || path.Item >= len(items) {
		return demoItem{}, false
	}
	return items[path.Item], true
}

func (c *catalog) deleteItem(path flowlayout.IndexPath) {
	items := c.sections[path.Section].items
	c.sections[path.Section].items = append(items[:path.Item], items[path.Item+1:]...)
}

func (c *catalog) insertItem(path flowlayout.IndexPath, item demoItem) {
	items := append(c.sections[path.Section].items, demoItem{})
	copy(items[path.Item+1:], items[path.Item:])
	items[path.Item] = item
	c.sections[path.Section].items = items
}

func (c *catalog) replaceItem(path flowlayout.IndexPath, text string) {
	c.sections[path.Section].items[path.Item] = c.newItem(text)
}

func (c *catalog) appendSection(kind flowlayout.SectionKind, texts []string) int {
	c.sections = append(c.sections, demoSection{
		title: fmt.Sprintf("Section %d", len(c.sections)),
		kind:  kind,
		items: c.items(texts),
	})
	return len(c.sections) - 1
}

// catalogProvider configures the demo sections. Row direction and alignment
// are switched at runtime.
type catalogProvider struct {
	flowlayout.BaseProvider
	cat       *catalog
	scroll    flowlayout.ScrollDirection
	direction flowlayout.RowDirection
	alignment flowlayout.RowAlignment
}

// supplementaryMode is one row tall when scrolling vertically and a label
// wide when scrolling horizontally.
func (p *catalogProvider) supplementaryMode() flowlayout.SizeMode {
	if p.scroll == flowlayout.Horizontal {
		return flowlayout.DynamicSize().WithPrimary(p.scroll, flowlayout.Static(12))
	}
	return flowlayout.DynamicSize().WithPrimary(p.scroll, flowlayout.Static(1))
}

func (p *catalogProvider) SectionType(section int) flowlayout.SectionType {
	switch p.cat.sections[section].kind {
	case flowlayout.TagList:
		return flowlayout.TagListSection(p.direction, p.alignment)
	case flowlayout.Row:
		return flowlayout.RowSection(p.direction, p.alignment)
	default:
		return flowlayout.WaterfallSection(3)
	}
}

func (p *catalogProvider) ItemSizeMode(flowlayout.IndexPath) flowlayout.SizeMode {
	return flowlayout.DynamicSize()
}

func (p *catalogProvider) HeaderVisibility(int) flowlayout.SupplementaryVisibility {
	return flowlayout.VisibleSupplementary(p.supplementaryMode())
}

func (p *catalogProvider) FooterVisibility(section int) flowlayout.SupplementaryVisibility {
	if section != len(p.cat.sections)-1 {
		return flowlayout.HiddenSupplementary()
	}
	return flowlayout.VisibleSupplementary(p.supplementaryMode())
}

func (p *catalogProvider) BackgroundVisibility(section int) flowlayout.BackgroundVisibility {
	if p.cat.sections[section].kind != flowlayout.Waterfall {
		return flowlayout.HiddenBackground()
	}
	return flowlayout.VisibleBackground('·')
}

func (p *catalogProvider) SectionInset(int) flowlayout.Edges { return flowlayout.EdgeSymmetric(1, 2) }

func (p *catalogProvider) LineSpacing(section int) float64 {
	if p.cat.sections[section].kind == flowlayout.Waterfall {
		return 1
	}
	return 0
}

func (p *catalogProvider) InteritemSpacing(int) float64 { return 1 }

func (p *catalogProvider) PinHeader(int) bool { return true }

func (p *catalogProvider) PinFooter(int) bool { return true }

func (p *catalogProvider) DecorationInset(int) flowlayout.Edges { return flowlayout.EdgeSymmetric(0, 1) }

// newDemoLayout builds the demo catalog and a layout over it.
func newDemoLayout(dir flowlayout.ScrollDirection, bounds flowlayout.Rect, opts ...flowlayout.Option) (*flowlayout.Layout, *catalog, *catalogProvider, error) {
	cat := newCatalog()
	p := &catalogProvider{cat: cat, scroll: dir}
	opts = append([]flowlayout.Option{
		flowlayout.WithProvider(p),
		flowlayout.WithScrollDirection(dir),
		flowlayout.WithEstimatedItemSize(flowlayout.Size{Width: 12, Height: 3}),
	}, opts...)
	l, err := flowlayout.New(cat, bounds, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return l, cat, p, nil
}
