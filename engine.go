package flowlayout

import (
	"fmt"

	"github.com/grindlemire/go-flowlayout/internal/debug"
	"github.com/grindlemire/go-flowlayout/internal/model"
)

var defaultEstimatedItemSize = Size{Width: 50, Height: 50}

// Layout computes and caches the geometry of a sectioned collection. It is
// not safe for concurrent use; the host drives it from one goroutine.
type Layout struct {
	source   DataSource
	provider Provider
	store    *model.Store

	// Option values, handed to the store by New.
	direction     ScrollDirection
	estimated     Size
	flipForRTL    bool
	assertions    bool
	onContentSize func(Size)

	pending     prepareActions
	hasPinned   bool
	lastContent Size
	reported    bool
}

// New creates a Layout for source laid out inside bounds. The first Prepare
// (or query) builds every model.
func New(source DataSource, bounds Rect, opts ...Option) (*Layout, error) {
	if source == nil {
		return nil, ErrNilDataSource
	}

	l := &Layout{
		source:    source,
		provider:  BaseProvider{},
		direction: Vertical,                 // Default scroll axis
		estimated: defaultEstimatedItemSize, // Default estimate for unmeasured items
		pending:   recreateSectionModels,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	l.store = model.NewStore(l.direction, bounds, l.estimated)
	return l, nil
}

// ScrollDirection returns the axis content scrolls along.
func (l *Layout) ScrollDirection() ScrollDirection {
	return l.store.Direction()
}

// SetScrollDirection changes the scroll axis and invalidates everything.
func (l *Layout) SetScrollDirection(d ScrollDirection) error {
	if d != Vertical && d != Horizontal {
		return fmt.Errorf("%w: unknown scroll direction %d", ErrInvalidOption, d)
	}
	if d == l.store.Direction() {
		return nil
	}
	l.store.SetDirection(d)
	l.Invalidate(InvalidationRequest{Kind: InvalidateEverything})
	return nil
}

// EstimatedItemSize returns the size used for dynamic lengths that have not
// been measured yet.
func (l *Layout) EstimatedItemSize() Size {
	return l.store.EstimatedSize()
}

// SetEstimatedItemSize changes the estimate. Measured lengths are kept; every
// section is relaid out by the next query.
func (l *Layout) SetEstimatedItemSize(size Size) error {
	if err := checkEstimate(size); err != nil {
		return err
	}
	l.store.SetEstimatedSize(size)
	debug.Prepare("estimated item size %vx%v", size.Width, size.Height)
	return nil
}

// Bounds returns the visible region the layout was last given.
func (l *Layout) Bounds() Rect {
	return l.store.Bounds()
}

// FlipsHorizontally reports whether the host should mirror frames in
// right-to-left locales.
func (l *Layout) FlipsHorizontally() bool {
	return l.flipForRTL
}

// HasPinnedHeaderOrFooter reports whether any section pins a visible header
// or footer, as of the last Prepare or batch edit.
func (l *Layout) HasPinnedHeaderOrFooter() bool {
	return l.hasPinned
}

// Prepare performs the work recorded by Invalidate and lays out every dirty
// section. A full rebuild takes precedence over a metrics pass. Queries call
// Prepare themselves when work is pending.
func (l *Layout) Prepare() {
	switch {
	case l.pending&recreateSectionModels != 0:
		l.rebuild()
	case l.pending&updateLayoutMetrics != 0:
		l.updateMetrics()
	}
	l.pending = 0
	l.store.LayoutIfNeeded()
	l.hasPinned = l.store.HasPinnedHeaderOrFooter()
	l.notifyContentSize()
}

func (l *Layout) prepareIfNeeded() {
	if l.pending != 0 {
		l.Prepare()
	}
}

// rebuild recreates every model from the DataSource.
func (l *Layout) rebuild() {
	n := l.source.NumberOfSections()
	sections := make([]*model.SectionModel, n)
	for i := range n {
		sections[i] = l.sectionModel(i)
	}
	l.store.SetSections(sections)
	debug.Prepare("rebuilt %d sections", n)
}

// updateMetrics re-reads configuration for the existing models without
// consulting the DataSource.
func (l *Layout) updateMetrics() {
	n := l.store.NumberOfSections()
	for section := range n {
		metrics := l.metrics(section)
		l.store.UpdateMetrics(metrics, section)
		l.store.SetHeader(l.headerModel(section, metrics), section)
		l.store.SetFooter(l.footerModel(section, metrics), section)
		l.store.SetDecoration(l.decorationModel(section), section)
		for item := range l.store.NumberOfItems(section) {
			path := IndexPath{Section: section, Item: item}
			l.store.UpdateItemSizeMode(l.store.CorrectSizeMode(l.provider.ItemSizeMode(path), model.KindItem, metrics), path)
		}
	}
	debug.Prepare("updated metrics for %d sections", n)
}

func (l *Layout) metrics(section int) SectionMetrics {
	p := l.provider
	return model.SectionMetrics{
		Section:             section,
		Inset:               p.SectionInset(section),
		LineSpacing:         p.LineSpacing(section),
		InteritemSpacing:    p.InteritemSpacing(section),
		InsetContainsHeader: p.InsetContainsHeader(section),
		InsetContainsFooter: p.InsetContainsFooter(section),
		PinHeader:           p.PinHeader(section),
		PinFooter:           p.PinFooter(section),
	}.ApplyType(p.SectionType(section)).Sanitized()
}

func (l *Layout) sectionModel(section int) *model.SectionModel {
	metrics := l.metrics(section)
	items := make([]*model.ItemModel, max(l.source.NumberOfItems(section), 0))
	for i := range items {
		items[i] = l.itemModel(IndexPath{Section: section, Item: i}, metrics)
	}
	return model.NewSectionModel(l.headerModel(section, metrics), l.footerModel(section, metrics), items, l.decorationModel(section), metrics)
}

func (l *Layout) itemModel(path IndexPath, metrics SectionMetrics) *model.ItemModel {
	return model.NewItemModel(l.store.CorrectSizeMode(l.provider.ItemSizeMode(path), model.KindItem, metrics))
}

func (l *Layout) headerModel(section int, metrics SectionMetrics) *model.HeaderModel {
	vis := l.provider.HeaderVisibility(section)
	if !vis.Visible {
		return nil
	}
	return model.NewHeaderModel(l.store.CorrectSizeMode(vis.SizeMode, model.KindHeader, metrics))
}

func (l *Layout) footerModel(section int, metrics SectionMetrics) *model.FooterModel {
	vis := l.provider.FooterVisibility(section)
	if !vis.Visible {
		return nil
	}
	return model.NewFooterModel(l.store.CorrectSizeMode(vis.SizeMode, model.KindFooter, metrics))
}

func (l *Layout) decorationModel(section int) *model.DecorationModel {
	vis := l.provider.BackgroundVisibility(section)
	if !vis.Visible {
		return nil
	}
	return model.NewDecorationModel(vis.ExtraAttributes, l.provider.DecorationInset(section))
}

func (l *Layout) notifyContentSize() {
	size := l.store.ContentSize()
	if l.reported && size == l.lastContent {
		return
	}
	l.lastContent = size
	l.reported = true
	if l.onContentSize != nil {
		l.onContentSize(size)
	}
}

// AttributesForItem returns the attributes of the item at path, or false if
// it does not exist.
func (l *Layout) AttributesForItem(path IndexPath) (Attributes, bool) {
	l.prepareIfNeeded()
	return l.store.ItemAttributes(path)
}

// AttributesForSupplementary returns the attributes of a section's header,
// footer or background, or false if the section does not show it.
func (l *Layout) AttributesForSupplementary(kind ElementKind, section int) (Attributes, bool) {
	l.prepareIfNeeded()
	return l.store.SupplementaryAttributes(kind, section)
}

// AttributesForElements returns every element whose frame intersects rect.
func (l *Layout) AttributesForElements(rect Rect) []Attributes {
	l.prepareIfNeeded()
	l.hasPinned = l.store.HasPinnedHeaderOrFooter()
	return l.store.ElementsIn(rect)
}

// ContentSize returns the size of all content.
func (l *Layout) ContentSize() Size {
	l.prepareIfNeeded()
	l.notifyContentSize()
	return l.lastContent
}

// ReportMeasuredSize feeds the size the host measured for a dynamic element
// back into the layout. It returns true if the element's length changed; the
// section is then relaid out by the next query.
func (l *Layout) ReportMeasuredSize(kind ElementKind, path IndexPath, size Size) bool {
	l.prepareIfNeeded()
	changed := l.store.UpdateMeasuredSize(kind, path, size)
	if changed {
		debug.Measure("%s %s -> %vx%v", kind, path, size.Width, size.Height)
	}
	return changed
}

// InitialAttributesForAppearingItem returns where an inserted item animates in
// from during the current batch.
func (l *Layout) InitialAttributesForAppearingItem(path IndexPath) (Attributes, bool) {
	return l.store.InitialAttributesForAppearing(KindItem, path)
}

// FinalAttributesForDisappearingItem returns where a deleted item animates out
// to during the current batch.
func (l *Layout) FinalAttributesForDisappearingItem(path IndexPath) (Attributes, bool) {
	return l.store.FinalAttributesForDisappearing(KindItem, path)
}

// InitialAttributesForAppearingSupplementary is InitialAttributesForAppearingItem
// for headers, footers and backgrounds.
func (l *Layout) InitialAttributesForAppearingSupplementary(kind ElementKind, section int) (Attributes, bool) {
	return l.store.InitialAttributesForAppearing(kind, SectionPath(section))
}

// FinalAttributesForDisappearingSupplementary is FinalAttributesForDisappearingItem
// for headers, footers and backgrounds.
func (l *Layout) FinalAttributesForDisappearingSupplementary(kind ElementKind, section int) (Attributes, bool) {
	return l.store.FinalAttributesForDisappearing(kind, SectionPath(section))
}
