package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/grindlemire/go-flowlayout/internal/geometry"
)

// elementKey identifies an element across a batch edit.
type elementKey struct {
	kind ElementKind
	path IndexPath
}

// batchState is kept between ApplyUpdates and ClearInProgressBatchUpdateState
// so the host can animate appearing and disappearing elements.
type batchState struct {
	id       uuid.UUID
	inserted map[elementKey]bool          // Final paths
	deleted  map[elementKey]geometry.Rect // Pre-edit paths and absolute frames
}

// sectionPlacement is a section entering the sequence at its final index.
type sectionPlacement struct {
	index   int
	section *SectionModel
	insert  bool
}

// itemPlacement is an item entering a section at its final path.
type itemPlacement struct {
	path   IndexPath
	item   *ItemModel
	insert bool
}

// ApplyUpdates applies one batch of edits. Deletes, reloads and move sources
// use pre-edit indices; inserts and move destinations use final indices. The
// edits are applied to a copy, so on error the store is left untouched.
func (s *Store) ApplyUpdates(updates []Update) (uuid.UUID, error) {
	s.LayoutIfNeeded()
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("batch id: %w", err)
	}

	next := make([]*SectionModel, len(s.sections))
	for i, sec := range s.sections {
		next[i] = sec.clone()
	}
	state := &batchState{
		id:       id,
		inserted: map[elementKey]bool{},
		deleted:  map[elementKey]geometry.Rect{},
	}

	var (
		itemReloads     []Update
		itemRemovals    []Update
		sectionReloads  []Update
		sectionRemovals []Update
		sectionInserts  []sectionPlacement
		itemInserts     []itemPlacement
	)
	for _, u := range updates {
		switch u.Kind {
		case ItemReload:
			itemReloads = append(itemReloads, u)
		case ItemDelete, ItemMove:
			itemRemovals = append(itemRemovals, u)
		case SectionReload:
			sectionReloads = append(sectionReloads, u)
		case SectionDelete, SectionMove:
			sectionRemovals = append(sectionRemovals, u)
		case SectionInsert:
			sectionInserts = append(sectionInserts, sectionPlacement{index: u.Section, section: u.NewSection, insert: true})
		case ItemInsert:
			itemInserts = append(itemInserts, itemPlacement{path: u.Item, item: u.NewItem, insert: true})
		default:
			return uuid.Nil, fmt.Errorf("unknown update kind %d", u.Kind)
		}
	}

	validItem := func(path IndexPath) bool {
		return path.Section >= 0 && path.Section < len(next) &&
			path.Item >= 0 && path.Item < len(next[path.Section].Items)
	}

	for _, u := range itemReloads {
		if !validItem(u.Item) || u.NewItem == nil {
			return uuid.Nil, fmt.Errorf("%w: reload item %s", ErrIndexOutOfRange, u.Item)
		}
		next[u.Item.Section].Items[u.Item.Item] = u.NewItem
		next[u.Item.Section].dirty = true
	}

	// Remove from the back so earlier pre-edit indices stay valid.
	sort.SliceStable(itemRemovals, func(i, j int) bool {
		return itemRemovals[j].Item.Less(itemRemovals[i].Item)
	})
	for i, u := range itemRemovals {
		if !validItem(u.Item) || (i > 0 && itemRemovals[i-1].Item == u.Item) {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, u)
		}
		sec := next[u.Item.Section]
		if u.Kind == ItemDelete {
			state.deleted[elementKey{KindItem, u.Item}] = s.absolute(s.sections[u.Item.Section].Items[u.Item.Item].Frame, u.Item.Section)
		}
		item := sec.DeleteItem(u.Item.Item)
		if u.Kind == ItemMove {
			itemInserts = append(itemInserts, itemPlacement{path: u.FinalItem, item: item})
		}
	}

	for _, u := range sectionReloads {
		if u.Section < 0 || u.Section >= len(next) || u.NewSection == nil {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, u)
		}
		next[u.Section] = u.NewSection
		u.NewSection.dirty = true
	}

	sort.SliceStable(sectionRemovals, func(i, j int) bool {
		return sectionRemovals[i].Section > sectionRemovals[j].Section
	})
	for i, u := range sectionRemovals {
		if u.Section < 0 || u.Section >= len(next) || (i > 0 && sectionRemovals[i-1].Section == u.Section) {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, u)
		}
		removed := next[u.Section]
		next = append(next[:u.Section], next[u.Section+1:]...)
		if u.Kind == SectionMove {
			sectionInserts = append(sectionInserts, sectionPlacement{index: u.FinalSection, section: removed})
			continue
		}
		s.recordDeletedSection(state, u.Section)
	}

	sort.SliceStable(sectionInserts, func(i, j int) bool {
		return sectionInserts[i].index < sectionInserts[j].index
	})
	for _, p := range sectionInserts {
		if p.index < 0 || p.index > len(next) || p.section == nil {
			return uuid.Nil, fmt.Errorf("%w: insert section %d", ErrIndexOutOfRange, p.index)
		}
		next = append(next, nil)
		copy(next[p.index+1:], next[p.index:])
		next[p.index] = p.section
		if p.insert {
			p.section.dirty = true
			recordInsertedSection(state, p.section, p.index)
		}
	}

	sort.SliceStable(itemInserts, func(i, j int) bool {
		return itemInserts[i].path.Less(itemInserts[j].path)
	})
	for _, p := range itemInserts {
		if p.path.Section < 0 || p.path.Section >= len(next) ||
			p.path.Item < 0 || p.path.Item > len(next[p.path.Section].Items) || p.item == nil {
			return uuid.Nil, fmt.Errorf("%w: insert item %s", ErrIndexOutOfRange, p.path)
		}
		next[p.path.Section].InsertItem(p.item, p.path.Item)
		if p.insert {
			state.inserted[elementKey{KindItem, p.path}] = true
		}
	}

	s.sections = next
	s.offsets = s.offsets[:1]
	s.needsLayout = true
	s.batch = state
	return id, nil
}

// recordDeletedSection remembers the pre-edit frames of every element of the
// section at index.
func (s *Store) recordDeletedSection(state *batchState, index int) {
	sec := s.sections[index]
	if sec.Header != nil {
		state.deleted[elementKey{KindHeader, SectionPath(index)}] = s.absolute(sec.Header.Frame, index)
	}
	if sec.Footer != nil {
		state.deleted[elementKey{KindFooter, SectionPath(index)}] = s.absolute(sec.Footer.Frame, index)
	}
	if sec.Decoration != nil {
		state.deleted[elementKey{KindBackground, SectionPath(index)}] = s.absolute(sec.Decoration.Frame, index)
	}
	for i, item := range sec.Items {
		path := IndexPath{Section: index, Item: i}
		state.deleted[elementKey{KindItem, path}] = s.absolute(item.Frame, index)
	}
}

func recordInsertedSection(state *batchState, sec *SectionModel, index int) {
	if sec.Header != nil {
		state.inserted[elementKey{KindHeader, SectionPath(index)}] = true
	}
	if sec.Footer != nil {
		state.inserted[elementKey{KindFooter, SectionPath(index)}] = true
	}
	if sec.Decoration != nil {
		state.inserted[elementKey{KindBackground, SectionPath(index)}] = true
	}
	for i := range sec.Items {
		state.inserted[elementKey{KindItem, IndexPath{Section: index, Item: i}}] = true
	}
}

// BatchID returns the ID of the batch in progress.
func (s *Store) BatchID() (uuid.UUID, bool) {
	if s.batch == nil {
		return uuid.Nil, false
	}
	return s.batch.id, true
}

// ClearInProgressBatchUpdateState drops the appearing and disappearing
// bookkeeping of the last batch.
func (s *Store) ClearInProgressBatchUpdateState() {
	s.batch = nil
}

// InitialAttributesForAppearing returns the attributes an inserted element
// animates in from: its final frame, fully transparent.
func (s *Store) InitialAttributesForAppearing(kind ElementKind, path IndexPath) (Attributes, bool) {
	if s.batch == nil || !s.batch.inserted[elementKey{kind, path}] {
		return Attributes{}, false
	}
	var (
		a  Attributes
		ok bool
	)
	if kind == KindItem {
		a, ok = s.ItemAttributes(path)
	} else {
		a, ok = s.SupplementaryAttributes(kind, path.Section)
	}
	if !ok {
		return Attributes{}, false
	}
	a.Alpha = 0
	return a, true
}

// FinalAttributesForDisappearing returns the attributes a deleted element
// animates out to: its pre-edit frame, fully transparent.
func (s *Store) FinalAttributesForDisappearing(kind ElementKind, path IndexPath) (Attributes, bool) {
	if s.batch == nil {
		return Attributes{}, false
	}
	frame, ok := s.batch.deleted[elementKey{kind, path}]
	if !ok {
		return Attributes{}, false
	}
	z := ZItem
	switch kind {
	case KindHeader, KindFooter:
		z = ZSupplementary
	case KindBackground:
		z = ZBackground
	}
	return Attributes{Kind: kind, IndexPath: path, Frame: frame, ZIndex: z}, true
}
