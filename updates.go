package flowlayout

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/grindlemire/go-flowlayout/internal/debug"
	"github.com/grindlemire/go-flowlayout/internal/model"
)

// BatchID identifies one applied batch of edits. It is a version 7 UUID, so
// IDs sort in the order batches were applied.
type BatchID = uuid.UUID

// UpdateAction is the kind of a raw edit reported by the host.
type UpdateAction uint8

const (
	UpdateInsert UpdateAction = iota
	UpdateDelete
	UpdateReload
	UpdateMove
)

// String returns the action name.
func (a UpdateAction) String() string {
	switch a {
	case UpdateInsert:
		return "insert"
	case UpdateDelete:
		return "delete"
	case UpdateReload:
		return "reload"
	case UpdateMove:
		return "move"
	default:
		return fmt.Sprintf("UpdateAction(%d)", a)
	}
}

// UpdateItem is one edit as the host reports it. Before is the pre-edit path
// (delete, reload, move source), After the final path (insert, move
// destination). A path whose Item is NotFound addresses a whole section.
type UpdateItem struct {
	Action UpdateAction
	Before *IndexPath
	After  *IndexPath
}

// InsertItems returns insert edits for the given final paths.
func InsertItems(paths ...IndexPath) []UpdateItem {
	return pathEdits(UpdateInsert, false, paths)
}

// DeleteItems returns delete edits for the given pre-edit paths.
func DeleteItems(paths ...IndexPath) []UpdateItem {
	return pathEdits(UpdateDelete, true, paths)
}

// ReloadItems returns reload edits for the given pre-edit paths.
func ReloadItems(paths ...IndexPath) []UpdateItem {
	return pathEdits(UpdateReload, true, paths)
}

// MoveItem returns a move edit.
func MoveItem(from, to IndexPath) UpdateItem {
	return UpdateItem{Action: UpdateMove, Before: &from, After: &to}
}

func pathEdits(action UpdateAction, before bool, paths []IndexPath) []UpdateItem {
	edits := make([]UpdateItem, len(paths))
	for i := range paths {
		edits[i] = UpdateItem{Action: action}
		if before {
			edits[i].Before = &paths[i]
		} else {
			edits[i].After = &paths[i]
		}
	}
	return edits
}

// PrepareForUpdates applies a batch of edits the DataSource already reflects.
// Sections and items that did not change keep their cached geometry.
//
// When a full rebuild is pending the edits are absorbed by it and the zero
// BatchID is returned. After applying, counts are checked against the
// DataSource; a mismatch returns ErrCountMismatch (or panics with
// WithAssertions) and schedules a full rebuild.
func (l *Layout) PrepareForUpdates(items []UpdateItem) (BatchID, error) {
	if l.pending&recreateSectionModels != 0 {
		l.Prepare()
		debug.Batch("%d edits absorbed by full rebuild", len(items))
		return BatchID{}, nil
	}

	updates, err := l.translate(items)
	if err != nil {
		l.pending |= recreateSectionModels
		debug.Batch("rejected %d edits: %v", len(items), err)
		return BatchID{}, err
	}

	id, err := l.store.ApplyUpdates(updates)
	if err != nil {
		l.pending |= recreateSectionModels
		debug.Batch("rejected %d edits: %v", len(updates), err)
		return BatchID{}, err
	}
	debug.Batch("%s applied %d edits", id, len(updates))

	if err := l.store.VerifyCounts(l.source.NumberOfSections(), l.source.NumberOfItems); err != nil {
		if l.assertions {
			panic(fmt.Sprintf("flowlayout: %v", err))
		}
		l.pending |= recreateSectionModels
		debug.Batch("%s: %v, scheduling full rebuild", id, err)
		return id, err
	}
	l.hasPinned = l.store.HasPinnedHeaderOrFooter()
	return id, nil
}

// FinalizeUpdates ends the batch started by PrepareForUpdates. Appearing and
// disappearing attributes are no longer available afterwards.
func (l *Layout) FinalizeUpdates() {
	if id, ok := l.store.BatchID(); ok {
		debug.Batch("%s finalized", id)
	}
	l.store.ClearInProgressBatchUpdateState()
}

// translate turns raw edits into model updates, building fresh models for
// inserted and reloaded elements from the DataSource and Provider.
func (l *Layout) translate(items []UpdateItem) ([]model.Update, error) {
	updates := make([]model.Update, 0, len(items))
	sections := l.source.NumberOfSections()
	finalSection := func(p *IndexPath) error {
		if p.Section < 0 || p.Section >= sections {
			return fmt.Errorf("%w: section %d, data source has %d", ErrIndexOutOfRange, p.Section, sections)
		}
		return nil
	}

	positions, err := newFinalPositions(items)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		switch it.Action {
		case UpdateInsert:
			if err := finalSection(it.After); err != nil {
				return nil, err
			}
			if it.After.IsSection() {
				updates = append(updates, model.NewSectionInsert(it.After.Section, l.sectionModel(it.After.Section)))
				continue
			}
			updates = append(updates, model.NewItemInsert(*it.After, l.itemModel(*it.After, l.metrics(it.After.Section))))

		case UpdateDelete:
			if it.Before.IsSection() {
				updates = append(updates, model.NewSectionDelete(it.Before.Section))
				continue
			}
			updates = append(updates, model.NewItemDelete(*it.Before))

		case UpdateReload:
			// The DataSource already reflects the batch, so the fresh model is
			// read at the element's final position.
			source, ok := it.After, true
			if source == nil {
				var final IndexPath
				final, ok = positions.final(*it.Before)
				source = &final
			}
			if !ok {
				return nil, fmt.Errorf("%w: reload of removed %s", ErrIndexOutOfRange, *it.Before)
			}
			if err := finalSection(source); err != nil {
				return nil, err
			}
			if it.Before.IsSection() {
				updates = append(updates, model.NewSectionReload(it.Before.Section, l.sectionModel(source.Section)))
				continue
			}
			updates = append(updates, model.NewItemReload(*it.Before, l.itemModel(*source, l.metrics(source.Section))))

		case UpdateMove:
			if it.Before.IsSection() {
				updates = append(updates, model.NewSectionMove(it.Before.Section, it.After.Section))
				continue
			}
			updates = append(updates, model.NewItemMove(*it.Before, *it.After))
		}
	}
	return updates, nil
}

// finalPositions maps pre-edit paths to their final paths across one batch.
type finalPositions struct {
	deletedSections  map[int]bool
	movedSections    map[int]int
	removedSections  []int // Pre-edit indices, deleted or moved away
	insertedSections []int // Final indices, inserted or moved in

	deletedItems  map[IndexPath]bool
	movedItems    map[IndexPath]IndexPath
	removedItems  map[int][]int // Pre-edit section -> pre-edit items
	insertedItems map[int][]int // Final section -> final items
}

// newFinalPositions validates the shape of every edit and records where the
// batch removes and inserts elements.
func newFinalPositions(items []UpdateItem) (*finalPositions, error) {
	f := &finalPositions{
		deletedSections: map[int]bool{},
		movedSections:   map[int]int{},
		deletedItems:    map[IndexPath]bool{},
		movedItems:      map[IndexPath]IndexPath{},
		removedItems:    map[int][]int{},
		insertedItems:   map[int][]int{},
	}
	insert := func(p IndexPath) {
		if p.IsSection() {
			f.insertedSections = append(f.insertedSections, p.Section)
			return
		}
		f.insertedItems[p.Section] = append(f.insertedItems[p.Section], p.Item)
	}
	remove := func(p IndexPath) {
		if p.IsSection() {
			f.removedSections = append(f.removedSections, p.Section)
			return
		}
		f.removedItems[p.Section] = append(f.removedItems[p.Section], p.Item)
	}

	for _, it := range items {
		switch it.Action {
		case UpdateInsert:
			if it.After == nil {
				return nil, fmt.Errorf("%w: insert without a final path", ErrIndexOutOfRange)
			}
			insert(*it.After)
		case UpdateDelete:
			if it.Before == nil {
				return nil, fmt.Errorf("%w: delete without a pre-edit path", ErrIndexOutOfRange)
			}
			remove(*it.Before)
			if it.Before.IsSection() {
				f.deletedSections[it.Before.Section] = true
			} else {
				f.deletedItems[*it.Before] = true
			}
		case UpdateReload:
			if it.Before == nil {
				return nil, fmt.Errorf("%w: reload without a pre-edit path", ErrIndexOutOfRange)
			}
		case UpdateMove:
			if it.Before == nil || it.After == nil {
				return nil, fmt.Errorf("%w: move needs both paths", ErrIndexOutOfRange)
			}
			if it.Before.IsSection() != it.After.IsSection() {
				return nil, fmt.Errorf("%w: move from %s to %s", ErrIndexOutOfRange, *it.Before, *it.After)
			}
			remove(*it.Before)
			insert(*it.After)
			if it.Before.IsSection() {
				f.movedSections[it.Before.Section] = it.After.Section
			} else {
				f.movedItems[*it.Before] = *it.After
			}
		default:
			return nil, fmt.Errorf("unknown update action %s", it.Action)
		}
	}

	slices.Sort(f.insertedSections)
	for _, paths := range f.insertedItems {
		slices.Sort(paths)
	}
	return f, nil
}

// final returns the final path of the element at the pre-edit path p, or
// false when the batch deletes it.
func (f *finalPositions) final(p IndexPath) (IndexPath, bool) {
	section, ok := f.finalSection(p.Section)
	if !ok {
		return IndexPath{}, false
	}
	if p.IsSection() {
		return SectionPath(section), true
	}
	if to, ok := f.movedItems[p]; ok {
		return to, true
	}
	if f.deletedItems[p] {
		return IndexPath{}, false
	}
	return IndexPath{Section: section, Item: shift(p.Item, f.removedItems[p.Section], f.insertedItems[section])}, true
}

func (f *finalPositions) finalSection(section int) (int, bool) {
	if to, ok := f.movedSections[section]; ok {
		return to, true
	}
	if f.deletedSections[section] {
		return 0, false
	}
	return shift(section, f.removedSections, f.insertedSections), true
}

// shift moves a pre-edit index past the removals before it, then past the
// final-index insertions (sorted ascending) at or before it.
func shift(index int, removed, inserted []int) int {
	final := index
	for _, r := range removed {
		if r < index {
			final--
		}
	}
	for _, i := range inserted {
		if i <= final {
			final++
		}
	}
	return final
}
