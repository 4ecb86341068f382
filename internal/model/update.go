package model

import "fmt"

// UpdateKind identifies a batch edit operation.
type UpdateKind uint8

const (
	SectionInsert UpdateKind = iota + 1
	SectionDelete
	SectionMove
	SectionReload
	ItemInsert
	ItemDelete
	ItemMove
	ItemReload
)

// String returns the operation name.
func (k UpdateKind) String() string {
	switch k {
	case SectionInsert:
		return "sectionInsert"
	case SectionDelete:
		return "sectionDelete"
	case SectionMove:
		return "sectionMove"
	case SectionReload:
		return "sectionReload"
	case ItemInsert:
		return "itemInsert"
	case ItemDelete:
		return "itemDelete"
	case ItemMove:
		return "itemMove"
	case ItemReload:
		return "itemReload"
	default:
		return "unknown"
	}
}

// Update is one batch edit. Which fields are meaningful depends on Kind:
//
//   - Section operations use Section (pre-edit index for delete, reload and move
//     source; final index for insert) and FinalSection (move destination).
//   - Item operations use Item and FinalItem in the same way.
//   - Inserts and reloads carry the freshly built model.
type Update struct {
	Kind         UpdateKind
	Section      int
	FinalSection int
	Item         IndexPath
	FinalItem    IndexPath
	NewSection   *SectionModel
	NewItem      *ItemModel
}

// NewSectionInsert inserts section at its final index.
func NewSectionInsert(index int, section *SectionModel) Update {
	return Update{Kind: SectionInsert, Section: index, NewSection: section}
}

// NewSectionDelete deletes the section at its pre-edit index.
func NewSectionDelete(index int) Update {
	return Update{Kind: SectionDelete, Section: index}
}

// NewSectionMove moves a section from its pre-edit index to its final index.
func NewSectionMove(from, to int) Update {
	return Update{Kind: SectionMove, Section: from, FinalSection: to}
}

// NewSectionReload replaces the section at its pre-edit index.
func NewSectionReload(index int, section *SectionModel) Update {
	return Update{Kind: SectionReload, Section: index, NewSection: section}
}

// NewItemInsert inserts item at its final path.
func NewItemInsert(path IndexPath, item *ItemModel) Update {
	return Update{Kind: ItemInsert, Item: path, NewItem: item}
}

// NewItemDelete deletes the item at its pre-edit path.
func NewItemDelete(path IndexPath) Update {
	return Update{Kind: ItemDelete, Item: path}
}

// NewItemMove moves an item from its pre-edit path to its final path.
func NewItemMove(from, to IndexPath) Update {
	return Update{Kind: ItemMove, Item: from, FinalItem: to}
}

// NewItemReload replaces the item at its pre-edit path.
func NewItemReload(path IndexPath, item *ItemModel) Update {
	return Update{Kind: ItemReload, Item: path, NewItem: item}
}

func (u Update) String() string {
	switch u.Kind {
	case SectionInsert, SectionDelete, SectionReload:
		return fmt.Sprintf("%s %d", u.Kind, u.Section)
	case SectionMove:
		return fmt.Sprintf("%s %d -> %d", u.Kind, u.Section, u.FinalSection)
	case ItemMove:
		return fmt.Sprintf("%s %s -> %s", u.Kind, u.Item, u.FinalItem)
	default:
		return fmt.Sprintf("%s %s", u.Kind, u.Item)
	}
}
