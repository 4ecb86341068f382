package model

import "fmt"

// NotFound marks an IndexPath that addresses a whole section rather than an item.
const NotFound = -1

// IndexPath addresses an item within a section.
type IndexPath struct {
	Section int
	Item    int
}

// SectionPath returns an IndexPath that addresses the whole section.
func SectionPath(section int) IndexPath {
	return IndexPath{Section: section, Item: NotFound}
}

// IsSection returns true if the path addresses a whole section.
func (p IndexPath) IsSection() bool {
	return p.Item == NotFound
}

// Less orders paths by section, then item.
func (p IndexPath) Less(other IndexPath) bool {
	if p.Section != other.Section {
		return p.Section < other.Section
	}
	return p.Item < other.Item
}

func (p IndexPath) String() string {
	if p.IsSection() {
		return fmt.Sprintf("[%d]", p.Section)
	}
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// ElementKind identifies the type of element an Attributes value describes.
type ElementKind uint8

const (
	KindItem       ElementKind = iota // A cell
	KindHeader                        // Section header
	KindFooter                        // Section footer
	KindBackground                    // Section background decoration
)

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}
