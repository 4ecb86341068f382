package flowlayout

// DataSource reports the shape of the collection.
type DataSource interface {
	NumberOfSections() int
	NumberOfItems(section int) int
}

// Provider answers configuration queries. The Layout asks once per section or
// element per preparation pass. Embed BaseProvider to inherit a default for
// every method you do not override.
type Provider interface {
	SectionType(section int) SectionType
	ItemSizeMode(path IndexPath) SizeMode
	HeaderVisibility(section int) SupplementaryVisibility
	FooterVisibility(section int) SupplementaryVisibility
	BackgroundVisibility(section int) BackgroundVisibility
	SectionInset(section int) Edges
	LineSpacing(section int) float64
	InteritemSpacing(section int) float64
	InsetContainsHeader(section int) bool
	InsetContainsFooter(section int) bool
	PinHeader(section int) bool
	PinFooter(section int) bool
	DecorationInset(section int) Edges
}

// BaseProvider is a Provider with the default answer to every query: one
// waterfall track, dynamically sized items, no insets or spacing and no
// supplementary elements.
type BaseProvider struct{}

var _ Provider = BaseProvider{}

func (BaseProvider) SectionType(int) SectionType { return WaterfallSection(1) }
func (BaseProvider) ItemSizeMode(IndexPath) SizeMode { return DynamicSize() }
func (BaseProvider) HeaderVisibility(int) SupplementaryVisibility { return HiddenSupplementary() }
func (BaseProvider) FooterVisibility(int) SupplementaryVisibility { return HiddenSupplementary() }
func (BaseProvider) BackgroundVisibility(int) BackgroundVisibility { return HiddenBackground() }
func (BaseProvider) SectionInset(int) Edges { return Edges{} }
func (BaseProvider) LineSpacing(int) float64 { return 0 }
func (BaseProvider) InteritemSpacing(int) float64 { return 0 }
func (BaseProvider) InsetContainsHeader(int) bool { return false }
func (BaseProvider) InsetContainsFooter(int) bool { return false }
func (BaseProvider) PinHeader(int) bool { return false }
func (BaseProvider) PinFooter(int) bool { return false }
func (BaseProvider) DecorationInset(int) Edges { return Edges{} }
