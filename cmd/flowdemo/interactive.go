package main

import (
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-flowlayout"
	"github.com/grindlemire/go-flowlayout/internal/debug"
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

const hints = "↑↓←→ scroll  d delete  i insert  r reload  m move  n/x add/remove section  s axis  o direction  a align  q quit"

func runInteractive(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	logPath := fs.String("log", "", "Path to debug log file")
	horizontal := fs.Bool("horizontal", false, "Start scrolling horizontally")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer debug.Close()
	}

	dir := flowlayout.Vertical
	if *horizontal {
		dir = flowlayout.Horizontal
	}
	m, err := newDemoModel(dir)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// demoModel is the bubbletea host. It owns the catalog and drives the layout
// through every boundary call: bounds changes, measurement, batch edits and
// metrics invalidation.
type demoModel struct {
	cat      *catalog
	provider *catalogProvider
	layout   *flowlayout.Layout

	width, height int
	offset        float64
	status        string
}

func newDemoModel(dir flowlayout.ScrollDirection) (*demoModel, error) {
	m := &demoModel{width: 80, height: 24}
	l, cat, p, err := newDemoLayout(dir, m.viewport(), flowlayout.WithContentSizeHandler(func(s flowlayout.Size) {
		debug.Log("content size %vx%v", s.Width, s.Height)
	}))
	if err != nil {
		return nil, err
	}
	m.layout, m.cat, m.provider = l, cat, p
	m.settle()
	return m, nil
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applyBounds()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k", "left", "h":
			m.scrollBy(-1)
		case "down", "j", "right", "l":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-m.pageLength())
		case "pgdown", " ":
			m.scrollBy(m.pageLength())
		case "d":
			m.deleteVisible()
		case "i":
			m.insertCard()
		case "r":
			m.reloadVisible()
		case "m":
			m.moveVisible()
		case "n":
			m.appendSection()
		case "x":
			m.removeLastSection()
		case "s":
			m.toggleAxis()
		case "o":
			m.provider.direction = (m.provider.direction + 1) % 3
			m.layout.Invalidate(flowlayout.InvalidationRequest{Kind: flowlayout.InvalidateMetrics})
			m.status = fmt.Sprintf("row direction %d", m.provider.direction)
		case "a":
			m.provider.alignment = (m.provider.alignment + 1) % 3
			m.layout.Invalidate(flowlayout.InvalidationRequest{Kind: flowlayout.InvalidateMetrics})
			m.status = fmt.Sprintf("row alignment %d", m.provider.alignment)
		}
	}
	m.settle()
	return m, nil
}

func (m *demoModel) View() string {
	view := m.viewport()
	body := paint(m.layout, m.cat, view).String()
	content := m.layout.ContentSize()
	info := fmt.Sprintf(" %s  content %vx%v  offset %v  %s", m.layout.ScrollDirection(), content.Width, content.Height, m.offset, m.status)
	bar := statusStyle.Width(m.width).MaxWidth(m.width).Render(info)
	return strings.Join([]string{body, bar, hintStyle.MaxWidth(m.width).Render(hints)}, "\n")
}

// viewport is the visible region in content coordinates, leaving two rows
// for the status and hint bars.
func (m *demoModel) viewport() flowlayout.Rect {
	w, h := float64(m.width), float64(max(m.height-2, 1))
	if m.layout != nil && m.layout.ScrollDirection() == flowlayout.Horizontal {
		return flowlayout.NewRect(m.offset, 0, w, h)
	}
	return flowlayout.NewRect(0, m.offset, w, h)
}

func (m *demoModel) pageLength() float64 {
	v := m.viewport()
	if m.layout.ScrollDirection() == flowlayout.Horizontal {
		return v.Width
	}
	return v.Height
}

func (m *demoModel) scrollBy(delta float64) {
	content := m.layout.ContentSize()
	limit := content.Height
	if m.layout.ScrollDirection() == flowlayout.Horizontal {
		limit = content.Width
	}
	m.offset = min(max(m.offset+delta, 0), max(limit-m.pageLength(), 0))
	m.applyBounds()
}

func (m *demoModel) applyBounds() {
	bounds := m.viewport()
	if m.layout.ShouldInvalidateForBoundsChange(bounds) {
		m.layout.Invalidate(m.layout.InvalidationForBoundsChange(bounds))
	}
}

func (m *demoModel) settle() {
	if n := settle(m.layout, m.cat, m.viewport()); n > 0 {
		debug.Measure("%d measured sizes changed", n)
	}
}

// firstVisibleItem returns the lowest index path among the visible items.
func (m *demoModel) firstVisibleItem() (flowlayout.IndexPath, bool) {
	var (
		first flowlayout.IndexPath
		found bool
	)
	for _, a := range m.layout.AttributesForElements(m.viewport()) {
		if a.Kind == flowlayout.KindItem && (!found || a.IndexPath.Less(first)) {
			first, found = a.IndexPath, true
		}
	}
	return first, found
}

func (m *demoModel) commit(edits []flowlayout.UpdateItem, describe func(id string) string) {
	id, err := m.layout.PrepareForUpdates(edits)
	if err != nil {
		m.status = err.Error()
		m.layout.FinalizeUpdates()
		return
	}
	m.status = describe(shortID(id))
	m.layout.FinalizeUpdates()
}

func (m *demoModel) deleteVisible() {
	path, ok := m.firstVisibleItem()
	if !ok {
		return
	}
	m.cat.deleteItem(path)
	m.commit(flowlayout.DeleteItems(path), func(id string) string {
		gone, _ := m.layout.FinalAttributesForDisappearingItem(path)
		return fmt.Sprintf("batch %s: deleted %s from %v,%v", id, path, gone.Frame.X, gone.Frame.Y)
	})
}

func (m *demoModel) insertCard() {
	section := 0
	for i, s := range m.cat.sections {
		if s.kind == flowlayout.Waterfall {
			section = i
			break
		}
	}
	path := flowlayout.IndexPath{Section: section, Item: 0}
	m.cat.insertItem(path, m.cat.newItem(cardTexts[m.cat.nextID%len(cardTexts)]))
	m.commit(flowlayout.InsertItems(path), func(id string) string {
		in, _ := m.layout.InitialAttributesForAppearingItem(path)
		return fmt.Sprintf("batch %s: inserted %s at %v,%v", id, path, in.Frame.X, in.Frame.Y)
	})
}

func (m *demoModel) reloadVisible() {
	path, ok := m.firstVisibleItem()
	if !ok {
		return
	}
	item, _ := m.cat.item(path)
	text := strings.ToUpper(item.text)
	if text == item.text {
		text = strings.ToLower(item.text)
	}
	m.cat.replaceItem(path, text)
	m.commit(flowlayout.ReloadItems(path), func(id string) string {
		return fmt.Sprintf("batch %s: reloaded %s", id, path)
	})
}

func (m *demoModel) moveVisible() {
	from, ok := m.firstVisibleItem()
	if !ok {
		return
	}
	to := flowlayout.IndexPath{Section: from.Section, Item: m.cat.NumberOfItems(from.Section) - 1}
	item, _ := m.cat.item(from)
	m.cat.deleteItem(from)
	m.cat.insertItem(to, item)
	m.commit([]flowlayout.UpdateItem{flowlayout.MoveItem(from, to)}, func(id string) string {
		return fmt.Sprintf("batch %s: moved %s to %s", id, from, to)
	})
}

func (m *demoModel) appendSection() {
	index := m.cat.appendSection(flowlayout.TagList, tagWords[m.cat.nextID%10:][:6])
	after := flowlayout.SectionPath(index)
	m.commit([]flowlayout.UpdateItem{{Action: flowlayout.UpdateInsert, After: &after}}, func(id string) string {
		return fmt.Sprintf("batch %s: inserted section %d", id, index)
	})
	// The footer moves to the new last section.
	m.layout.Invalidate(flowlayout.InvalidationRequest{Kind: flowlayout.InvalidateMetrics})
}

func (m *demoModel) removeLastSection() {
	last := len(m.cat.sections) - 1
	if last < 1 {
		return
	}
	m.cat.sections = m.cat.sections[:last]
	before := flowlayout.SectionPath(last)
	m.commit([]flowlayout.UpdateItem{{Action: flowlayout.UpdateDelete, Before: &before}}, func(id string) string {
		return fmt.Sprintf("batch %s: deleted section %d", id, last)
	})
	m.layout.Invalidate(flowlayout.InvalidationRequest{Kind: flowlayout.InvalidateMetrics})
	m.scrollBy(0)
}

func (m *demoModel) toggleAxis() {
	next := flowlayout.Horizontal
	if m.layout.ScrollDirection() == flowlayout.Horizontal {
		next = flowlayout.Vertical
	}
	if err := m.layout.SetScrollDirection(next); err != nil {
		m.status = err.Error()
		return
	}
	m.provider.scroll = next
	m.offset = 0
	m.layout.Invalidate(m.layout.InvalidationForBoundsChange(m.viewport()))
	m.status = "scrolling " + next.String()
}

func shortID(id flowlayout.BatchID) string {
	if id == (flowlayout.BatchID{}) {
		return "(rebuild)"
	}
	s := id.String()
	return s[len(s)-8:]
}
