package explorer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/constructhub/constructtree/constructs"
)

// KeyMap groups key bindings for the interactive explorer. Provide your
// own via WithKeyMap to accommodate non-US layouts or different
// shortcuts. Trimmed from the teacher's KeyMap: a read-only construct
// tree has no multi-focus selection, so ExtendUp/ExtendDown are dropped.
type KeyMap struct {
	Quit     []string
	Up       []string
	Down     []string
	Expand   []string
	Collapse []string
	Toggle   []string
	Reset    []string

	SearchStart  []string
	SearchAccept []string
	SearchCancel []string
	SearchDelete []string
}

// DefaultKeyMap returns the explorer's default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     []string{"q", "ctrl+c"},
		Up:       []string{"up", "k"},
		Down:     []string{"down", "j"},
		Expand:   []string{"right", "l"},
		Collapse: []string{"left", "h"},
		Toggle:   []string{" "},
		Reset:    []string{"ctrl+r"},

		SearchStart:  []string{"/"},
		SearchAccept: []string{"enter"},
		SearchCancel: []string{"esc"},
		SearchDelete: []string{"backspace", "delete"},
	}
}

// Model wraps a construct tree and exposes it through a Bubble Tea
// model, the same role the teacher's TuiTreeModel plays for a generic
// Tree[T]: it owns the expand/collapse/search view state and renders
// the currently visible lines into a scrolling viewport.
type Model struct {
	root     *constructs.Node
	entries  entries
	provider NodeProvider
	focused  *constructs.Node

	keyMap KeyMap

	width    int
	height   int
	viewport viewport.Model

	searchTerm string
	showSearch bool
}

// NewModel builds a Model rooted at root, every node expanded and
// visible by default, focus starting on root itself.
func NewModel(root *constructs.Node, opts ...Option) *Model {
	m := &Model{
		root:     root,
		entries:  newEntries(root),
		provider: NewDefaultProvider(),
		focused:  root,
		keyMap:   DefaultKeyMap(),
		width:    80,
		height:   24,
		viewport: viewport.New(80, 24),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	m.updateViewportDimensions()
	m.refresh()
	return m
}

// Init satisfies tea.Model. The explorer needs no startup command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportDimensions()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showSearch {
		switch {
		case slices.Contains(m.keyMap.SearchAccept, key):
			m.showSearch = false
			m.updateViewportDimensions()
			return m, nil
		case slices.Contains(m.keyMap.SearchCancel, key):
			m.endSearch()
			return m, nil
		case slices.Contains(m.keyMap.SearchDelete, key):
			if len(m.searchTerm) > 0 {
				m.searchTerm = m.searchTerm[:len(m.searchTerm)-1]
				m.search(m.searchTerm)
			}
			return m, nil
		}
		if len(key) == 1 && key >= " " && key <= "~" {
			m.searchTerm += key
			m.search(m.searchTerm)
			return m, nil
		}
		return m, nil
	}

	switch {
	case slices.Contains(m.keyMap.Quit, key):
		return m, tea.Quit
	case slices.Contains(m.keyMap.Up, key):
		m.navigate(-1)
	case slices.Contains(m.keyMap.Down, key):
		m.navigate(1)
	case slices.Contains(m.keyMap.Expand, key):
		m.entries.get(m.focused).expanded = true
		m.refresh()
	case slices.Contains(m.keyMap.Collapse, key):
		m.entries.get(m.focused).expanded = false
		m.refresh()
	case slices.Contains(m.keyMap.Toggle, key):
		ent := m.entries.get(m.focused)
		ent.expanded = !ent.expanded
		m.refresh()
	case slices.Contains(m.keyMap.SearchStart, key):
		m.beginSearch()
	case slices.Contains(m.keyMap.Reset, key):
		m.reset()
	}
	return m, nil
}

// navigate moves focus delta positions through the currently visible
// lines, clamping at either end.
func (m *Model) navigate(delta int) {
	lines := walkExpanded(m.root, m.entries)
	idx := -1
	for i, li := range lines {
		if li.node == m.focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		if len(lines) > 0 {
			m.focused = lines[0].node
		}
		m.refresh()
		return
	}
	next := idx + delta
	if next < 0 {
		next = 0
	}
	if next >= len(lines) {
		next = len(lines) - 1
	}
	m.focused = lines[next].node
	m.refresh()
}

func (m *Model) beginSearch() {
	m.showSearch = true
	m.searchTerm = ""
	m.updateViewportDimensions()
}

func (m *Model) endSearch() {
	m.showSearch = false
	m.searchTerm = ""
	m.updateViewportDimensions()
	m.reset()
}

// reset clears search filtering and returns every node to visible.
func (m *Model) reset() {
	for _, ent := range m.entries {
		ent.visible = true
	}
	m.refresh()
}

// search marks nodes matching term (plus their ancestors, expanded so
// the match is reachable) visible, and hides everything else. An empty
// term is equivalent to reset.
func (m *Model) search(term string) {
	if term == "" {
		m.reset()
		return
	}
	match := PredIDContains(term)
	for _, ent := range m.entries {
		ent.visible = false
	}
	for _, n := range m.root.FindAll(constructs.PreOrder) {
		if !match(n) {
			continue
		}
		for cur := n; cur != nil; cur = cur.Scope() {
			ent := m.entries.get(cur)
			ent.visible = true
			if cur != n {
				ent.expanded = true
			}
		}
	}
	m.refresh()
}

// refresh re-renders the visible lines into the viewport and keeps the
// focused line in view.
func (m *Model) refresh() {
	lines, focusedIdx := renderLines(m.root, m.entries, m.provider, m.focused)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if focusedIdx >= 0 {
		m.viewport.YOffset = clampOffset(focusedIdx, m.viewport.Height, len(lines))
	}
}

func clampOffset(focusedIdx, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	offset := focusedIdx - height/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset
}

func (m *Model) updateViewportDimensions() {
	viewHeight := m.height - 3
	if m.showSearch {
		viewHeight -= 2
	}
	if viewHeight < 1 {
		viewHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = viewHeight
}

// View satisfies tea.Model.
func (m *Model) View() string {
	result := m.viewport.View()

	if m.showSearch {
		result = "Search: " + m.searchTerm + "\n\n" + result
	}

	result += "\n───────────────────────────────────────────────────────────────\n"
	result += m.navBar()
	return result
}

func (m *Model) navBar() string {
	var items []string
	add := func(keys []string, label string) {
		if len(keys) > 0 {
			items = append(items, fmt.Sprintf("%s: %s", strings.Join(keys, "/"), label))
		}
	}
	add(m.keyMap.Up, "Up")
	add(m.keyMap.Down, "Down")
	add(m.keyMap.Expand, "Expand")
	add(m.keyMap.Collapse, "Collapse")
	add(m.keyMap.Toggle, "Toggle")
	if m.showSearch {
		add(m.keyMap.SearchAccept, "Accept")
		add(m.keyMap.SearchCancel, "Cancel")
	} else {
		add(m.keyMap.SearchStart, "Search")
		add(m.keyMap.Quit, "Quit")
	}
	add(m.keyMap.Reset, "Reset")
	return strings.Join(items, "  ")
}
