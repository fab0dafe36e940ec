package explorer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/constructhub/constructtree/constructs"
)

// New builds an explorer Model rooted at root without starting the
// Bubble Tea event loop, for callers embedding the explorer in their
// own program (tests, composite TUIs).
func New(root *constructs.Node, opts ...Option) *Model {
	return NewModel(root, opts...)
}

// Run starts an interactive full-screen session exploring root and
// blocks until the user quits.
func Run(root *constructs.Node, opts ...Option) error {
	p := tea.NewProgram(New(root, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
