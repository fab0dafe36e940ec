package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/constructhub/constructtree/constructs"
)

// NodeProvider supplies icon, label, and style for one line of the
// rendered tree, mirroring the teacher's NodeProvider[T] contract
// generalized away from a generic payload to *constructs.Node.
type NodeProvider interface {
	Icon(n *constructs.Node) string
	Format(n *constructs.Node) string
	Style(n *constructs.Node, isFocused bool) lipgloss.Style
}

// DefaultProvider is a batteries-included NodeProvider: it shows the
// node's id, marks locked subtrees and nodes currently failing
// validation, and highlights the focused line.
type DefaultProvider struct {
	defaultStyle lipgloss.Style
	focusedStyle lipgloss.Style
	lockedStyle  lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewDefaultProvider builds a DefaultProvider with sensible colors.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{
		defaultStyle: lipgloss.NewStyle(),
		focusedStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		lockedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Icon returns a lock glyph for locked subtrees, a warning glyph for
// nodes with failing validators, or a blank placeholder otherwise.
func (p *DefaultProvider) Icon(n *constructs.Node) string {
	switch {
	case n.IsLocked():
		return normalizeIconWidth("🔒")
	case PredHasValidationErrors(n):
		return normalizeIconWidth("⚠")
	default:
		return normalizeIconWidth(" ")
	}
}

// Format renders the node's id (or "<root>" for the root) plus its address.
func (p *DefaultProvider) Format(n *constructs.Node) string {
	label := n.ID()
	if n.Scope() == nil {
		label = "<root>"
	}
	return fmt.Sprintf("%s  %s", label, n.Addr())
}

// Style picks the focused, locked, error, or default style, in that
// priority order.
func (p *DefaultProvider) Style(n *constructs.Node, isFocused bool) lipgloss.Style {
	switch {
	case isFocused:
		return p.focusedStyle
	case n.IsLocked():
		return p.lockedStyle
	case PredHasValidationErrors(n):
		return p.errorStyle
	default:
		return p.defaultStyle
	}
}

// normalizeIconWidth pads icons to a uniform rune width so that labels
// stay aligned under each other regardless of glyph width, exactly the
// teacher's NormalizeIconWidth helper.
func normalizeIconWidth(icon string) string {
	if icon == "" {
		return ""
	}
	const targetWidth = 3
	width := runewidth.StringWidth(icon)
	if width >= targetWidth {
		if strings.HasSuffix(icon, " ") {
			return icon
		}
		return icon + " "
	}
	return icon + strings.Repeat(" ", targetWidth-width)
}
