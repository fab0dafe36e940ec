package explorer

import "testing"

func TestNew_StartsWithEveryNodeVisible(t *testing.T) {
	root, _, leaf := newLinearTree(t)
	m := New(root)

	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 3 {
		t.Fatalf("expected 3 visible lines, got %d", len(lines))
	}
	if m.focused != root {
		t.Fatalf("expected initial focus on root")
	}
	_ = leaf
}

func TestNew_WithCollapsedStartsChildrenHidden(t *testing.T) {
	root, _, _ := newLinearTree(t)
	m := New(root, WithCollapsed())

	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 2 {
		t.Fatalf("expected root plus its direct child visible under WithCollapsed (grandchildren hidden), got %d lines", len(lines))
	}
}

func TestNew_WithWidthAndHeight(t *testing.T) {
	root, _, _ := newLinearTree(t)
	m := New(root, WithWidth(100), WithHeight(40))

	if m.width != 100 || m.height != 40 {
		t.Fatalf("expected width=100 height=40, got width=%d height=%d", m.width, m.height)
	}
}
