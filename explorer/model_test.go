package explorer

import (
	"testing"

	"github.com/constructhub/constructtree/constructs"
)

// newLinearTree builds root -> mid -> leaf, every id distinct.
func newLinearTree(t *testing.T) (root, mid, leaf *constructs.Node) {
	t.Helper()
	rootC := constructs.NewRoot()
	root = rootC.Node()

	midC, err := constructs.NewConstruct(rootC, "mid")
	if err != nil {
		t.Fatalf("mid: %v", err)
	}
	mid = midC.Node()

	leafC, err := constructs.NewConstruct(midC, "leaf")
	if err != nil {
		t.Fatalf("leaf: %v", err)
	}
	leaf = leafC.Node()
	return root, mid, leaf
}

func TestNewModel_AllVisibleWhenExpanded(t *testing.T) {
	root, _, _ := newLinearTree(t)
	m := NewModel(root)

	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 3 {
		t.Fatalf("expected 3 visible lines, got %d", len(lines))
	}
}

func TestModel_CollapseHidesDescendants(t *testing.T) {
	root, mid, _ := newLinearTree(t)
	m := NewModel(root)

	m.entries.get(mid).expanded = false
	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 2 {
		t.Fatalf("expected 2 visible lines after collapsing mid, got %d", len(lines))
	}
}

func TestModel_NavigateClampsAtEnds(t *testing.T) {
	root, _, leaf := newLinearTree(t)
	m := NewModel(root)

	m.focused = root
	m.navigate(-1)
	if m.focused != root {
		t.Fatalf("navigating up from root should stay at root")
	}

	m.focused = leaf
	m.navigate(1)
	if m.focused != leaf {
		t.Fatalf("navigating down from the last visible line should stay put")
	}
}

func TestModel_SearchFiltersToMatchesAndAncestors(t *testing.T) {
	root, mid, leaf := newLinearTree(t)
	m := NewModel(root)

	m.search("leaf")

	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 3 {
		t.Fatalf("expected root+mid+leaf visible (leaf matches, root and mid are its ancestors), got %d lines", len(lines))
	}
	var sawLeaf, sawMid bool
	for _, li := range lines {
		if li.node == leaf {
			sawLeaf = true
		}
		if li.node == mid {
			sawMid = true
		}
	}
	if !sawMid {
		t.Fatalf("mid should be visible: it is an ancestor of the search match")
	}
	if !sawLeaf {
		t.Fatalf("leaf should be visible as a search match")
	}
}

func TestModel_ResetRestoresFullVisibility(t *testing.T) {
	root, _, _ := newLinearTree(t)
	m := NewModel(root)

	m.search("leaf")
	m.reset()

	lines := walkExpanded(m.root, m.entries)
	if len(lines) != 3 {
		t.Fatalf("expected all 3 lines visible after reset, got %d", len(lines))
	}
}
