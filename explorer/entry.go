// Package explorer renders a constructs.Node tree as an interactive
// terminal UI: an expand/collapse, searchable inspector built on
// bubbletea, in the same spirit as a synthesizer's "tree" debug
// command. It is a read-only consumer of an already-built tree — it
// never mutates ids, scope, or context, only its own per-node
// expanded/visible view state.
package explorer

import "github.com/constructhub/constructtree/constructs"

// entry is the explorer's own view-state for one node: whether its
// children are currently shown (expanded) and whether it currently
// passes the active search/filter (visible). constructs.Node itself
// carries none of this — it is immutable once built — so the explorer
// keeps this state in a side-table keyed by node identity.
type entry struct {
	expanded bool
	visible  bool
}

// entries is the explorer's per-node view-state side-table.
type entries map[*constructs.Node]*entry

func newEntries(root *constructs.Node) entries {
	e := make(entries)
	for _, n := range root.FindAll(constructs.PreOrder) {
		e[n] = &entry{expanded: true, visible: true}
	}
	return e
}

func (e entries) get(n *constructs.Node) *entry {
	if ent, ok := e[n]; ok {
		return ent
	}
	ent := &entry{expanded: true, visible: true}
	e[n] = ent
	return ent
}

func (e entries) isExpanded(n *constructs.Node) bool { return e.get(n).expanded }
func (e entries) isVisible(n *constructs.Node) bool   { return e.get(n).visible }
