// Package constructs implements the construct tree: a generic,
// hierarchical composition model for declaratively building an
// in-memory representation of a system. Each Node carries a stable
// identity, scoped context, metadata annotations, declarative
// cross-node dependencies, and validation hooks.
//
// The tree is built on a single execution context. Nodes are immutable
// in parent/id once inserted; the only supported structural edit after
// construction is Node.TryRemoveChild, reserved for rare surgical
// fixes. Nothing in this package performs file I/O, logging, or
// process bootstrapping — those are the concern of callers.
package constructs

import "strings"

// TraversalOrder selects how FindAll walks a subtree.
type TraversalOrder int

const (
	// PreOrder visits a node before its children, left to right.
	PreOrder TraversalOrder = iota
	// PostOrder visits a node's children, left to right, before the node itself.
	PostOrder
)

// Node is the canonical per-construct state described in the data
// model: identity, scope, children, context, metadata, validations,
// and declared dependencies. A Node is never created directly; use
// NewConstruct, NewRoot, or a Construct subclass's own constructor.
type Node struct {
	id       string
	scope    *Node
	children []*Node

	context map[string]any

	metadata []MetadataEntry

	validations []Validator

	declaredDependencies []Dependable

	defaultChildOverride *Node

	locked bool

	// self holds the most-derived value wrapping this node (typically
	// the subclass instance), used for legacy-hook detection. NewConstruct
	// and NewRoot set it to the *Construct they create; a Construct
	// subclass constructor replaces it via SetSelf.
	self any
}

// newNode validates and links a node as a child of scope. scope == nil
// means the new node is itself a root; none of the non-root invariants
// apply in that case (see the open question on NewConstruct(nil, "")
// in DESIGN.md).
func newNode(scope *Node, id string) (*Node, error) {
	normalized := strings.ReplaceAll(id, "/", "--")

	if scope != nil {
		if normalized == "" {
			return nil, ErrInvalidRootId
		}
		if locked := lockedAncestor(scope); locked != nil {
			return nil, synthesisGuardError(locked)
		}
		if _, exists := scope.TryFindChild(normalized); exists {
			return nil, duplicateSiblingError(parentLabel(scope), normalized)
		}
	}

	n := &Node{id: normalized, scope: scope}
	if scope != nil {
		scope.children = append(scope.children, n)
	}
	return n, nil
}

// newRootNode constructs a bare root node with the conventional empty id.
func newRootNode() *Node {
	return &Node{id: ""}
}

// parentLabel names a scope for use in DuplicateSibling messages: "App"
// for the root, its path otherwise.
func parentLabel(scope *Node) string {
	if scope.scope == nil {
		return "App"
	}
	return scope.Path()
}

// lockedAncestor walks from n upward and returns the first (deepest)
// locked node found, or nil if neither n nor any ancestor is locked.
func lockedAncestor(n *Node) *Node {
	for cur := n; cur != nil; cur = cur.scope {
		if cur.locked {
			return cur
		}
	}
	return nil
}

// ID returns the node's normalized identifier. It never contains "/".
func (n *Node) ID() string { return n.id }

// Scope returns the parent node, or nil for a root.
func (n *Node) Scope() *Node { return n.scope }

// Children returns the direct children in insertion order. Treat the
// returned slice as read-only; it is the node's own backing slice.
func (n *Node) Children() []*Node { return n.children }

// SetSelf records the most-derived value (typically a Construct
// subclass instance) wrapping this node. Subclass constructors must
// call this once, immediately after construction, so legacy-hook
// detection inspects the subclass's own method set rather than the
// base handle's.
func (n *Node) SetSelf(self any) { n.self = self }

// Self returns whatever was last passed to SetSelf, or the *Construct
// created together with this node if SetSelf was never called.
func (n *Node) Self() any { return n.self }

// Path is the "/"-joined chain of ids from root to this node,
// excluding the root's own id. The root's path is "".
func (n *Node) Path() string {
	scopes := n.Scopes()
	ids := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if s.scope == nil {
			continue
		}
		ids = append(ids, s.id)
	}
	return strings.Join(ids, "/")
}

// Addr is the c8-prefixed SHA-1 address derived from the full chain of
// ids from root to this node (root's empty id included), with any
// "Default" component filtered out. See ComputeAddress.
func (n *Node) Addr() string {
	scopes := n.Scopes()
	ids := make([]string, len(scopes))
	for i, s := range scopes {
		ids[i] = s.id
	}
	return ComputeAddress(ids)
}

// Root returns the topmost ancestor, or n itself if n has no scope.
func (n *Node) Root() *Node {
	cur := n
	for cur.scope != nil {
		cur = cur.scope
	}
	return cur
}

// Scopes returns the chain of nodes from root to n, inclusive, in that order.
func (n *Node) Scopes() []*Node {
	var reversed []*Node
	for cur := n; cur != nil; cur = cur.scope {
		reversed = append(reversed, cur)
	}
	chain := make([]*Node, len(reversed))
	for i, node := range reversed {
		chain[len(chain)-1-i] = node
	}
	return chain
}

// TryFindChild looks up a direct child by id.
func (n *Node) TryFindChild(id string) (*Node, bool) {
	for _, c := range n.children {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// FindChild looks up a direct child by id, failing with
// ErrChildNotFound when absent.
func (n *Node) FindChild(id string) (*Node, error) {
	if c, ok := n.TryFindChild(id); ok {
		return c, nil
	}
	return nil, ErrChildNotFound
}

// TryRemoveChild removes and reports the direct child with the given
// id, if any. This is the only supported structural edit after
// construction; it exists for rare surgical fixes, not general
// re-parenting.
func (n *Node) TryRemoveChild(id string) bool {
	for i, c := range n.children {
		if c.id == id {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// FindAll returns every node in the subtree rooted at n, including n
// itself, linearized according to order.
func (n *Node) FindAll(order TraversalOrder) []*Node {
	out := make([]*Node, 0)
	var walk func(*Node)
	walk = func(cur *Node) {
		if order == PreOrder {
			out = append(out, cur)
		}
		for _, c := range cur.children {
			walk(c)
		}
		if order == PostOrder {
			out = append(out, cur)
		}
	}
	walk(n)
	return out
}

// DefaultChild resolves the conventional default child: an explicit
// override set via SetDefaultChild always wins; otherwise exactly one
// of a "Resource" or "Default" sibling is returned, nil if neither
// exists, and ErrAmbiguousDefaultChild if both do.
func (n *Node) DefaultChild() (*Node, error) {
	if n.defaultChildOverride != nil {
		return n.defaultChildOverride, nil
	}
	resource, hasResource := n.TryFindChild("Resource")
	def, hasDefault := n.TryFindChild("Default")
	switch {
	case hasResource && hasDefault:
		return nil, ErrAmbiguousDefaultChild
	case hasResource:
		return resource, nil
	case hasDefault:
		return def, nil
	default:
		return nil, nil
	}
}

// SetDefaultChild installs an explicit default child, overriding the
// Resource/Default convention unconditionally.
func (n *Node) SetDefaultChild(child *Node) { n.defaultChildOverride = child }

// Lock freezes this node's subtree against further child attachment.
func (n *Node) Lock() { n.locked = true }

// Unlock clears the lock bit set on this specific node. It does not
// affect a lock inherited from an ancestor.
func (n *Node) Unlock() { n.locked = false }

// IsLocked reports whether this node or any ancestor is locked, i.e.
// whether attaching a new child here would fail.
func (n *Node) IsLocked() bool { return lockedAncestor(n) != nil }

// DependencyRoots implements Dependable: a node is always its own sole
// producer. This is how every construct becomes automatically
// resolvable via ResolveDependable without explicit registration.
func (n *Node) DependencyRoots() ([]*Node, error) { return []*Node{n}, nil }
