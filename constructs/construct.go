package constructs

// rootLabel is the sentinel Construct.String() returns for the root,
// since its Path is the empty string and printing that would be
// useless for log lines and error messages.
const rootLabel = "<root>"

// Handle is satisfied by any value wrapping a Node, including Construct
// itself and any subclass built on top of it. It is the "construct
// marker" IsConstruct checks for.
type Handle interface {
	Node() *Node
}

// Construct is the thin public handle carrying a Node. It is the
// anchor subclasses embed to gain tree membership: embed *Construct (or
// hand-roll a type implementing Handle over your own *Node) and call
// Node().SetSelf(yourInstance) once, in your own constructor, so
// legacy-hook detection and metadata/validation inspect your subclass
// rather than this base type.
type Construct struct {
	node *Node
}

// NewConstruct attaches a new construct under scope with the given id,
// enforcing every invariant in the data model: sibling uniqueness, the
// synthesis guard, and the "/" -> "--" id substitution.
//
// Passing a nil scope with an empty id is accepted and produces a root
// construct, preserved for compatibility with callers that predate
// NewRoot; prefer NewRoot explicitly in new code.
func NewConstruct(scope Handle, id string) (*Construct, error) {
	var scopeNode *Node
	if scope != nil {
		scopeNode = scope.Node()
	}
	node, err := newNode(scopeNode, id)
	if err != nil {
		return nil, err
	}
	c := &Construct{node: node}
	node.self = c
	return c, nil
}

// NewRoot creates a fresh root construct: no scope, the conventional
// empty id.
func NewRoot() *Construct {
	node := newRootNode()
	c := &Construct{node: node}
	node.self = c
	return c
}

// Node returns the underlying Node.
func (c *Construct) Node() *Node { return c.node }

// String renders the construct's path, or the root sentinel.
func (c *Construct) String() string {
	if c.node.scope == nil {
		return rootLabel
	}
	return c.node.Path()
}

// IsConstruct reports whether x carries the construct marker, i.e.
// whether it (or its pointer/value receiver method set) implements
// Handle. This is the safe, cross-package replacement for an instanceof
// check.
func IsConstruct(x any) bool {
	_, ok := x.(Handle)
	return ok
}
