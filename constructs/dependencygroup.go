package constructs

// DependencyGroup is a mutable composite of other Dependables,
// including other groups. Its DependencyRoots is computed lazily, at
// read time, by flattening all members transitively. Critically, a
// group stores references to its members, not a snapshot of their
// roots: members added after the group has already been declared as a
// dependency elsewhere are observed the next time that dependency is
// resolved.
type DependencyGroup struct {
	members []any
}

// NewDependencyGroup creates a group seeded with the given members.
// Members may be Nodes, Construct handles, other DependencyGroups, or
// any object previously registered via ImplementDependable.
func NewDependencyGroup(members ...any) *DependencyGroup {
	g := &DependencyGroup{}
	g.Add(members...)
	return g
}

// Add appends members to the group. Safe to call after the group has
// already been passed to AddDependency elsewhere; the new members will
// be visible on the next DependencyRoots/Dependencies read.
func (g *DependencyGroup) Add(items ...any) {
	g.members = append(g.members, items...)
}

// DependencyRoots flattens the group's members, transitively resolving
// nested groups, and returns the unique set of concrete nodes in
// first-visit order.
func (g *DependencyGroup) DependencyRoots() ([]*Node, error) {
	seen := make(map[*Node]bool)
	var out []*Node

	for _, member := range g.members {
		d, err := ResolveDependable(member)
		if err != nil {
			return nil, err
		}
		roots, err := d.DependencyRoots()
		if err != nil {
			return nil, err
		}
		for _, root := range roots {
			if seen[root] {
				continue
			}
			seen[root] = true
			out = append(out, root)
		}
	}
	return out, nil
}
