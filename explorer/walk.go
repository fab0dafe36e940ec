package explorer

import "github.com/constructhub/constructtree/constructs"

// lineInfo mirrors the teacher's NodeInfo: a node plus the metadata a
// renderer needs to draw tree-branch glyphs and track focus.
type lineInfo struct {
	node   *constructs.Node
	depth  int
	isLast bool
}

// walkExpanded performs the same explicit-stack depth-first walk as
// the teacher's dfsSeq, but only descends into nodes the entries
// side-table currently marks expanded, and skips nodes marked
// invisible by the active search filter.
func walkExpanded(root *constructs.Node, e entries) []lineInfo {
	type frame struct {
		node   *constructs.Node
		depth  int
		isLast bool
	}

	stack := []frame{{node: root, depth: 0, isLast: true}}
	out := make([]lineInfo, 0)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.isVisible(f.node) {
			out = append(out, lineInfo{node: f.node, depth: f.depth, isLast: f.isLast})
		}

		if e.isExpanded(f.node) {
			children := f.node.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					node:   children[i],
					depth:  f.depth + 1,
					isLast: i == len(children)-1,
				})
			}
		}
	}
	return out
}
