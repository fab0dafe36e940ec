package explorer

import (
	"strings"

	"github.com/constructhub/constructtree/constructs"
)

// buildPrefix constructs the tree-branch glyphs connecting a node to
// its ancestors, verbatim from the teacher's renderer.go (only the
// doc comment is trimmed; the algorithm is unchanged).
func buildPrefix(ancestorIsLastChild []bool, isLast bool) string {
	var b strings.Builder
	for _, ancestorWasLast := range ancestorIsLastChild {
		if ancestorWasLast {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	if isLast {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	return b.String()
}

// renderLines turns the current expanded/visible view of root into
// styled lines, one per visible node, plus the line index of the
// focused node (-1 if not present in the current view).
func renderLines(root *constructs.Node, e entries, provider NodeProvider, focused *constructs.Node) ([]string, int) {
	lines := walkExpanded(root, e)

	out := make([]string, 0, len(lines))
	focusedIdx := -1
	var ancestorIsLastChild []bool

	for i, li := range lines {
		if li.depth >= len(ancestorIsLastChild) {
			ancestorIsLastChild = append(ancestorIsLastChild, li.isLast)
		} else {
			ancestorIsLastChild[li.depth] = li.isLast
			ancestorIsLastChild = ancestorIsLastChild[:li.depth+1]
		}

		var prefix string
		if li.depth > 0 {
			prefix = buildPrefix(ancestorIsLastChild[:li.depth], li.isLast)
		}

		isFocused := li.node == focused
		if isFocused {
			focusedIdx = i
		}

		icon := provider.Icon(li.node)
		label := provider.Format(li.node)
		style := provider.Style(li.node, isFocused)
		out = append(out, style.Render(prefix+icon+label))
	}
	return out, focusedIdx
}
