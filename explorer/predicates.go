package explorer

import (
	"strings"

	"github.com/constructhub/constructtree/constructs"
)

// Predicate is a boolean test over a construct node, in the same
// composable spirit as the teacher's Pred* helpers (PredIsDir,
// PredHasExtension, ...), generalized from a filesystem payload to the
// construct tree's own properties: lock state, validation outcome,
// and declared context.

// PredIsLocked reports whether n (or an ancestor) is locked.
func PredIsLocked(n *constructs.Node) bool {
	return n.IsLocked()
}

// PredHasValidationErrors reports whether n's own registered
// validators report any error. A node whose self value defines a
// legacy hook is treated as failing, since Validate itself fails for it.
func PredHasValidationErrors(n *constructs.Node) bool {
	errs, err := n.Validate()
	if err != nil {
		return true
	}
	return len(errs) > 0
}

// PredHasContext returns a predicate that checks whether n resolves
// key via its upward context lookup.
func PredHasContext(key string) func(n *constructs.Node) bool {
	return func(n *constructs.Node) bool {
		_, ok := n.TryGetContext(key)
		return ok
	}
}

// PredIDContains returns a predicate matching nodes whose id contains
// text, case-insensitively — the default search predicate.
func PredIDContains(text string) func(n *constructs.Node) bool {
	lowered := strings.ToLower(text)
	return func(n *constructs.Node) bool {
		return strings.Contains(strings.ToLower(n.ID()), lowered)
	}
}

// PredNot negates a predicate.
func PredNot(p func(n *constructs.Node) bool) func(n *constructs.Node) bool {
	return func(n *constructs.Node) bool { return !p(n) }
}

// PredAny combines predicates with logical OR.
func PredAny(preds ...func(n *constructs.Node) bool) func(n *constructs.Node) bool {
	return func(n *constructs.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}
