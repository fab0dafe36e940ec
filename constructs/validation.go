package constructs

import (
	"fmt"
	"reflect"
)

// Validator is a registered validation callable. Validate should
// report problems as plain strings; it must never raise through a
// panic for an expected validation failure — only the returned
// sequence communicates problems to callers.
type Validator interface {
	Validate() []string
}

// legacyHookNames are reserved: a subclass instance that defines any
// of them is relying on a hook lifecycle this package no longer
// supports; the current lifecycle is AddValidation plus Validate.
var legacyHookNames = [...]string{"OnValidate", "Synthesize", "OnSynthesize", "Prepare", "OnPrepare"}

// AddValidation registers v to run on this node (and only this node —
// Validate never recurses; callers traverse the tree themselves, e.g.
// via FindAll, and call Validate at each node).
func (n *Node) AddValidation(v Validator) {
	n.validations = append(n.validations, v)
}

// Validate runs every validator registered directly on this node and
// concatenates their reported errors. It fails with
// ErrLegacyHookForbidden if the node's self value (see SetSelf) defines
// one of the reserved legacy hook names — those names were load-bearing
// virtual methods in an earlier design and are no longer honored.
func (n *Node) Validate() ([]string, error) {
	if n.self != nil {
		if hook, found := definesLegacyHook(n.self); found {
			return nil, legacyHookError(n.Path(), hook)
		}
	}

	var out []string
	for _, v := range n.validations {
		out = append(out, v.Validate()...)
	}
	return out, nil
}

func definesLegacyHook(self any) (string, bool) {
	t := reflect.TypeOf(self)
	if t == nil {
		return "", false
	}
	for _, name := range legacyHookNames {
		if _, ok := t.MethodByName(name); ok {
			return name, true
		}
	}
	return "", false
}

func legacyHookError(path, hook string) error {
	label := path
	if label == "" {
		label = "<root>"
	}
	return fmt.Errorf("%w: %s defines reserved hook %s", ErrLegacyHookForbidden, label, hook)
}
