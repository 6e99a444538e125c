package menu

import (
	"fmt"
	"strings"
)

// Issue describes an item Open would leave out, or one that cannot work.
type Issue struct {
	// Path is the chain of labels leading to the item.
	Path []string
	// Reason is one of the drop reasons recorded by the metrics recorder.
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", strings.Join(i.Path, " > "), i.Reason)
}

// Lint reports the items of spec that would be dropped when it is opened with
// the given named actions. A nil actions map treats every action as unbound.
// Items below a disabled category are never built and are not reported.
func Lint(spec *Spec, actions map[string]func()) []Issue {
	return lint(spec, nil, actions)
}

func lint(spec *Spec, prefix []string, actions map[string]func()) []Issue {
	var out []Issue
	for _, e := range spec.Entries() {
		path := append(append([]string(nil), prefix...), e.Label)
		if reason := check(e.Item, actions); reason != "" {
			out = append(out, Issue{Path: path, Reason: reason})
			continue
		}
		if e.Item.Kind == KindCategory && e.Item.Enabled() {
			out = append(out, lint(e.Item.Children, path, actions)...)
		}
	}
	return out
}

func check(it Item, actions map[string]func()) string {
	switch it.Kind {
	case KindFunction:
		if it.Run == nil && actions[it.Action] == nil {
			return reasonMissingRun
		}
	case KindCategory:
		if it.Enabled() && it.Children == nil {
			return reasonMissingChildren
		}
	case KindSeparator:
	default:
		return reasonUnknownType
	}
	return ""
}
