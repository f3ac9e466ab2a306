package domain

import (
	"fmt"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// PruneOverride is the set of locations an edit scope removes from the scene.
type PruneOverride struct {
	Scope *Node
	Paths m.Selection
}

// SetPruned adds sel to the prune override of scope, or removes it when pruned is false.
// The change is recorded in the undo transaction open on the scope's script, if any.
// Pruning a location that is already pruned leaves the override unchanged.
func SetPruned(scope *Node, sel m.Selection, pruned bool) error {
	if scope == nil || scope.kind != m.KindEditScope {
		return fmt.Errorf("set pruned: %w", ErrNotEditScope)
	}

	if ReadOnly(scope) {
		return fmt.Errorf("set pruned on %s: %w", scope.name, ErrReadOnly)
	}

	script := scope.Script()
	if script == nil {
		return fmt.Errorf("set pruned on %s: %w", scope.name, ErrDetached)
	}

	before := scope.pruned

	after := before.Difference(sel)
	if pruned {
		after = before.Union(sel)
	}

	if after.Equal(before) {
		return nil
	}

	script.apply(
		func() { scope.pruned = after },
		func() { scope.pruned = before },
	)

	return nil
}

// Pruned returns the prune override of scope.
func Pruned(scope *Node) m.Selection {
	if scope == nil {
		return m.Selection{}
	}

	return scope.pruned
}

// PruneOverrides returns the non-empty prune overrides of s in node order.
func PruneOverrides(s *Script) []PruneOverride {
	var out []PruneOverride

	for _, n := range s.nodes {
		if n.kind != m.KindEditScope || n.pruned.IsEmpty() {
			continue
		}

		out = append(out, PruneOverride{Scope: n, Paths: n.pruned})
	}

	return out
}

// Evaluate returns the locations visible at the output of n in lexical order.
func Evaluate(n *Node) []m.ScenePath {
	return evaluate(n, nil, make(map[*Node]m.Selection)).Paths()
}

// EvaluateBypassing evaluates n as if bypass were a pass-through node.
// Viewers use it to list locations that bypass prunes.
func EvaluateBypassing(n, bypass *Node) []m.ScenePath {
	return evaluate(n, bypass, make(map[*Node]m.Selection)).Paths()
}

func evaluate(n, bypass *Node, memo map[*Node]m.Selection) m.Selection {
	if n == nil {
		return m.Selection{}
	}

	if out, ok := memo[n]; ok {
		return out
	}

	var out m.Selection
	for _, in := range n.inputs {
		out = out.Union(evaluate(in, bypass, memo))
	}

	switch {
	case n.kind == m.KindSource:
		out = out.Union(withAncestors(n.locations))
	case n.kind == m.KindEditScope && n != bypass && !n.pruned.IsEmpty():
		var removed []m.ScenePath

		for _, p := range out.Paths() {
			match := n.pruned.Match(p)
			if match.Has(m.ExactMatch) || match.Has(m.AncestorMatch) {
				removed = append(removed, p)
			}
		}

		out = out.Difference(m.NewSelection(removed...))
	}

	memo[n] = out

	return out
}

func withAncestors(paths []m.ScenePath) m.Selection {
	var all []m.ScenePath

	for _, p := range paths {
		for i := 1; i <= len(p); i++ {
			all = append(all, p[:i])
		}
	}

	return m.NewSelection(all...)
}
