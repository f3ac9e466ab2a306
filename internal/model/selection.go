package model

import (
	"sort"
)

// MatchResult describes how a path relates to the paths in a Selection.
// Several bits may be set at once.
type MatchResult uint

// NoMatch is the result for a path unrelated to every selected path.
const NoMatch MatchResult = 0

// Available MatchResult bits.
const (
	// ExactMatch is set when the path itself is selected.
	ExactMatch MatchResult = 1 << iota
	// AncestorMatch is set when an ancestor of the path is selected.
	AncestorMatch
	// DescendantMatch is set when a descendant of the path is selected.
	DescendantMatch
)

// Has reports whether all bits of want are set.
// Has(NoMatch) reports whether no bit is set.
func (r MatchResult) Has(want MatchResult) bool {
	if want == NoMatch {
		return r == NoMatch
	}

	return r&want == want
}

// Selection is an immutable set of scene locations.
// The zero value is an empty selection.
type Selection struct {
	paths map[string]ScenePath
}

// NewSelection builds a selection from paths. Duplicates collapse.
func NewSelection(paths ...ScenePath) Selection {
	s := Selection{paths: make(map[string]ScenePath, len(paths))}
	for _, p := range paths {
		s.paths[p.String()] = append(ScenePath(nil), p...)
	}

	return s
}

// ParseSelection builds a selection from slash separated locations.
func ParseSelection(paths ...string) Selection {
	parsed := make([]ScenePath, 0, len(paths))
	for _, p := range paths {
		parsed = append(parsed, ParsePath(p))
	}

	return NewSelection(parsed...)
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.paths) == 0
}

// Len returns the number of selected locations.
func (s Selection) Len() int {
	return len(s.paths)
}

// Contains reports whether p is selected.
func (s Selection) Contains(p ScenePath) bool {
	_, ok := s.paths[p.String()]
	return ok
}

// Paths returns the selected locations in lexical order.
func (s Selection) Paths() []ScenePath {
	keys := s.Strings()

	out := make([]ScenePath, 0, len(keys))
	for _, k := range keys {
		out = append(out, append(ScenePath(nil), s.paths[k]...))
	}

	return out
}

// Strings returns the selected locations as sorted strings.
func (s Selection) Strings() []string {
	keys := make([]string, 0, len(s.paths))
	for k := range s.paths {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Union returns a selection holding the paths of both s and other.
func (s Selection) Union(other Selection) Selection {
	out := Selection{paths: make(map[string]ScenePath, len(s.paths)+len(other.paths))}
	for k, p := range s.paths {
		out.paths[k] = p
	}

	for k, p := range other.paths {
		out.paths[k] = p
	}

	return out
}

// Difference returns the paths of s that are not in other.
func (s Selection) Difference(other Selection) Selection {
	out := Selection{paths: make(map[string]ScenePath, len(s.paths))}
	for k, p := range s.paths {
		if _, ok := other.paths[k]; ok {
			continue
		}

		out.paths[k] = p
	}

	return out
}

// Toggle returns a copy of s with p added when absent and removed when present.
func (s Selection) Toggle(p ScenePath) Selection {
	single := NewSelection(p)
	if s.Contains(p) {
		return s.Difference(single)
	}

	return s.Union(single)
}

// Equal reports whether both selections hold the same paths.
func (s Selection) Equal(other Selection) bool {
	if len(s.paths) != len(other.paths) {
		return false
	}

	for k := range s.paths {
		if _, ok := other.paths[k]; !ok {
			return false
		}
	}

	return true
}

// Match reports how p relates to the selected paths.
func (s Selection) Match(p ScenePath) MatchResult {
	result := NoMatch

	for _, selected := range s.paths {
		switch {
		case selected.Equal(p):
			result |= ExactMatch
		case selected.IsAncestorOf(p):
			result |= AncestorMatch
		case p.IsAncestorOf(selected):
			result |= DescendantMatch
		}
	}

	return result
}
