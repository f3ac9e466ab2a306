// Package model defines the data structures shared by the scene graph, the edit gate and the UI.
package model

import "strings"

// Path represents a document location (file path or afs URL).
type Path string

// ScenePath addresses a location in the scene hierarchy, one name per level.
// The root location is the empty path.
type ScenePath []string

// ParsePath splits a slash separated location such as "/world/tree" into a ScenePath.
// Empty components are dropped, so "/" and "" both parse to the root.
func ParsePath(s string) ScenePath {
	parts := strings.Split(s, "/")

	path := make(ScenePath, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		path = append(path, part)
	}

	return path
}

// String returns the slash separated form of the path.
func (p ScenePath) String() string {
	return "/" + strings.Join(p, "/")
}

// IsRoot reports whether p is the root location.
func (p ScenePath) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the parent location. The root is its own parent.
func (p ScenePath) Parent() ScenePath {
	if len(p) == 0 {
		return p
	}

	return p[:len(p)-1]
}

// Name returns the last component of the path.
func (p ScenePath) Name() string {
	if len(p) == 0 {
		return "/"
	}

	return p[len(p)-1]
}

// IsAncestorOf reports whether p is a strict ancestor of other.
func (p ScenePath) IsAncestorOf(other ScenePath) bool {
	if len(p) >= len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Equal reports whether both paths name the same location.
func (p ScenePath) Equal(other ScenePath) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}
