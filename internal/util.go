package internal

// ExtendPath returns a new slice holding path followed by step.
// The result never shares a backing array with path, so sibling nodes
// extending the same parent path cannot overwrite each other.
func ExtendPath[T any](path []T, step T) []T {
	extended := make([]T, len(path)+1)
	copy(extended, path)
	extended[len(path)] = step
	return extended
}
