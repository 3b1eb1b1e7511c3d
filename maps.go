package secretkit

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns the keys of m in ascending order, so map iteration
// can be deterministic.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
