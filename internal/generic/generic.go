package generic

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// MapKeys returns the keys of the map in unspecified order.
func MapKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

// SortedKeys returns the keys of the map in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := MapKeys(m)
	SortSlice(keys)

	return keys
}

// SortSlice sorts the slice in ascending order in place.
func SortSlice[T constraints.Ordered](arr []T) {
	sort.Slice(arr, func(i, j int) bool {
		return arr[i] < arr[j]
	})
}
