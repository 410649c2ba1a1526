package query

import "slices"

// SortKeys maps an "ordenacao" value to a three-way comparison.
type SortKeys[T any] map[string]func(a, b T) int

// SortStable orders items by the named key. An empty or unknown key leaves the
// natural storage order untouched.
func SortStable[T any](items []T, key string, keys SortKeys[T]) {
	cmp, ok := keys[key]
	if !ok {
		return
	}
	slices.SortStableFunc(items, cmp)
}
