// Package dedupe implements the duplicate-resolution helper:
// given an ordered list and a key function, split it into first-seen
// unique items and the later duplicates, preserving original order in
// both halves. Grounded on the original tool's
// idl_format utils `unique_by_report_dups`.
package dedupe

// Result is the outcome of resolving duplicates in an ordered list.
type Result[T any] struct {
	Unique     []T
	Duplicates []T
}

// Resolve splits items into first-seen-order uniques (by key) and the
// items whose key was already seen earlier in the list.
func Resolve[T any, K comparable](items []T, key func(T) K) Result[T] {
	seen := make(map[K]struct{}, len(items))
	res := Result[T]{
		Unique:     make([]T, 0, len(items)),
		Duplicates: make([]T, 0),
	}
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			res.Duplicates = append(res.Duplicates, item)
			continue
		}
		seen[k] = struct{}{}
		res.Unique = append(res.Unique, item)
	}
	return res
}
