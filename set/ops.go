package set

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same members, order is ignored
func Equal[T comparable](a, b Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for _, item := range a.Items() {
		if !b.Has(item) {
			return false
		}
	}

	return true
}

func Union[T comparable](a, b Set[T]) *ListSet[T] {
	result := New(a.Items()...)
	result.InsertSet(b)
	return result
}

func Intersection[T comparable](a, b Set[T]) *ListSet[T] {
	result := New[T]()
	for _, item := range a.Items() {
		if b.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

// Difference returns members of a that are not in b
func Difference[T comparable](a, b Set[T]) *ListSet[T] {
	result := New[T]()
	for _, item := range a.Items() {
		if !b.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

func Sorted[T constraints.Ordered](s Set[T]) []T {
	items := s.Items()
	slices.Sort(items)
	return items
}
