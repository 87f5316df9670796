package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/denismitr/collections/utils"
)

// ListSet - is a set backed by a plain slice.
// Members keep their insertion order and every lookup is a linear scan,
// so it is meant for small sets of comparable values.
// The zero value is an empty set ready to use.
type ListSet[T comparable] struct {
	items []T
}

var _ Set[int] = (*ListSet[int])(nil)

// New creates a ListSet, initial items are inserted in order and duplicates are dropped
func New[T comparable](items ...T) *ListSet[T] {
	s := &ListSet[T]{
		items: make([]T, 0, len(items)),
	}
	s.InsertSlice(items)
	return s
}

func (s *ListSet[T]) Has(item T) bool {
	return slices.Index(s.items, item) != -1
}

// Insert appends item unless an equal one is already present
func (s *ListSet[T]) Insert(item T) (modified bool) {
	if s.Has(item) {
		return false
	}

	s.items = append(s.items, item)
	return true
}

// Remove drops the first element equal to item, the rest keep their order
func (s *ListSet[T]) Remove(item T) bool {
	idx := slices.Index(s.items, item)
	if idx == -1 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	// the vacated slot past len would otherwise still reference the removed value
	s.items[:len(s.items)+1][len(s.items)] = utils.GetZero[T]()

	return true
}

func (s *ListSet[T]) Clear() {
	s.items = nil
}

func (s *ListSet[T]) Len() int {
	return len(s.items)
}

func (s *ListSet[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *ListSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return s.InsertSlice(sourceSet.Items())
}

func (s *ListSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *ListSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, item := range s.items {
		if i != 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteString("}")
	return sb.String()
}
