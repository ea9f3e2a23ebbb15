package slist

import (
	"iter"
)

// SortedList keeps its elements in non-descending order. Equal elements
// stay in insertion order.
type SortedList[T any] struct {
	container *List[T]
}

func NewSortedList[T any](compare Comparator[T]) *SortedList[T] {
	return &SortedList[T]{container: New(&Options[T]{Comparator: compare})}
}

func (s *SortedList[T]) Len() int64 {
	return int64(s.container.Len())
}

func (s *SortedList[T]) Front() (T, bool) { //nolint:ireturn
	return s.container.PeekHead()
}

func (s *SortedList[T]) Back() (T, bool) { //nolint:ireturn
	return s.container.PeekTail()
}

func (s *SortedList[T]) At(index int) (T, bool) { //nolint:ireturn
	return s.container.PeekAt(index)
}

func (s *SortedList[T]) Clear() {
	if s.Len() > 0 {
		s.container = New(&Options[T]{Comparator: s.container.compare})
	}
}

// Only Search from front to end
func (s *SortedList[T]) Insert(item T) error {
	if s.container.compare == nil {
		return ErrMissingComparator
	}
	_, err := s.container.InsertSorted(item)
	return err
}

// Remove drops the first element equal to item.
func (s *SortedList[T]) Remove(item T) error {
	return s.container.RemoveMatching(item, nil)
}

func (s *SortedList[T]) Contains(item T) bool {
	_, err := s.container.Find(item, nil)
	return err == nil
}

func (s *SortedList[T]) All() iter.Seq[T] {
	return s.container.All()
}
