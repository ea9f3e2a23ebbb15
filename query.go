package slist

import (
	"iter"
)

// PeekHead returns the first element without removing it.
func (l *List[T]) PeekHead() (T, bool) { //nolint:ireturn
	var zero T
	if l.check() != nil || l.head == nil {
		return zero, false
	}
	return l.head.val, true
}

// PeekTail returns the last element without removing it.
func (l *List[T]) PeekTail() (T, bool) { //nolint:ireturn
	var zero T
	if l.check() != nil || l.head == nil {
		return zero, false
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n.val, true
}

// PeekAt returns the element at index without removing it. Negative indices
// count back from the tail.
func (l *List[T]) PeekAt(index int) (T, bool) { //nolint:ireturn
	var zero T
	if l.check() != nil {
		return zero, false
	}
	i, ok := normalize(index, l.Len())
	if !ok {
		return zero, false
	}
	return l.nodeAt(i).val, true
}

// Find returns the first element e for which c.Compare(e, needle) == 0. A nil
// c falls back to the bound comparator. An empty list always reports
// ErrNotFound.
func (l *List[T]) Find(needle T, c Comparator[T]) (T, error) { //nolint:ireturn
	var zero T
	if err := l.check(); err != nil {
		return zero, err
	}
	if l.head == nil {
		return zero, ErrNotFound
	}
	c = l.comparator(c)
	if c == nil {
		return zero, l.fail("find", ErrMissingComparator)
	}
	for n := l.head; n != nil; n = n.next {
		if c.Compare(n.val, needle) == 0 {
			return n.val, nil
		}
	}
	return zero, ErrNotFound
}

// All returns an iterator over the elements from head to tail. The list must
// not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.check() != nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Reduce folds the elements of l from head to tail into an accumulator
// starting at seed. An empty list yields seed.
func Reduce[T, A any](l *List[T], fn func(acc A, v T) A, seed A) A { //nolint:ireturn
	acc := seed
	for v := range l.All() {
		acc = fn(acc, v)
	}
	return acc
}
