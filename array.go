package slist

import (
	"slices"

	"github.com/pkg/errors"
)

// Array is the flat form of a list produced by ToArray. It owns the elements
// it was given and releases them with the list's destructor.
type Array[T any] struct {
	elements []T
	destroy  Destructor[T]
	released bool
}

// ToArray moves every element into a new Array, in head to tail order, and
// invalidates the list. With sortFirst the list is sorted by the bound
// comparator beforehand. On error the list is left intact and usable.
func (l *List[T]) ToArray(sortFirst bool) (*Array[T], error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if sortFirst {
		if err := l.Sort(nil); err != nil {
			return nil, err
		}
	}

	elements := make([]T, 0, l.Len())
	for l.head != nil {
		n := l.head
		elements = append(elements, n.val)
		l.head = n.next
		n.clear()
	}
	l.invalid = true
	if l.log != nil {
		l.log.Debug().Str("op", "to array").Int("len", len(elements)).Msg("list converted")
	}

	return &Array[T]{elements: elements, destroy: l.destroy}, nil
}

// Len returns the number of elements; 0 once released.
func (a *Array[T]) Len() int {
	if a == nil || a.released {
		return 0
	}
	return len(a.elements)
}

// At returns the element at index. Negative indices count back from the end.
func (a *Array[T]) At(index int) (T, bool) { //nolint:ireturn
	var zero T
	i, ok := normalize(index, a.Len())
	if !ok {
		return zero, false
	}
	return a.elements[i], true
}

// Elements returns a copy of the element slice.
func (a *Array[T]) Elements() []T {
	if a == nil || a.released {
		return nil
	}
	return slices.Clone(a.elements)
}

// Release runs the destructor over every element and invalidates the array.
// If the destructor fails, the elements from the failing one onwards are
// kept and Release may be called again.
func (a *Array[T]) Release() error {
	if a == nil || a.released {
		return ErrInvalidHandle
	}
	if a.destroy != nil {
		for i, v := range a.elements {
			if err := a.destroy.Destroy(v); err != nil {
				a.elements = a.elements[i:]
				return errors.Wrap(err, "slist: destroy element")
			}
		}
	}
	a.elements = nil
	a.released = true
	return nil
}
