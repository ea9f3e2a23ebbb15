package slist

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// List is a singly linked list. The list owns its nodes; elements are handed
// to the list on insertion and leave it through the destructor, through
// PopHead/PopTail, or by conversion with ToArray.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	head    *node[T]
	destroy Destructor[T]
	compare Comparator[T]
	alloc   AllocFunc[T]
	log     *zerolog.Logger
	invalid bool
}

type node[T any] struct {
	val  T
	next *node[T]
}

// allocError reports a failed AllocFunc. It matches ErrAllocFailure and
// unwraps to the callback's error.
type allocError struct {
	cause error
}

func (e *allocError) Error() string        { return ErrAllocFailure.Error() + ": " + e.cause.Error() }
func (e *allocError) Unwrap() error        { return e.cause }
func (e *allocError) Is(target error) bool { return target == ErrAllocFailure }

// New creates an empty list with the callbacks in o bound to it.
func New[T any](o *Options[T]) *List[T] {
	return &List[T]{
		destroy: o.GetDestructor(),
		compare: o.GetComparator(),
		alloc:   o.GetAlloc(),
		log:     o.GetLogger(),
	}
}

func (l *List[T]) check() error {
	if l == nil || l.invalid {
		return ErrInvalidHandle
	}
	return nil
}

func (l *List[T]) fail(op string, err error) error {
	if l != nil && l.log != nil {
		l.log.Debug().Str("op", op).Err(err).Msg("list operation failed")
	}
	return err
}

func (l *List[T]) failAt(op string, index int, err error) error {
	if l != nil && l.log != nil {
		l.log.Debug().Str("op", op).Int("index", index).Err(err).Msg("list operation failed")
	}
	return err
}

func (l *List[T]) newNode(v T) (*node[T], error) {
	if l.alloc != nil {
		var err error
		if v, err = l.alloc(v); err != nil {
			return nil, &allocError{cause: err}
		}
	}
	return &node[T]{val: v}, nil
}

// comparator resolves the comparator for one call: the override if given,
// otherwise the bound one. It returns nil when neither exists.
func (l *List[T]) comparator(c Comparator[T]) Comparator[T] {
	if c != nil {
		return c
	}
	return l.compare
}

// release hands v to the destructor. It does not touch the chain.
func (l *List[T]) release(v T) error {
	if l.destroy == nil {
		return nil
	}
	return errors.Wrap(l.destroy.Destroy(v), "slist: destroy element")
}

// dropHead releases the head element and unlinks the head node. The chain is
// left untouched if the destructor fails.
func (l *List[T]) dropHead() error {
	n := l.head
	if err := l.release(n.val); err != nil {
		return err
	}
	l.head = n.next
	n.clear()
	return nil
}

// dropAfter releases and unlinks the node following prev.
func (l *List[T]) dropAfter(prev *node[T]) error {
	n := prev.next
	if err := l.release(n.val); err != nil {
		return err
	}
	prev.next = n.next
	n.clear()
	return nil
}

func (n *node[T]) clear() {
	var zero T
	n.val = zero
	n.next = nil
}

// nodeAt walks i links from the head. i must be in range.
func (l *List[T]) nodeAt(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// normalize maps a possibly negative index onto [0, n).
func normalize(index, n int) (int, bool) {
	if index < 0 {
		index += n
	}
	return index, index >= 0 && index < n
}

// Len returns the number of elements, counting them by traversal. A nil or
// invalidated list has length 0.
func (l *List[T]) Len() int {
	if l.check() != nil {
		return 0
	}
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// Clear releases every element and leaves an empty, usable list. It stops at
// the first destructor failure; elements not yet released stay in the list.
func (l *List[T]) Clear() error {
	if err := l.check(); err != nil {
		return err
	}
	for l.head != nil {
		if err := l.dropHead(); err != nil {
			return l.fail("clear", err)
		}
	}
	return nil
}

// Destroy releases every element and invalidates the list. Destroying a nil,
// empty or already destroyed list is a no-op.
func (l *List[T]) Destroy() error {
	if l.check() != nil {
		return nil
	}
	if err := l.Clear(); err != nil {
		return err
	}
	l.invalid = true
	return nil
}
