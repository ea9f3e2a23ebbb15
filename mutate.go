package slist

import (
	"github.com/pkg/errors"
)

// InsertHead stores v in front of the current head.
func (l *List[T]) InsertHead(v T) error {
	if err := l.check(); err != nil {
		return err
	}
	n, err := l.newNode(v)
	if err != nil {
		return l.fail("insert head", err)
	}
	n.next = l.head
	l.head = n
	return nil
}

// InsertTail appends v after the last element.
func (l *List[T]) InsertTail(v T) error {
	if err := l.check(); err != nil {
		return err
	}
	n, err := l.newNode(v)
	if err != nil {
		return l.fail("insert tail", err)
	}
	if l.head == nil {
		l.head = n
		return nil
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	return nil
}

// InsertAt stores v so that it becomes the element at index. Negative indices
// count back from the end of the resulting list: -1 appends and -(Len()+1)
// makes v the new head. Valid indices are [-Len()-1, Len()].
func (l *List[T]) InsertAt(v T, index int) error {
	if err := l.check(); err != nil {
		return err
	}
	length := l.Len()
	i := index
	if i < 0 {
		i += length + 1
	}
	if i < 0 || i > length {
		return l.failAt("insert at", index,
			errors.Wrapf(ErrIndexOutOfRange, "insert at %d, length %d", index, length))
	}
	n, err := l.newNode(v)
	if err != nil {
		return l.failAt("insert at", index, err)
	}
	if i == 0 {
		n.next = l.head
		l.head = n
		return nil
	}
	prev := l.nodeAt(i - 1)
	n.next = prev.next
	prev.next = n
	return nil
}

// InsertSorted stores v in front of the first element that compares greater
// than it, so equal elements keep their insertion order. Without a bound
// comparator v is inserted at the head and ordered is false.
func (l *List[T]) InsertSorted(v T) (ordered bool, err error) {
	if err := l.check(); err != nil {
		return false, err
	}
	n, err := l.newNode(v)
	if err != nil {
		return false, l.fail("insert sorted", err)
	}
	if l.compare == nil {
		n.next = l.head
		l.head = n
		return false, nil
	}

	var prev *node[T]
	cur := l.head
	for cur != nil && l.compare.Compare(cur.val, n.val) <= 0 {
		prev = cur
		cur = cur.next
	}
	n.next = cur
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	return true, nil
}

// RemoveHead releases the first element. It does nothing on an empty list.
func (l *List[T]) RemoveHead() error {
	if err := l.check(); err != nil {
		return err
	}
	if l.head == nil {
		return nil
	}
	if err := l.dropHead(); err != nil {
		return l.fail("remove head", err)
	}
	return nil
}

// RemoveTail releases the last element. It does nothing on an empty list.
func (l *List[T]) RemoveTail() error {
	if err := l.check(); err != nil {
		return err
	}
	if l.head == nil {
		return nil
	}
	var err error
	if l.head.next == nil {
		err = l.dropHead()
	} else {
		prev := l.head
		for prev.next.next != nil {
			prev = prev.next
		}
		err = l.dropAfter(prev)
	}
	if err != nil {
		return l.fail("remove tail", err)
	}
	return nil
}

// RemoveAt releases the element at index. Negative indices count back from
// the tail, -1 being the last element.
func (l *List[T]) RemoveAt(index int) error {
	if err := l.check(); err != nil {
		return err
	}
	length := l.Len()
	i, ok := normalize(index, length)
	if !ok {
		return l.failAt("remove at", index,
			errors.Wrapf(ErrIndexOutOfRange, "remove at %d, length %d", index, length))
	}
	var err error
	if i == 0 {
		err = l.dropHead()
	} else {
		err = l.dropAfter(l.nodeAt(i - 1))
	}
	if err != nil {
		return l.failAt("remove at", index, err)
	}
	return nil
}

// RemoveMatching releases the first element e for which
// c.Compare(e, needle) == 0. A nil c falls back to the bound comparator.
func (l *List[T]) RemoveMatching(needle T, c Comparator[T]) error {
	if err := l.check(); err != nil {
		return err
	}
	if l.head == nil {
		return l.fail("remove matching", ErrNotFound)
	}
	c = l.comparator(c)
	if c == nil {
		return l.fail("remove matching", ErrMissingComparator)
	}

	var err error
	if c.Compare(l.head.val, needle) == 0 {
		err = l.dropHead()
	} else {
		prev := l.head
		for prev.next != nil && c.Compare(prev.next.val, needle) != 0 {
			prev = prev.next
		}
		if prev.next == nil {
			return l.fail("remove matching", ErrNotFound)
		}
		err = l.dropAfter(prev)
	}
	if err != nil {
		return l.fail("remove matching", err)
	}
	return nil
}

// PopHead unlinks the first element and returns it to the caller without
// running the destructor.
func (l *List[T]) PopHead() (T, error) { //nolint:ireturn
	var zero T
	if err := l.check(); err != nil {
		return zero, err
	}
	if l.head == nil {
		return zero, ErrEmpty
	}
	n := l.head
	v := n.val
	l.head = n.next
	n.clear()
	return v, nil
}

// PopTail unlinks the last element and returns it to the caller without
// running the destructor.
func (l *List[T]) PopTail() (T, error) { //nolint:ireturn
	var zero T
	if err := l.check(); err != nil {
		return zero, err
	}
	if l.head == nil {
		return zero, ErrEmpty
	}
	if l.head.next == nil {
		return l.PopHead()
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	n := prev.next
	v := n.val
	prev.next = nil
	n.clear()
	return v, nil
}
