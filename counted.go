package slist

import (
	"iter"
)

// Counted is a List that keeps its length up to date on every successful
// mutation, so Len does not walk the chain.
type Counted[T any] struct {
	list *List[T]
	n    int
}

// NewCounted creates an empty Counted list with the callbacks in o.
func NewCounted[T any](o *Options[T]) *Counted[T] {
	return &Counted[T]{list: New(o)}
}

// Len returns the cached element count.
func (c *Counted[T]) Len() int {
	if c == nil || c.list.check() != nil {
		return 0
	}
	return c.n
}

func (c *Counted[T]) added(err error) error {
	if err == nil {
		c.n++
	}
	return err
}

// removed decrements the count when a removal succeeded on a non-empty list.
func (c *Counted[T]) removed(wasEmpty bool, err error) error {
	if err == nil && !wasEmpty {
		c.n--
	}
	return err
}

func (c *Counted[T]) InsertHead(v T) error {
	return c.added(c.list.InsertHead(v))
}

func (c *Counted[T]) InsertTail(v T) error {
	return c.added(c.list.InsertTail(v))
}

func (c *Counted[T]) InsertAt(v T, index int) error {
	return c.added(c.list.InsertAt(v, index))
}

func (c *Counted[T]) InsertSorted(v T) (bool, error) {
	ordered, err := c.list.InsertSorted(v)
	return ordered, c.added(err)
}

func (c *Counted[T]) RemoveHead() error {
	return c.removed(c.n == 0, c.list.RemoveHead())
}

func (c *Counted[T]) RemoveTail() error {
	return c.removed(c.n == 0, c.list.RemoveTail())
}

func (c *Counted[T]) RemoveAt(index int) error {
	return c.removed(false, c.list.RemoveAt(index))
}

func (c *Counted[T]) RemoveMatching(needle T, cmp Comparator[T]) error {
	return c.removed(false, c.list.RemoveMatching(needle, cmp))
}

func (c *Counted[T]) PopHead() (T, error) { //nolint:ireturn
	v, err := c.list.PopHead()
	return v, c.removed(false, err)
}

func (c *Counted[T]) PopTail() (T, error) { //nolint:ireturn
	v, err := c.list.PopTail()
	return v, c.removed(false, err)
}

func (c *Counted[T]) PeekHead() (T, bool) { return c.list.PeekHead() } //nolint:ireturn
func (c *Counted[T]) PeekTail() (T, bool) { return c.list.PeekTail() } //nolint:ireturn

func (c *Counted[T]) PeekAt(index int) (T, bool) { //nolint:ireturn
	return c.list.PeekAt(index)
}

func (c *Counted[T]) Find(needle T, cmp Comparator[T]) (T, error) { //nolint:ireturn
	return c.list.Find(needle, cmp)
}

func (c *Counted[T]) Sort(cmp Comparator[T]) error {
	return c.list.Sort(cmp)
}

func (c *Counted[T]) All() iter.Seq[T] {
	return c.list.All()
}

// Clear releases every element. After a destructor failure the count is
// recomputed from the elements that remain.
func (c *Counted[T]) Clear() error {
	err := c.list.Clear()
	c.n = c.list.Len()
	return err
}

func (c *Counted[T]) Destroy() error {
	err := c.list.Destroy()
	c.n = c.list.Len()
	return err
}

func (c *Counted[T]) ToArray(sortFirst bool) (*Array[T], error) {
	a, err := c.list.ToArray(sortFirst)
	if err == nil {
		c.n = 0
	}
	return a, err
}
