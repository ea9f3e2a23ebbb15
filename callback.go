package slist

import (
	"bytes"
	"cmp"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

// Destructor releases the resources held by one stored element. It is called
// by the list when an element leaves it through removal, Clear or Destroy,
// and by Array.Release. It is never called during traversal.
type Destructor[T any] interface {
	Destroy(v T) error
}

// Comparator orders two elements: negative if a < b, zero if equal,
// positive if a > b.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// DestructorFunc lets an ordinary function act as a Destructor.
type DestructorFunc[T any] func(v T) error

func (f DestructorFunc[T]) Destroy(v T) error {
	return f(v)
}

// CompareFunc lets an ordinary function act as a Comparator.
type CompareFunc[T any] func(a, b T) int

func (f CompareFunc[T]) Compare(a, b T) int {
	return f(a, b)
}

// AllocFunc copies a value before it is stored. A non-nil error aborts the
// insertion and is reported as ErrAllocFailure.
type AllocFunc[T any] func(v T) (T, error)

// Ordered returns a Comparator using the natural order of T.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return CompareFunc[T](cmp.Compare[T])
}

// Bytes returns a Comparator for byte slices that orders them the way
// leveldb orders its keys.
func Bytes() Comparator[[]byte] {
	return CompareFunc[[]byte](comparer.DefaultComparer.Compare)
}

// CloneBytes is an AllocFunc for byte slices that stores a private copy.
func CloneBytes(v []byte) ([]byte, error) {
	return bytes.Clone(v), nil
}
