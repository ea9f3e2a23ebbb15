package slist

import (
	"github.com/rs/zerolog"
)

// Options holds the callbacks and settings bound to a list for its whole
// lifetime. A nil *Options is valid and means no callbacks and no logging.
type Options[T any] struct {
	// Destructor is called on each element leaving the list. When nil the
	// list just drops its reference to the element.
	Destructor Destructor[T]

	// Comparator is used by InsertSorted, and by Sort, Find and
	// RemoveMatching when they are not given one.
	Comparator Comparator[T]

	// Alloc, when set, copies every inserted value.
	Alloc AllocFunc[T]

	// Logger receives a debug event for every failed operation.
	Logger *zerolog.Logger
}

func (o *Options[T]) GetDestructor() Destructor[T] {
	if o == nil {
		return nil
	}
	return o.Destructor
}

func (o *Options[T]) GetComparator() Comparator[T] {
	if o == nil {
		return nil
	}
	return o.Comparator
}

func (o *Options[T]) GetAlloc() AllocFunc[T] {
	if o == nil {
		return nil
	}
	return o.Alloc
}

func (o *Options[T]) GetLogger() *zerolog.Logger {
	if o == nil || o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}
