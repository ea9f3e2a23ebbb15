package slist

import (
	"github.com/pkg/errors"
)

var (
	ErrAllocFailure      = errors.New("slist: could not allocate element")
	ErrIndexOutOfRange   = errors.New("slist: index is outside range of list")
	ErrNotFound          = errors.New("slist: no matching element")
	ErrMissingComparator = errors.New("slist: no comparator available")
	ErrInvalidHandle     = errors.New("slist: list or array is no longer valid")
	ErrEmpty             = errors.New("slist: list is empty")
)
