package slist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounted(t *testing.T) {
	t.Parallel()

	c := NewCounted(&Options[int]{Comparator: Ordered[int]()})
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.RemoveHead())
	require.NoError(t, c.RemoveTail())
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.InsertHead(2))
	require.NoError(t, c.InsertTail(4))
	require.NoError(t, c.InsertAt(3, 1))
	_, err := c.InsertSorted(1)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, c.list.Len(), c.Len())

	require.ErrorIs(t, c.InsertAt(9, 10), ErrIndexOutOfRange)
	require.ErrorIs(t, c.RemoveAt(10), ErrIndexOutOfRange)
	require.ErrorIs(t, c.RemoveMatching(9, nil), ErrNotFound)
	assert.Equal(t, 4, c.Len())

	v, ok := c.PeekAt(-1)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	require.NoError(t, c.RemoveMatching(3, nil))
	require.NoError(t, c.RemoveAt(0))
	v, err = c.PopTail()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, c.Len())

	v, err = c.PopHead()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	_, err = c.PopHead()
	require.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, c.Len())

	for i := 5; i > 0; i-- {
		require.NoError(t, c.InsertHead(i))
	}
	require.NoError(t, c.Sort(nil))
	arr, err := c.ToArray(false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr.Elements())
	assert.Equal(t, 0, c.Len())
	require.ErrorIs(t, c.InsertHead(1), ErrInvalidHandle)
	assert.Equal(t, 0, c.Len())
}

func TestCountedClearFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	d := DestructorFunc[int](func(v int) error {
		if v == 3 {
			return boom
		}
		return nil
	})
	c := NewCounted(&Options[int]{Destructor: d})
	for i := 1; i <= 4; i++ {
		require.NoError(t, c.InsertTail(i))
	}

	require.ErrorIs(t, c.Clear(), boom)
	assert.Equal(t, 2, c.Len())
	require.ErrorIs(t, c.Destroy(), boom)
	assert.Equal(t, 2, c.Len())
}
