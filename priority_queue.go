package slist

import (
	"encoding/binary"
	"sync"

	"github.com/rs/zerolog"
)

// PriorityItem extends Item with a priority field
type PriorityItem struct {
	Item
	Priority uint8
}

// compositeKey combines priority and id into a single key. Keys sort
// bytewise by priority first, then by id.
func compositeKey(priority uint8, id uint64) []byte {
	key := make([]byte, 9) // 1 byte for priority + 8 bytes for id
	key[0] = priority
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}

// PriorityQueue hands out items with the lowest priority value first, and
// in insertion order among items of equal priority.
type PriorityQueue struct {
	sync.RWMutex
	items  *List[*PriorityItem]
	log    *zerolog.Logger
	count  uint64
	lastID uint64
	isOpen bool
}

func NewPriorityQueue(logger *zerolog.Logger) *PriorityQueue {
	keys := Bytes()
	o := &Options[*PriorityItem]{
		Comparator: CompareFunc[*PriorityItem](func(a, b *PriorityItem) int {
			return keys.Compare(a.Key, b.Key)
		}),
		Logger: logger,
	}
	return &PriorityQueue{
		items:  New(o),
		log:    o.GetLogger(),
		isOpen: true,
	}
}

func (pq *PriorityQueue) Close() error {
	pq.Lock()
	defer pq.Unlock()

	if !pq.isOpen {
		return nil
	}
	if err := pq.items.Destroy(); err != nil {
		return err
	}

	pq.log.Debug().Uint64("dropped", pq.count).Msg("priority queue closed")
	pq.count = 0
	pq.isOpen = false
	return nil
}

func (pq *PriorityQueue) Length() uint64 {
	pq.RLock()
	defer pq.RUnlock()

	return pq.count
}

// EnqueueWithPriority adds an item to the queue with specified priority
func (pq *PriorityQueue) EnqueueWithPriority(value []byte, priority uint8) (*PriorityItem, error) {
	pq.Lock()
	defer pq.Unlock()

	if !pq.isOpen {
		return nil, ErrClosed
	}

	id := pq.lastID + 1
	item := &PriorityItem{
		Item:     Item{ID: id, Key: compositeKey(priority, id), Value: value},
		Priority: priority,
	}
	if _, err := pq.items.InsertSorted(item); err != nil {
		return nil, err
	}

	pq.lastID = id
	pq.count++
	return item, nil
}

func (pq *PriorityQueue) EnqueueString(value string, priority uint8) (*PriorityItem, error) {
	return pq.EnqueueWithPriority([]byte(value), priority)
}

func (pq *PriorityQueue) EnqueueObject(value interface{}, priority uint8) (*PriorityItem, error) {
	b, err := encodeObject(value)
	if err != nil {
		return nil, err
	}
	return pq.EnqueueWithPriority(b, priority)
}

// Dequeue removes and returns the highest priority item
func (pq *PriorityQueue) Dequeue() (*PriorityItem, error) {
	pq.Lock()
	defer pq.Unlock()

	if !pq.isOpen {
		return nil, ErrClosed
	}

	item, err := pq.items.PopHead()
	if err != nil {
		return nil, err
	}
	pq.count--
	return item, nil
}

// Peek returns the highest priority item without removing it
func (pq *PriorityQueue) Peek() (*PriorityItem, error) {
	pq.RLock()
	defer pq.RUnlock()

	if !pq.isOpen {
		return nil, ErrClosed
	}

	item, ok := pq.items.PeekHead()
	if !ok {
		return nil, ErrEmpty
	}
	return item, nil
}
