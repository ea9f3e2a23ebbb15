package slist

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrClosed = errors.New("queue: queue is closed")

type Item struct {
	ID    uint64
	Key   []byte
	Value []byte
}

func (i *Item) ToString() string {
	return string(i.Value)
}

func (i *Item) ToObject(value interface{}) error {
	buffer := bytes.NewBuffer(i.Value)
	decoder := gob.NewDecoder(buffer)
	return decoder.Decode(value)
}

func idToKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func keyToID(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

func encodeObject(value interface{}) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := gob.NewEncoder(&buffer)
	if err := encoder.Encode(value); err != nil {
		return nil, errors.Wrap(err, "queue: encode object")
	}
	return buffer.Bytes(), nil
}

// Standard FIFO (fist in, first out) queue. All methods are safe for
// concurrent use; the list underneath is only touched with the lock held.
type Queue struct {
	sync.RWMutex
	items  *List[*Item]
	log    *zerolog.Logger
	head   uint64
	tail   uint64
	isOpen bool
}

// NewQueue creates an open, empty queue. A nil logger disables logging.
func NewQueue(logger *zerolog.Logger) *Queue {
	o := &Options[*Item]{Logger: logger}
	return &Queue{
		items:  New(o),
		log:    o.GetLogger(),
		isOpen: true,
	}
}

func (q *Queue) Close() error {
	q.Lock()
	defer q.Unlock()

	if !q.isOpen {
		return nil
	}
	if err := q.items.Destroy(); err != nil {
		return err
	}

	q.log.Debug().Uint64("dropped", q.tail-q.head).Msg("queue closed")
	q.head = 0
	q.tail = 0
	q.isOpen = false
	return nil
}

func (q *Queue) Length() uint64 {
	q.RLock()
	defer q.RUnlock()

	return q.tail - q.head
}

func (q *Queue) Enqueue(value []byte) (*Item, error) {
	q.Lock()
	defer q.Unlock()

	if !q.isOpen {
		return nil, ErrClosed
	}
	item := &Item{ID: q.tail + 1, Key: idToKey(q.tail + 1), Value: value}
	if err := q.items.InsertTail(item); err != nil {
		return nil, err
	}
	q.tail++
	return item, nil
}

func (q *Queue) EnqueueString(value string) (*Item, error) {
	return q.Enqueue([]byte(value))
}

func (q *Queue) EnqueueObject(value interface{}) (*Item, error) {
	b, err := encodeObject(value)
	if err != nil {
		return nil, err
	}
	return q.Enqueue(b)
}

func (q *Queue) Dequeue() (*Item, error) {
	q.Lock()
	defer q.Unlock()

	if !q.isOpen {
		return nil, ErrClosed
	}

	item, err := q.items.PopHead()
	if err != nil {
		return nil, err
	}
	q.head++
	return item, nil
}

func (q *Queue) Peek() (*Item, error) {
	q.RLock()
	defer q.RUnlock()

	if !q.isOpen {
		return nil, ErrClosed
	}
	item, ok := q.items.PeekHead()
	if !ok {
		return nil, ErrEmpty
	}
	return item, nil
}
