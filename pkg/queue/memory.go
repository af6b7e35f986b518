package queue

import (
	"sync"
)

// InMemoryQueue is a bounded FIFO backed by a buffered channel.
type InMemoryQueue struct {
	ch   chan interface{}
	lock sync.Mutex
}

var _ Queue = &InMemoryQueue{}

// NewInMemoryQueue creates a queue that holds at most size items.
func NewInMemoryQueue(size int) *InMemoryQueue {
	return &InMemoryQueue{
		ch: make(chan interface{}, size),
	}
}

// Enqueue appends item, or returns ErrFull without blocking.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrFull
	}
}

// Dequeue removes the oldest item, or returns ErrEmpty.
func (q *InMemoryQueue) Dequeue() (interface{}, error) {
	select {
	case item := <-q.ch:
		return item, nil
	default:
		return nil, ErrEmpty
	}
}

func (q *InMemoryQueue) Size() int {
	return len(q.ch)
}

// ReadAllMessages drains everything pending, oldest first. Items enqueued while it runs
// may land in this batch or the next one.
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for {
		select {
		case item := <-q.ch:
			messages = append(messages, item)
		default:
			return messages, nil
		}
	}
}

// ClearQueue drops everything pending.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
