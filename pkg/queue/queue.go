package queue

import "errors"

var (
	// ErrFull is returned by Enqueue when a bounded queue has no room left.
	ErrFull = errors.New("queue is full")
	// ErrEmpty is returned by Dequeue when nothing is pending.
	ErrEmpty = errors.New("queue is empty")
)

// Queue carries commands into the game loop and session events out of it.
// Producers never block. Consumers drain it once per tick with ReadAllMessages.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue() (interface{}, error)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
