package inbox

import (
	"context"
	"errors"
	"iter"
	"sync"
)

var (
	// the inbox has been closed and accepts no more messages
	ErrClosed = errors.New("inbox closed")
	// a bounded inbox is at capacity
	ErrFull = errors.New("inbox full")
)

// Inbox is a FIFO queue of messages of type [M]. Any number of goroutines may
// call [Inbox.Enqueue] while others read from it.
type Inbox[M any] struct {
	msgQ     []M
	capacity int
	mx       sync.Mutex
	closed   bool
	cond     *sync.Cond
}

// Create an unbounded Inbox that will store messages of type [M].
// An Inbox is written to using [Inbox.Enqueue], which appends to the end of
// the message queue. To read these messages there are four methods:
//
//  1. [Inbox.Pop], which returns one message or nothing.
//  2. [Inbox.BlockingPop], which waits until there is a message or the inbox is closed.
//  3. [Inbox.PopContext], like BlockingPop but gives up when the context is done.
//  4. A for-range loop over [Inbox.Iter].
func New[M any]() *Inbox[M] {
	return NewBounded[M](0)
}

// NewBounded creates an Inbox that holds at most capacity messages. A
// capacity <= 0 means unbounded. Enqueue on a full inbox fails with
// [ErrFull]; it never blocks the producer.
func NewBounded[M any](capacity int) *Inbox[M] {
	if capacity < 0 {
		capacity = 0
	}
	initial := 10
	if capacity > 0 && capacity < initial {
		initial = capacity
	}
	i := &Inbox[M]{
		msgQ:     make([]M, 0, initial),
		capacity: capacity,
	}
	i.cond = sync.NewCond(&i.mx)
	return i
}

// Add a message to the end of the queue.
func (i *Inbox[M]) Enqueue(msg M) error {
	i.mx.Lock()
	defer i.mx.Unlock()

	if i.closed {
		return ErrClosed
	}
	if i.capacity > 0 && len(i.msgQ) >= i.capacity {
		return ErrFull
	}

	i.msgQ = append(i.msgQ, msg)
	i.cond.Broadcast()

	return nil
}

// get and remove a value from the inbox. This is safe to call from multiple go routines.
// if there was no item returned, [ok] returns false
// if the inbox is closed and will never return a value, [closed] will be [ErrClosed]
func (i *Inbox[M]) Pop() (item M, ok bool, closed error) {
	i.mx.Lock()
	defer i.mx.Unlock()

	if i.closed {
		return item, false, ErrClosed
	}
	if len(i.msgQ) == 0 {
		return item, false, nil
	}

	return i.popLocked(), true, nil
}

// Similar to [Pop], but this call will block until it has a value to retrieve.
//
// If the inbox is closed, [closed] will be non-nil and the caller can expect no more
// messages.
// Under the hood, this is using [sync.Cond] to sleep callers until there are messages.
func (i *Inbox[M]) BlockingPop() (item M, ok bool, closed error) {
	return i.PopContext(context.Background())
}

// PopContext blocks until a message is available, the inbox is closed, or
// ctx is done. In the last case the context's error is returned.
func (i *Inbox[M]) PopContext(ctx context.Context) (item M, ok bool, err error) {
	// wake the waiters when ctx is done; they recheck ctx.Err() below
	stop := context.AfterFunc(ctx, func() {
		i.mx.Lock()
		defer i.mx.Unlock()
		i.cond.Broadcast()
	})
	defer stop()

	i.mx.Lock()
	defer i.mx.Unlock()

	for len(i.msgQ) == 0 && !i.closed && ctx.Err() == nil {
		i.cond.Wait()
	}

	if i.closed {
		return item, false, ErrClosed
	}
	if len(i.msgQ) == 0 {
		return item, false, ctx.Err()
	}

	return i.popLocked(), true, nil
}

func (i *Inbox[M]) popLocked() M {
	var zero M
	head := i.msgQ[0]
	i.msgQ[0] = zero
	i.msgQ = i.msgQ[1:]
	return head
}

// this is an Iterator function that can be used with a range loop like so:
//
//	for item := range ibox.Iter(ctx) {
//		log.Printf("got value: %d", item)
//	}
//
// The iterator will exhaust when the inbox is closed or ctx is done.
func (i *Inbox[M]) Iter(ctx context.Context) iter.Seq[M] {
	return func(yield func(M) bool) {
		for {
			item, ok, err := i.PopContext(ctx)
			if err != nil {
				return
			}
			if !ok {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Return the number of items in the Inbox
func (i *Inbox[M]) Size() int {
	i.mx.Lock()
	defer i.mx.Unlock()

	return len(i.msgQ)
}

// Capacity returns the bound given to [NewBounded], 0 if unbounded.
func (i *Inbox[M]) Capacity() int {
	return i.capacity
}

// closes the inbox and returns everything still queued
func (i *Inbox[M]) Drain() []M {
	i.mx.Lock()
	defer i.mx.Unlock()

	result := make([]M, len(i.msgQ))
	copy(result, i.msgQ)
	i.msgQ = i.msgQ[:0]
	if !i.closed {
		i.closed = true
		i.cond.Broadcast()
	}

	return result
}

// closes all iterators associated with this inbox, and prevents
// any messages from being queued/dequeued. [BlockingPop] will also return.
func (i *Inbox[M]) Close() {
	i.mx.Lock()
	defer i.mx.Unlock()
	if i.closed {
		return
	}
	i.closed = true
	i.cond.Broadcast()
}

// IsClosed reports whether [Close] or [Drain] has been called.
func (i *Inbox[M]) IsClosed() bool {
	i.mx.Lock()
	defer i.mx.Unlock()
	return i.closed
}
