// Package mailbox is the inbound message queue owned by an erl process.
//
// Messages are delivered in the order they were put, per mailbox. There is no
// ordering between different mailboxes, and no selective receive: the owner
// always gets the oldest message.
package mailbox

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/uberbrodt/erl-node/erl/internal/inbox"
	"github.com/uberbrodt/erl-node/erl/term"
)

var (
	// returned by [Mailbox.Put] on a bounded mailbox that is at capacity.
	// A full mailbox never blocks the sender.
	ErrFull = errors.New("mailbox_full")
	// returned once the owning process has been torn down
	ErrClosed = errors.New("mailbox_closed")
)

// Message is one delivery into a mailbox. From identifies the sender, usually
// a [term.Pid] or a {node, name} [term.Tuple]; it may be nil. Body is the
// payload as handed to the node, typically a [term.Term].
type Message struct {
	From term.Term
	Body any
}

func (m Message) String() string {
	return fmt.Sprintf("Message{from: %v, body: %v}", m.From, m.Body)
}

type Mailbox struct {
	q *inbox.Inbox[Message]
}

// New wraps q. The mailbox owns q from here on.
func New(q *inbox.Inbox[Message]) *Mailbox {
	return &Mailbox{q: q}
}

// Put appends msg. Safe to call from any number of goroutines.
func (m *Mailbox) Put(msg Message) error {
	switch err := m.q.Enqueue(msg); {
	case err == nil:
		return nil
	case errors.Is(err, inbox.ErrFull):
		return fmt.Errorf("%w: capacity %d", ErrFull, m.q.Capacity())
	case errors.Is(err, inbox.ErrClosed):
		return ErrClosed
	default:
		return err
	}
}

// Receive returns the oldest message, suspending the calling goroutine until
// one is put, the mailbox is closed ([ErrClosed]) or ctx is done (ctx.Err()).
func (m *Mailbox) Receive(ctx context.Context) (Message, error) {
	for {
		msg, ok, err := m.q.PopContext(ctx)
		if errors.Is(err, inbox.ErrClosed) {
			return msg, ErrClosed
		}
		if err != nil {
			return msg, err
		}
		if ok {
			return msg, nil
		}
	}
}

// TryReceive returns the oldest message without waiting.
func (m *Mailbox) TryReceive() (Message, bool) {
	msg, ok, _ := m.q.Pop()
	return msg, ok
}

// Messages ranges over received messages until the mailbox is closed or ctx
// is done.
func (m *Mailbox) Messages(ctx context.Context) iter.Seq[Message] {
	return m.q.Iter(ctx)
}

// Len is the number of messages waiting.
func (m *Mailbox) Len() int {
	return m.q.Size()
}

func (m *Mailbox) Empty() bool {
	return m.Len() == 0
}

// Close stops the mailbox. Pending receivers return [ErrClosed] and queued
// messages are discarded and returned.
func (m *Mailbox) Close() []Message {
	return m.q.Drain()
}

func (m *Mailbox) Closed() bool {
	return m.q.IsClosed()
}
