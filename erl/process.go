package erl

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/uberbrodt/erl-node/erl/internal/inbox"
	"github.com/uberbrodt/erl-node/erl/mailbox"
	"github.com/uberbrodt/erl-node/erl/term"
)

type Process struct {
	pid      atomic.Pointer[term.Pid]
	node     Node
	messages *inbox.Inbox[mailbox.Message]
	mailbox  *mailbox.Mailbox
}

// NewProcess creates a process and registers it with node, which assigns its
// Pid. The mailbox exists before registration so the node may deliver to it
// as soon as the Pid is known.
func NewProcess(node Node, opts ...ProcessOpt) *Process {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}

	p := &Process{node: node}
	p.messages = inbox.NewBounded[mailbox.Message](o.mailboxCapacity)
	p.mailbox = mailbox.New(p.messages)
	p.Bind(node.RegisterNewProcess(p))

	DebugPrintf("%v registered", p)
	return p
}

// PID returns the pid given by the node, or [term.UndefinedPid] while the
// process is still being registered.
func (p *Process) PID() term.Pid {
	if pid := p.pid.Load(); pid != nil {
		return *pid
	}
	return term.UndefinedPid
}

// Bind sets the process pid. A [Node] calls it from RegisterNewProcess before
// the process becomes visible to other goroutines; [NewProcess] calls it again
// with the returned pid. Binding a different pid a second time panics, since
// it means the node handed out two identities for one process.
func (p *Process) Bind(pid term.Pid) {
	if p.pid.CompareAndSwap(nil, &pid) {
		return
	}
	if bound := p.PID(); bound != pid {
		panic(fmt.Sprintf("%v rebound to %v", p, pid))
	}
}

func (p *Process) Mailbox() *mailbox.Mailbox {
	return p.mailbox
}

// Deliver puts msg into the mailbox. It is called by the [Node]; other
// processes should go through [Process.Send] or the node.
func (p *Process) Deliver(from term.Term, msg any) error {
	return p.mailbox.Put(mailbox.Message{From: from, Body: msg})
}

// Receive blocks until a message arrives, the process is closed, or ctx is
// done.
func (p *Process) Receive(ctx context.Context) (mailbox.Message, error) {
	return p.mailbox.Receive(ctx)
}

// Send asks the node to deliver msg to the process at to, with this process
// as the sender.
func (p *Process) Send(to term.Pid, msg any) {
	p.node.Send(to, p.PID(), msg)
}

// Close shuts the mailbox. The node calls this when it deregisters the
// process; pending receives return [mailbox.ErrClosed].
func (p *Process) Close() {
	if dropped := p.mailbox.Close(); len(dropped) > 0 {
		DebugPrintf("%v closed with %d unread messages", p, len(dropped))
	}
}

func (p *Process) String() string {
	pid := p.PID()
	if pid.IsUndefined() {
		return "Process<unregistered>"
	}
	return fmt.Sprintf("Process<%v>", pid)
}
