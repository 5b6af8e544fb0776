/*
Package erl lets a Go program take part in Erlang's process identity model.

A [Process] is a logical Erlang process living inside the host program. It
owns a [mailbox.Mailbox] and carries a [term.Pid] that was handed out by a
[Node]. The Node is the only authority for identity: it allocates pids, keeps
the registry of live processes, and delivers messages into their mailboxes.
See package node for the implementation used by default.

# Process Creation

	n, _ := node.New(node.DefaultConfig())
	p := erl.NewProcess(n)
	fmt.Println(p.PID()) // Pid<1.0.0>@py@127.0.0.1

# Receiving

Each process is meant to be driven by its own goroutine. [Process.Receive] is
the only point where that goroutine suspends waiting for the outside world:

	for {
		msg, err := p.Receive(ctx)
		if err != nil {
			return err
		}
		...
	}

Messages put into one mailbox come out in the order they were put. There is
no ordering between mailboxes and no selective receive.

# Mapping to Erlang

	Erlang                  Go (erl package)
	------                  ----------------
	spawn/1                 NewProcess, node.Node.Spawn
	self/0                  Process.PID
	!/send                  Process.Send, node.Node.Send
	receive                 Process.Receive
	register/2              node.Node.Register
	whereis/1               node.Node.WhereIs
	make_ref/0              node.Node.MakeRef
*/
package erl

import "github.com/uberbrodt/erl-node/erl/term"

// Node is the collaborator a [Process] registers with.
//
// RegisterNewProcess must return a Pid that it has never returned before
// during the node's current incarnation, and record p as its handler. Send
// delivers msg into the mailbox of the process registered under to; it is
// fire-and-forget.
type Node interface {
	RegisterNewProcess(p *Process) term.Pid
	Send(to term.Pid, from term.Term, msg any)
}
