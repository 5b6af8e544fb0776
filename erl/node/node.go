// Package node implements [erl.Node]: it hands out pids for one node
// incarnation, keeps the registry of local processes and routes messages into
// their mailboxes.
package node

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"

	"github.com/uberbrodt/erl-node/erl"
	"github.com/uberbrodt/erl-node/erl/term"
)

const (
	// pid ids use 15 bits, serials 13; the id rolls over into the serial
	pidIDBits     = 15
	pidSerialBits = 13
	maxPidID      = 1<<pidIDBits - 1
	maxPidSerial  = 1<<pidSerialBits - 1
)

type Node struct {
	name     term.Atom
	cookie   string
	creation uint32
	cfg      Config

	seq atomic.Uint64

	mx        sync.RWMutex
	processes map[term.Pid]*erl.Process
	names     map[term.Atom]term.Pid
	pidNames  map[term.Pid]term.Atom
}

var _ erl.Node = (*Node)(nil)

func New(cfg Config) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Debug {
		erl.SetDebugLog(true)
	}
	return &Node{
		name:      term.Atom(cfg.Name),
		cookie:    cfg.Cookie,
		creation:  cfg.Creation,
		cfg:       cfg,
		processes: make(map[term.Pid]*erl.Process),
		names:     make(map[term.Atom]term.Pid),
		pidNames:  make(map[term.Pid]term.Atom),
	}, nil
}

func (n *Node) Name() term.Atom {
	return n.name
}

func (n *Node) Creation() uint32 {
	return n.creation
}

func (n *Node) Cookie() string {
	return n.cookie
}

// RegisterNewProcess allocates the next pid and records p under it.
//
// Pids are never reused within an incarnation. Running out of the 28-bit
// id/serial space is a programming error and panics.
func (n *Node) RegisterNewProcess(p *erl.Process) term.Pid {
	pid := n.nextPid()

	n.mx.Lock()
	defer n.mx.Unlock()
	if _, exists := n.processes[pid]; exists {
		panic(fmt.Sprintf("node %s allocated %v twice", n.name, pid))
	}
	// bind before publishing so Lookup never sees a process without its pid
	if p != nil {
		p.Bind(pid)
	}
	n.processes[pid] = p
	return pid
}

func (n *Node) nextPid() term.Pid {
	seq := n.seq.Add(1) - 1
	id := seq & maxPidID
	serial := seq >> pidIDBits
	if serial > maxPidSerial {
		panic(fmt.Sprintf("node %s ran out of pids", n.name))
	}
	return term.Pid{
		Node:     n.name,
		ID:       uint32(id),
		Serial:   uint32(serial),
		Creation: n.creation,
	}
}

// Spawn creates a process registered with this node. The node's default
// mailbox capacity applies unless opts override it.
func (n *Node) Spawn(opts ...erl.ProcessOpt) *erl.Process {
	all := make([]erl.ProcessOpt, 0, len(opts)+1)
	all = append(all, erl.WithMailboxCapacity(n.cfg.MailboxCapacity))
	all = append(all, opts...)
	return erl.NewProcess(n, all...)
}

// Send delivers msg to the local process at to. Like Erlang's send it never
// fails: messages for unknown pids, pids of other nodes or full mailboxes are
// logged and dropped.
func (n *Node) Send(to term.Pid, from term.Term, msg any) {
	if to.Node != n.name {
		erl.Logger.Printf("%s: dropping message for %v, remote delivery is not supported", n.name, to)
		return
	}
	p, ok := n.Lookup(to)
	if !ok {
		erl.DebugPrintf("%s: no process %v, message from %v dropped", n.name, to, from)
		return
	}
	if err := p.Deliver(from, msg); err != nil {
		erl.Logger.Printf("%s: message from %v to %v dropped: %v", n.name, from, to, err)
	}
}

// SendName delivers msg to the process registered locally as name.
func (n *Node) SendName(name term.Atom, from term.Term, msg any) bool {
	pid, ok := n.WhereIs(name)
	if !ok {
		erl.DebugPrintf("%s: no process registered as %s", n.name, name)
		return false
	}
	n.Send(pid, from, msg)
	return true
}

func (n *Node) Lookup(pid term.Pid) (*erl.Process, bool) {
	n.mx.RLock()
	defer n.mx.RUnlock()
	p, ok := n.processes[pid]
	return p, ok
}

func (n *Node) IsAlive(pid term.Pid) bool {
	_, ok := n.Lookup(pid)
	return ok
}

// Processes returns the pids of every registered process.
func (n *Node) Processes() []term.Pid {
	n.mx.RLock()
	defer n.mx.RUnlock()
	pids := make([]term.Pid, 0, len(n.processes))
	for pid := range n.processes {
		pids = append(pids, pid)
	}
	return pids
}

// Unregister removes the process at pid, drops its registered name and
// closes its mailbox. Returns false if pid was not registered.
func (n *Node) Unregister(pid term.Pid) bool {
	n.mx.Lock()
	p, ok := n.processes[pid]
	if ok {
		delete(n.processes, pid)
		if name, named := n.pidNames[pid]; named {
			delete(n.names, name)
			delete(n.pidNames, pid)
		}
	}
	n.mx.Unlock()

	if !ok {
		return false
	}
	p.Close()
	erl.DebugPrintf("%s: unregistered %v", n.name, pid)
	return true
}

// MakeRef returns a new reference owned by this node.
func (n *Node) MakeRef() term.Reference {
	return term.Reference{
		Node:     n.name,
		Creation: n.creation,
		ID:       xid.New().Bytes(),
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("Node<%s|%d>", n.name, n.creation)
}
