package node

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/uberbrodt/erl-node/erl/term"
)

type RegistrationErrorKind string

type RegistrationError struct {
	Kind RegistrationErrorKind
}

func (e *RegistrationError) Error() string {
	return string(e.Kind)
}

const (
	// process is already registered with a name. Caller should consider calling [Node.UnregisterName] and retry
	AlreadyRegistered RegistrationErrorKind = "already_registered"
	// another process already registered given name
	NameInUse RegistrationErrorKind = "name_used"
	// the process you're trying to register doesn't exist/is dead
	NoProc RegistrationErrorKind = "no_proc"
	// name is invalid and cannot be registered.
	BadName RegistrationErrorKind = "bad_name"
)

// Register gives the local process pid the name, like erlang:register/2.
func (n *Node) Register(name term.Atom, pid term.Pid) *RegistrationError {
	n.mx.Lock()
	defer n.mx.Unlock()
	if name == "nil" || name == "undefined" || name == "" {
		return &RegistrationError{Kind: BadName}
	}

	if _, alive := n.processes[pid]; !alive {
		return &RegistrationError{Kind: NoProc}
	}

	if _, named := n.pidNames[pid]; named {
		return &RegistrationError{Kind: AlreadyRegistered}
	}

	if _, ok := n.names[name]; ok {
		return &RegistrationError{Kind: NameInUse}
	}

	n.names[name] = pid
	n.pidNames[pid] = name
	return nil
}

func (n *Node) WhereIs(name term.Atom) (pid term.Pid, exists bool) {
	n.mx.RLock()
	defer n.mx.RUnlock()

	pid, exists = n.names[name]
	return
}

// UnregisterName removes name. Returns false if name is not registered.
func (n *Node) UnregisterName(name term.Atom) bool {
	n.mx.Lock()
	defer n.mx.Unlock()
	if pid, ok := n.names[name]; ok {
		delete(n.names, name)
		// NOTE: the pid must forget its name too, otherwise it cannot be re-registered
		delete(n.pidNames, pid)
		return true
	}
	return false
}

type Registration struct {
	Name term.Atom
	PID  term.Pid
}

// Registered lists every name, sorted.
func (n *Node) Registered() []Registration {
	n.mx.RLock()
	registrations := make([]Registration, 0, len(n.names))
	for name, pid := range n.names {
		registrations = append(registrations, Registration{Name: name, PID: pid})
	}
	n.mx.RUnlock()

	slices.SortFunc(registrations, func(a, b Registration) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return registrations
}
