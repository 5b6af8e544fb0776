package term

import "fmt"

// Pid identifies a process on a node. The zero value is not a valid Pid.
//
// Creation is the incarnation counter of the owning node: a restarted node
// may hand out the same ID and Serial again, but with a different Creation.
// Pid is a comparable struct and can be used directly as a map key.
type Pid struct {
	Node     Atom
	ID       uint32
	Serial   uint32
	Creation uint32
}

// UndefinedPid is the zero Pid.
var UndefinedPid Pid

func (p Pid) Kind() Kind { return KindPid }

func (p Pid) Equal(other Term) bool {
	o, ok := other.(Pid)
	return ok && p == o
}

func (p Pid) Hash() uint64 {
	return newHasher(KindPid).
		str(string(p.Node)).
		u32(p.ID).
		u32(p.Serial).
		u32(p.Creation).
		sum()
}

// IsUndefined reports whether p is the zero Pid.
func (p Pid) IsUndefined() bool {
	return p == UndefinedPid
}

func (p Pid) String() string {
	return fmt.Sprintf("Pid<%d.%d.%d>@%s", p.Creation, p.ID, p.Serial, p.Node)
}

func (Pid) isTerm() {}
