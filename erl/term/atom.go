package term

import "fmt"

// Atom is an Erlang symbolic constant. Atoms compare by text, so no interning
// table is needed.
type Atom string

func (a Atom) Kind() Kind { return KindAtom }

func (a Atom) Equal(other Term) bool {
	o, ok := other.(Atom)
	return ok && a == o
}

func (a Atom) Hash() uint64 {
	return newHasher(KindAtom).str(string(a)).sum()
}

func (a Atom) String() string {
	return string(a)
}

// GoString is the debug form, quoted so an atom is not mistaken for a string
// when printed inside other structures with %#v.
func (a Atom) GoString() string {
	return fmt.Sprintf("atom'%s'", string(a))
}

func (Atom) isTerm() {}
