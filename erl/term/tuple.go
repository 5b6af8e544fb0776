package term

import (
	"strings"

	"github.com/uberbrodt/fungo/fun"
)

// Tuple is a fixed-size Erlang tuple.
type Tuple []Term

// NewTuple copies items into a new Tuple.
func NewTuple(items ...Term) Tuple {
	t := make(Tuple, len(items))
	copy(t, items)
	return t
}

// Get returns element idx of t asserted to T. It panics if idx is out of range
// or the element has another type.
func Get[T Term](t Tuple, idx int) T {
	return t[idx].(T)
}

// Two unpacks a 2-tuple.
func Two[ONE Term, TWO Term](t Tuple) (ONE, TWO) {
	return Get[ONE](t, 0), Get[TWO](t, 1)
}

func (t Tuple) Kind() Kind { return KindTuple }

func (t Tuple) Equal(other Term) bool {
	o, ok := other.(Tuple)
	if !ok || len(t) != len(o) {
		return false
	}
	for i := range t {
		if !Equal(t[i], o[i]) {
			return false
		}
	}
	return true
}

func (t Tuple) Hash() uint64 {
	h := newHasher(KindTuple).u32(uint32(len(t)))
	return fun.Reduce(t, h, func(e Term, acc hasher) hasher {
		return acc.u64(Hash(e))
	}).sum()
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, e := range t {
		parts[i] = termString(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (Tuple) isTerm() {}
