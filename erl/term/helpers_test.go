package term_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/uberbrodt/erl-node/erl/term"
)

// assertSameTerm checks that a and b are equal in both directions and that
// the hash contract holds for them.
func assertSameTerm(t *testing.T, a, b term.Term) {
	t.Helper()
	assert.Assert(t, a.Equal(b), "%v should equal %v", a, b)
	assert.Assert(t, b.Equal(a), "%v should equal %v", b, a)
	assert.Assert(t, term.Equal(a, b))
	assert.Equal(t, a.Hash(), b.Hash(), "equal terms %v and %v hashed differently", a, b)
	assert.Equal(t, a.Kind(), b.Kind())
}

// assertDifferentTerm checks that a and b are unequal in both directions.
func assertDifferentTerm(t *testing.T, a, b term.Term) {
	t.Helper()
	assert.Assert(t, !a.Equal(b), "%v should not equal %v", a, b)
	assert.Assert(t, !b.Equal(a), "%v should not equal %v", b, a)
	assert.Assert(t, !term.Equal(a, b))
}

func TestHashContract_AllKinds(t *testing.T) {
	pairs := []struct {
		name string
		a, b func() term.Term
	}{
		{"atom", func() term.Term { return term.Atom("foo") }, func() term.Term { return term.Atom(string([]byte("foo"))) }},
		{"int", func() term.Term { return term.Int(42) }, func() term.Term { return term.Int(42) }},
		{"pid", func() term.Term { return term.Pid{Node: "n1", ID: 5, Serial: 0, Creation: 1} }, func() term.Term { return term.Pid{Node: term.Atom("n" + "1"), ID: 5, Creation: 1} }},
		{"reference", func() term.Term {
			return term.Reference{Node: "n1", Creation: 2, ID: []byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3}}
		}, func() term.Term {
			return term.Reference{Node: "n1", Creation: 2, ID: []byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3}}
		}},
		{"binary", func() term.Term { return term.NewBinary([]byte{1, 2, 3}) }, func() term.Term { return term.Binary{Bytes: []byte{1, 2, 3}} }},
		{"bitstring", func() term.Term { return term.NewBitstring([]byte{1, 2, 3}, 5) }, func() term.Term { return term.NewBitstring([]byte{1, 2, 3}, 5) }},
		{"list", func() term.Term { return term.NewList(term.Int(1), term.Atom("a")) }, func() term.Term { return term.NewList().Append(term.Int(1)).Append(term.Atom("a")) }},
		{"improper list", func() term.Term { return term.NewList(term.Int(1)).SetTail(term.Atom("t")) }, func() term.Term { return term.NewList(term.Int(1)).SetTail(term.Atom("t")) }},
		{"tuple", func() term.Term { return term.NewTuple(term.Atom("n1"), term.Atom("shell")) }, func() term.Term { return term.Tuple{term.Atom("n1"), term.Atom("shell")} }},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			assertSameTerm(t, p.a(), p.b())
		})
	}
}

func TestHashContract_KindIsPartOfHash(t *testing.T) {
	atom := term.Atom("abc")
	bin := term.NewBinary([]byte("abc"))
	str := term.FromText("abc")

	assertDifferentTerm(t, atom, bin)
	assertDifferentTerm(t, atom, str)
	assertDifferentTerm(t, bin, str)
	assert.Assert(t, atom.Hash() != bin.Hash())
	assert.Assert(t, atom.Hash() != str.Hash())
}

func TestHashContract_UsableAsMapKey(t *testing.T) {
	seen := make(map[uint64][]term.Term)
	add := func(v term.Term) {
		seen[v.Hash()] = append(seen[v.Hash()], v)
	}
	add(term.Atom("x"))
	add(term.Atom("x"))
	add(term.Atom("y"))

	assert.Equal(t, len(seen[term.Atom("x").Hash()]), 2)
	assert.Equal(t, len(seen[term.Atom("y").Hash()]), 1)
}

func TestEqual_Nil(t *testing.T) {
	assert.Assert(t, term.Equal(nil, nil))
	assert.Assert(t, !term.Equal(term.Atom("a"), nil))
	assert.Assert(t, !term.Equal(nil, term.Atom("a")))
	assert.Equal(t, term.Hash(nil), uint64(0))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, term.KindAtom.String(), "atom")
	assert.Equal(t, term.KindPid.String(), "pid")
	assert.Equal(t, term.Kind(0).String(), "unknown")
}
