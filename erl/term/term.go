package term

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

var (
	// a [Reference] id is not a whole number of 32-bit words
	ErrMalformedReferenceID = errors.New("malformed_reference_id")
	// a [List] can't be read as a string of unicode code points
	ErrNotText = errors.New("not_text")
)

// Kind discriminates the term types. It is mixed into every [Hash].
type Kind uint8

const (
	KindAtom Kind = iota + 1
	KindInt
	KindPid
	KindReference
	KindBinary
	KindList
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindInt:
		return "integer"
	case KindPid:
		return "pid"
	case KindReference:
		return "reference"
	case KindBinary:
		return "binary"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Term is implemented by every Erlang value in this package.
//
// Implementations must keep the hash contract: if a.Equal(b) then
// a.Hash() == b.Hash().
type Term interface {
	Kind() Kind
	Equal(other Term) bool
	Hash() uint64
	String() string

	isTerm()
}

// Equal compares two terms with Erlang semantics. Two nil terms are equal.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Hash returns t.Hash(), or 0 for a nil term.
func Hash(t Term) uint64 {
	if t == nil {
		return 0
	}
	return t.Hash()
}

// hasher is a thin wrapper over xxhash that always starts with the kind tag.
type hasher struct {
	d *xxhash.Digest
}

func newHasher(k Kind) hasher {
	h := hasher{d: xxhash.New()}
	h.d.Write([]byte{byte(k)})
	return h
}

func (h hasher) str(s string) hasher {
	h.u32(uint32(len(s)))
	h.d.WriteString(s)
	return h
}

func (h hasher) bytes(b []byte) hasher {
	h.u32(uint32(len(b)))
	h.d.Write(b)
	return h
}

func (h hasher) u32(v uint32) hasher {
	h.d.Write(binary.BigEndian.AppendUint32(nil, v))
	return h
}

func (h hasher) u64(v uint64) hasher {
	h.d.Write(binary.BigEndian.AppendUint64(nil, v))
	return h
}

func (h hasher) sum() uint64 {
	return h.d.Sum64()
}
