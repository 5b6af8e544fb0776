package term

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// length of ids created by this module: three 32-bit words
	ReferenceIDLen = 12
	// longest id accepted: five 32-bit words
	MaxReferenceIDLen = 20
)

// Reference is a unique token scoped to a node incarnation, used to correlate
// requests and monitors. ID is opaque; see [Reference.Words] for the accepted
// shapes.
type Reference struct {
	Node     Atom
	Creation uint32
	ID       []byte
}

func (r Reference) Kind() Kind { return KindReference }

func (r Reference) Equal(other Term) bool {
	o, ok := other.(Reference)
	return ok &&
		r.Node == o.Node &&
		r.Creation == o.Creation &&
		bytes.Equal(r.ID, o.ID)
}

func (r Reference) Hash() uint64 {
	return newHasher(KindReference).
		str(string(r.Node)).
		u32(r.Creation).
		bytes(r.ID).
		sum()
}

// Validate returns [ErrMalformedReferenceID] unless the id is between one and
// five big-endian 32-bit words long.
func (r Reference) Validate() error {
	n := len(r.ID)
	if n == 0 || n%4 != 0 || n > MaxReferenceIDLen {
		return fmt.Errorf("%w: %d bytes", ErrMalformedReferenceID, n)
	}
	return nil
}

// Words decodes the id as big-endian unsigned 32-bit words.
func (r Reference) Words() ([]uint32, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	words := make([]uint32, 0, len(r.ID)/4)
	for i := 0; i < len(r.ID); i += 4 {
		words = append(words, binary.BigEndian.Uint32(r.ID[i:i+4]))
	}
	return words, nil
}

// String renders Ref<creation,w1,w2,w3>@node. A malformed id is rendered as
// hex instead of failing.
func (r Reference) String() string {
	words, err := r.Words()
	if err != nil {
		return fmt.Sprintf("Ref<%d,malformed:%s>@%s", r.Creation, hex.EncodeToString(r.ID), r.Node)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Ref<%d", r.Creation)
	for _, w := range words {
		fmt.Fprintf(&b, ",%d", w)
	}
	fmt.Fprintf(&b, ">@%s", r.Node)
	return b.String()
}

func (Reference) isTerm() {}
