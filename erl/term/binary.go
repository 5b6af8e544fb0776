package term

import (
	"bytes"
	"strconv"
	"strings"
)

// Binary is a byte sequence whose last byte may be only partially used.
//
// LastByteBits is the number of significant (low-order) bits in the final
// byte, 1 through 8. The zero value is read as 8, so Binary{Bytes: b} is a
// plain binary. Nothing is validated on construction.
type Binary struct {
	Bytes        []byte
	LastByteBits uint8
}

// NewBinary returns a full-byte binary over b.
func NewBinary(b []byte) Binary {
	return Binary{Bytes: b, LastByteBits: 8}
}

// NewBitstring returns a binary whose final byte holds only bits bits.
func NewBitstring(b []byte, bits uint8) Binary {
	return Binary{Bytes: b, LastByteBits: bits}
}

// Bits returns the number of significant bits in the last byte.
func (b Binary) Bits() uint8 {
	if b.LastByteBits == 0 {
		return 8
	}
	return b.LastByteBits
}

// IsBitstring reports whether the last byte is truncated.
func (b Binary) IsBitstring() bool {
	return b.Bits() != 8
}

func (b Binary) Kind() Kind { return KindBinary }

func (b Binary) Equal(other Term) bool {
	o, ok := other.(Binary)
	return ok && b.Bits() == o.Bits() && bytes.Equal(b.Bytes, o.Bytes)
}

func (b Binary) Hash() uint64 {
	return newHasher(KindBinary).u32(uint32(b.Bits())).bytes(b.Bytes).sum()
}

// String renders <<1,2,3>>, or <<1,2,3:5>> for a bitstring. An empty
// bitstring keeps its bit count, <<:5>>, so it never reads as <<>>.
func (b Binary) String() string {
	var sb strings.Builder
	sb.WriteString("<<")
	for i, c := range b.Bytes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	if b.IsBitstring() {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(b.Bits())))
	}
	sb.WriteString(">>")
	return sb.String()
}

func (Binary) isTerm() {}
