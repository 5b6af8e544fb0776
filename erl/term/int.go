package term

import "strconv"

// Int is an Erlang integer that fits in 64 bits.
type Int int64

func (i Int) Kind() Kind { return KindInt }

func (i Int) Equal(other Term) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (i Int) Hash() uint64 {
	return newHasher(KindInt).u64(uint64(i)).sum()
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int) isTerm() {}
