package term

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/uberbrodt/fungo/fun"
)

// List is an Erlang list, possibly improper.
//
// A nil tail, or a tail that is itself an empty proper list, makes the list
// proper. Any other tail makes it improper: [1, 2 | foo]. Tails are compared
// as given; [1 | [2]] is not flattened into [1, 2].
type List struct {
	elements []Term
	tail     Term
}

// NewList returns a proper list holding elems.
func NewList(elems ...Term) *List {
	l := &List{elements: make([]Term, 0, len(elems))}
	l.elements = append(l.elements, elems...)
	return l
}

// FromText returns the string-like list of the code points in s.
func FromText(s string) *List {
	l := &List{elements: make([]Term, 0, utf8.RuneCountInString(s))}
	for _, r := range s {
		l.elements = append(l.elements, Int(r))
	}
	return l
}

// Append adds x to the end of the list and returns the list.
func (l *List) Append(x Term) *List {
	l.elements = append(l.elements, x)
	return l
}

// SetTail attaches t as the tail and returns the list.
func (l *List) SetTail(t Term) *List {
	l.tail = t
	return l
}

// Elements returns the list's elements, excluding the tail. The slice is
// shared with the list.
func (l *List) Elements() []Term {
	return l.elements
}

// Tail returns the tail, nil for a list built without one.
func (l *List) Tail() Term {
	return l.tail
}

func (l *List) Len() int {
	return len(l.elements)
}

func (l *List) IsProper() bool {
	return l == nil || isNil(l.tail)
}

// isNil reports whether t is the empty list, [].
func isNil(t Term) bool {
	if t == nil {
		return true
	}
	tl, ok := t.(*List)
	if !ok {
		return false
	}
	return tl == nil || (len(tl.elements) == 0 && isNil(tl.tail))
}

// AsText reads the list as a string of unicode code points.
//
// A nil list is the empty string. It fails with [ErrNotText] if the list is improper or any element is not an
// [Int] that is a valid code point (0..1114111, surrogates excluded).
func (l *List) AsText() (string, error) {
	if l == nil {
		return "", nil
	}
	if !l.IsProper() {
		return "", fmt.Errorf("%w: improper list", ErrNotText)
	}
	var b strings.Builder
	b.Grow(len(l.elements))
	for i, e := range l.elements {
		cp, ok := e.(Int)
		if !ok || cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return "", fmt.Errorf("%w: element %d is %v", ErrNotText, i, e)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Equal(other Term) bool {
	o, ok := other.(*List)
	if !ok {
		return false
	}
	if l == o {
		return true
	}
	if l == nil || o == nil || len(l.elements) != len(o.elements) {
		return isNil(l) && isNil(o)
	}
	for i := range l.elements {
		if !Equal(l.elements[i], o.elements[i]) {
			return false
		}
	}
	if l.IsProper() || o.IsProper() {
		return l.IsProper() && o.IsProper()
	}
	return Equal(l.tail, o.tail)
}

func (l *List) Hash() uint64 {
	var elems []Term
	if l != nil {
		elems = l.elements
	}
	h := newHasher(KindList).u32(uint32(len(elems)))
	h = fun.Reduce(elems, h, func(e Term, acc hasher) hasher {
		return acc.u64(Hash(e))
	})
	if l != nil && !l.IsProper() {
		h = h.u64(Hash(l.tail))
	}
	return h.sum()
}

// String renders [1, 2, 3], or [1, 2 | tail] for an improper list. An
// improper list with no elements is just its tail.
func (l *List) String() string {
	if l == nil {
		return "[]"
	}
	if !l.IsProper() && len(l.elements) == 0 {
		return l.tail.String()
	}
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = termString(e)
	}
	if l.IsProper() {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "[" + strings.Join(parts, ", ") + " | " + l.tail.String() + "]"
}

func (*List) isTerm() {}

func termString(t Term) string {
	if t == nil {
		return "[]"
	}
	return t.String()
}
