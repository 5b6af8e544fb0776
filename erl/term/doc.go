/*
Package term models Erlang terms as Go values.

Every term kind implements [Term], a closed interface: only the types in this
package can satisfy it, so a type switch over [Atom], [Int], [Pid],
[Reference], [Binary], [*List] and [Tuple] is exhaustive.

Equality and hashing follow Erlang semantics rather than Go identity. Two
atoms built from the same text are equal and hash the same, a Pid is equal to
another only when node, id, serial and creation all match, and a Binary is
only equal to a Binary with the same bytes and the same bit count of its last
byte. [Hash] mixes a [Kind] tag into every value so that, say, the atom 'abc'
and the binary <<"abc">> never land on the same key.

	pid := term.Pid{Node: term.Atom("py@127.0.0.1"), ID: 5, Serial: 0, Creation: 1}
	l := term.NewList(term.Int(1), term.Int(2)).SetTail(term.Atom("x"))
	fmt.Println(pid, l) // Pid<1.5.0>@py@127.0.0.1 [1, 2 | x]

Values are immutable by convention. The one exception is [*List], which may be
appended to until the owner considers it sealed.
*/
package term
