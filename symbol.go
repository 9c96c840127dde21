package earley

import "fmt"

// Symbol is an opaque identifier for a grammar symbol. It is
// partitioned into two disjoint classes, nonterminal and terminal, by
// a parity bit — nonterminals are even, terminals are odd, mirroring
// the convention the grammar this engine is built from ("nt, tm and
// sym are all int") used to keep the split cheap to test and to
// compare.
//
// Symbol values are comparable and hashable, so they can be used
// directly as map keys.
type Symbol int32

// Nonterminal builds the nonterminal symbol with the given id.
func Nonterminal(id int32) Symbol { return Symbol(id * 2) }

// Terminal builds the terminal symbol with the given id.
func Terminal(id int32) Symbol { return Symbol(id*2 + 1) }

// IsNonterminal reports whether sym belongs to the nonterminal class.
func (s Symbol) IsNonterminal() bool { return s%2 == 0 }

// ID returns the identifier the symbol was constructed from,
// independent of its class.
func (s Symbol) ID() int32 { return int32(s) / 2 }

func (s Symbol) String() string {
	if s.IsNonterminal() {
		return fmt.Sprintf("N%d", s.ID())
	}
	return fmt.Sprintf("T%d", s.ID())
}
