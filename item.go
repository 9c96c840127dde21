package earley

import (
	"strconv"
	"strings"
)

// Item is a dotted production with a span origin: in rule "nt -> As .
// Bs", As has already matched input[I:K] and Bs is still expected.
//
// As and Bs are ordered symbol sequences. The slice backing Bs is
// shared with the item it was cut from — Cut only ever reslices Bs,
// never mutates it — so chains of cuts over the same alternative don't
// reallocate the tail.
type Item struct {
	Nt Symbol
	I  int
	As []Symbol
	K  int
	Bs []Symbol
}

// NewItem builds the initial (dot-at-zero) item for one alternative of
// nt, predicted at position k.
func NewItem(nt Symbol, k int, rhs []Symbol) Item {
	return Item{Nt: nt, I: k, As: nil, K: k, Bs: rhs}
}

// Complete reports whether the dot has reached the end of the
// production, i.e. whether the item witnesses that Nt derives
// input[I:K].
func (it Item) Complete() bool { return len(it.Bs) == 0 }

// NextSymbol returns the symbol right after the dot. It must not be
// called on a complete item.
func (it Item) NextSymbol() Symbol {
	if len(it.Bs) == 0 {
		panic("earley: NextSymbol called on a complete item")
	}
	return it.Bs[0]
}

// Cut advances the dot of it past its leading suffix symbol, producing
// a new item whose dot now sits at position j. It is undefined (and
// panics) when it is already complete.
func Cut(it Item, j int) Item {
	if len(it.Bs) == 0 {
		panic("earley: Cut called on a complete item")
	}
	as := make([]Symbol, len(it.As)+1)
	copy(as, it.As)
	as[len(it.As)] = it.Bs[0]
	return Item{
		Nt: it.Nt,
		I:  it.I,
		As: as,
		K:  j,
		Bs: it.Bs[1:],
	}
}

// key returns a structural identity for the item. Only (Nt, I, K, Bs)
// participate, matching the oracle contract described in the grammar
// this engine recognizes: As records history for external forest
// construction but never affects identity or deduplication.
func (it Item) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(it.Nt)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(it.I))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(it.K))
	b.WriteByte('|')
	for _, s := range it.Bs {
		b.WriteString(strconv.Itoa(int(s)))
		b.WriteByte(',')
	}
	return b.String()
}
