// Package ambig implements the oracle pair for the textbook
// ambiguous, nullable grammar used throughout the engine's test suite:
//
//	E -> E E E | "1" | eps
//
// It is the classic worked example for this kind of fixed-point
// recognizer, rewritten against this module's Symbol and Item types
// instead of bare ints and tuples.
package ambig

import (
	"log"

	"github.com/clarete/earleygo"
)

// Symbols used by the grammar. Grouping them as package-level values
// (rather than re-deriving them per call) keeps every caller's Grammar
// value talking about the same nonterminal/terminal identities.
var (
	E         = earley.Nonterminal(0)
	One       = earley.Terminal(0)
	Eps       = earley.Terminal(1)
	unknownTm = earley.Terminal(2)
)

// Grammar configures the oracle pair. WithUnknown adds a fourth,
// never-matching alternative referencing a terminal the scan oracle
// doesn't recognize: an unrecognized terminal must contribute nothing
// to the parse, and the rest of the grammar must be unaffected.
type Grammar struct {
	WithUnknown bool
}

// Oracles returns the PredictFunc/ScanFunc pair earley.Run expects.
func (g Grammar) Oracles() earley.Oracles {
	return earley.Oracles{
		NewItems:      g.newItems,
		ParseTerminal: parseTerminal,
	}
}

func (g Grammar) newItems(y earley.Symbol, input any, k int) []earley.Item {
	if y != E {
		return nil
	}
	items := []earley.Item{
		earley.NewItem(E, k, []earley.Symbol{E, E, E}),
		earley.NewItem(E, k, []earley.Symbol{One}),
		earley.NewItem(E, k, []earley.Symbol{Eps}),
	}
	if g.WithUnknown {
		items = append(items, earley.NewItem(E, k, []earley.Symbol{unknownTm}))
	}
	return items
}

// parseTerminal matches "1" literally against an input of the form
// strings.Repeat("1", inputLength): any position before the end
// matches and advances by one. Eps always matches with zero width. Any
// other terminal is unknown to this grammar: that becomes an empty
// result logged at the oracle boundary, not inside the engine.
func parseTerminal(t earley.Symbol, input any, k, inputLength int) []int {
	switch t {
	case One:
		if k < inputLength {
			return []int{k + 1}
		}
		return nil
	case Eps:
		return []int{k}
	default:
		log.Printf("ambig: unknown terminal %v at position %d", t, k)
		return nil
	}
}
