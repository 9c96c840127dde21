package earley

// PredictFunc returns the prediction items for nonterminal y at
// position k: one item per alternative of y's production, each with
// Nt=y, I=k, As=nil, K=k, and Bs set to that alternative's right-hand
// side. It must be pure. The stepper calls it at most once per (k, y)
// within a run; Run also calls it once for the start nonterminal at
// position 0 to build the initial worklist, so (0, start) sees a second
// call when an item at position 0 is blocked on the start nonterminal.
type PredictFunc func(y Symbol, input any, k int) []Item

// ScanFunc returns every end position j, with k <= j <= inputLength,
// for which input[k:j] matches terminal t. Zero-width matches (j == k)
// are allowed. A nil result is treated the same as an empty slice:
// "no matches", not an error — an oracle facing a terminal it doesn't
// recognize should log at its own boundary and return nil rather than
// make the engine aware anything went wrong.
type ScanFunc func(t Symbol, input any, k int, inputLength int) []int

// Oracles bundles the two callbacks the engine consumes from outside
// (see PredictFunc and ScanFunc). Both are invoked synchronously from
// the stepper; the engine never inspects input itself, it only passes
// it through.
type Oracles struct {
	NewItems      PredictFunc
	ParseTerminal ScanFunc
}
