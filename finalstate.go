package earley

// FinalState is the terminal chart state handed back from Run. It
// exposes the two read-only queries callers need: which spans were
// recognized, and what was blocked waiting for them — the latter is
// enough for an external derivation-tree builder to reconstruct parses
// without this package needing to know anything about forests.
type FinalState struct {
	inputLength int

	// completions[(i, X)] is the set of positions k at which X was
	// recorded as deriving [i, k]. Archived across the whole run, so
	// it answers "does X derive [i, j]" for any j <= inputLength that
	// was visited, not just the final position.
	completions map[ixkKey]map[int]struct{}

	// blocked[k][Y] holds the items that were blocked on Y at
	// position k, across every position visited — bitms_lt_k archived
	// on every advance, plus the final position's bitms_at_k, which
	// advance leaves unarchived when there is no next position.
	blocked map[int]map[Symbol]itemSet

	predictCalls map[predictKey]int
	scanCalls    map[scanKey]int
	itemsProcessed int
}

func newFinalState(c *Chart) *FinalState {
	blocked := make(map[int]map[Symbol]itemSet, len(c.bitmsLtK)+1)
	for k, m := range c.bitmsLtK {
		blocked[k] = m
	}
	if len(c.bitmsAtK) > 0 {
		blocked[c.K] = c.bitmsAtK
	}
	return &FinalState{
		inputLength:    c.inputLength,
		completions:    c.completions,
		blocked:        blocked,
		predictCalls:   c.predictCalls,
		scanCalls:      c.scanCalls,
		itemsProcessed: c.itemsProcessed,
	}
}

// Completed reports whether nonterminal x derives the span [i,
// inputLength] — the span ending at the last position the driver
// visited.
func (fs *FinalState) Completed(i int, x Symbol) bool {
	return fs.CompletedSpan(i, fs.inputLength, x)
}

// CompletedSpan reports whether nonterminal x was recorded as deriving
// the span [i, j] for any j <= inputLength that was visited during the
// run. Only origins at which x was predicted are recorded: a span that
// x derives but that starts at a position where x was never predicted
// reports false.
func (fs *FinalState) CompletedSpan(i, j int, x Symbol) bool {
	ks, ok := fs.completions[ixkKey{I: i, X: x}]
	if !ok {
		return false
	}
	_, ok = ks[j]
	return ok
}

// CompletedSpans returns every end position j such that x was recorded
// as deriving [i, j] (see CompletedSpan).
func (fs *FinalState) CompletedSpans(i int, x Symbol) []int {
	ks := fs.completions[ixkKey{I: i, X: x}]
	out := make([]int, 0, len(ks))
	for j := range ks {
		out = append(out, j)
	}
	return out
}

// BlockedItemsAt returns the items that were blocked on nonterminal x
// at position i when the driver passed that position. External callers
// use this to reconstruct derivations: a completion of x over [i, k]
// resumes exactly these items.
func (fs *FinalState) BlockedItemsAt(i int, x Symbol) []Item {
	return fs.blocked[i][x].items()
}

// PredictCalls returns how many times the stepper invoked the
// prediction oracle for (k, y) — only meaningful when Run was called
// with EngineConfig's "engine.instrument" set, otherwise always zero.
// The call Run makes for the start nonterminal while building the
// initial worklist is not counted. Used to verify the
// predict-once-per-(k,Y) property of the stepper.
func (fs *FinalState) PredictCalls(k int, y Symbol) int {
	return fs.predictCalls[predictKey{K: k, Y: y}]
}

// ScanCalls returns how many times the scan oracle was invoked for
// (k, t), with the same instrumentation caveat as PredictCalls.
func (fs *FinalState) ScanCalls(k int, t Symbol) int {
	return fs.scanCalls[scanKey{K: k, T: t}]
}

// ItemsProcessed returns the total number of items popped off the
// worklist during the run, the quantity the cubic work bound on a
// fixed-point chart construction is stated over.
func (fs *FinalState) ItemsProcessed() int {
	return fs.itemsProcessed
}
