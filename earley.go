// Package earley implements a recognizer for general context-free
// grammars in the Earley family, specialized for ambiguous and nullable
// productions.
//
// Given a start nonterminal and an abstract input of known length, Run
// decides which nonterminals derive which contiguous spans of the
// input. It does so only for spans starting at a position where the
// nonterminal was predicted during the run; spans starting elsewhere
// are reported as not derived. The package does not know how to lex, tokenize, or
// otherwise read the input itself: it consumes a pair of oracle
// callbacks (see Oracles) supplied by the caller, and it does not build
// parse forests or derivation trees — it reports which (origin,
// nonterminal) pairs were derived, leaving tree construction to callers
// that already have the blocked-item bookkeeping they need in
// FinalState.
package earley

// Run drives the fixed-point Earley chart construction from startNt
// over an input of the given length and returns the terminal state of
// the chart.
//
// input is never inspected by the engine; it is passed through
// verbatim to both oracles so that callers can represent it however
// they like (bytes, tokens, a rope, ...).
func Run(startNt Symbol, input any, inputLength int, oracles Oracles) (*FinalState, error) {
	if inputLength < 0 {
		return nil, EarleyError{Message: "input_length must be non-negative"}
	}
	if !startNt.IsNonterminal() {
		return nil, EarleyError{Message: "start symbol must be a nonterminal"}
	}

	cfg := DefaultConfig()
	st := initState(startNt, input, inputLength, oracles, cfg)
	return runDriver(st)
}

// RunWithConfig is Run with explicit engine tuning (see EngineConfig).
func RunWithConfig(startNt Symbol, input any, inputLength int, oracles Oracles, cfg *EngineConfig) (*FinalState, error) {
	if inputLength < 0 {
		return nil, EarleyError{Message: "input_length must be non-negative"}
	}
	if !startNt.IsNonterminal() {
		return nil, EarleyError{Message: "start symbol must be a nonterminal"}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	st := initState(startNt, input, inputLength, oracles, cfg)
	return runDriver(st)
}
