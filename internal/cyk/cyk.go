// Package cyk is a brute-force reference recognizer used only by
// tests, to check the engine's completed-span results against an
// independent, deliberately naive implementation — the soundness and
// completeness check against a reference recognizer.
//
// It is not CYK in the textbook Chomsky-normal-form sense — it works
// directly off a list of (nonterminal, right-hand side) rules and
// recursively tries every way to split a span across a rule's symbols
// — but it plays the role a "brute-force CYK recognizer" is meant to
// play: a slow, obviously-correct oracle for small grammars.
package cyk

import earley "github.com/clarete/earleygo"

// Rule is one alternative of a production: Nt -> Rhs. A grammar with
// multiple alternatives for the same nonterminal is represented as one
// Rule per alternative. An empty Rhs is the nullable/epsilon case.
type Rule struct {
	Nt  earley.Symbol
	Rhs []earley.Symbol
}

// MatchFunc reports whether terminal t matches input over [i, j).
type MatchFunc func(t earley.Symbol, input any, i, j int) bool

// Grammar is the brute-force recognizer's input: a flat rule list and
// a terminal matcher.
type Grammar struct {
	Rules []Rule
	Match MatchFunc
}

// Span is a half-open input range.
type Span struct{ I, J int }

// state carries the memo table and an in-progress guard so that
// nullable/self-referential rules (X -> X, X -> eps) don't recurse
// forever while proving the same (span, nonterminal) question.
type state struct {
	g          Grammar
	input      any
	memo       map[key]bool
	inProgress map[key]bool
}

type key struct {
	Span
	X earley.Symbol
}

// Recognize computes, for every span [i, j] with 0 <= i <= j <= n, the
// set of nonterminals that derive it.
func Recognize(g Grammar, input any, n int) map[Span]map[earley.Symbol]bool {
	nts := map[earley.Symbol]struct{}{}
	for _, r := range g.Rules {
		nts[r.Nt] = struct{}{}
	}

	st := &state{g: g, input: input, memo: map[key]bool{}, inProgress: map[key]bool{}}
	result := map[Span]map[earley.Symbol]bool{}
	for i := 0; i <= n; i++ {
		for j := i; j <= n; j++ {
			for x := range nts {
				if st.derives(x, i, j) {
					sp := Span{I: i, J: j}
					if result[sp] == nil {
						result[sp] = map[earley.Symbol]bool{}
					}
					result[sp][x] = true
				}
			}
		}
	}
	return result
}

func (st *state) derives(x earley.Symbol, i, j int) bool {
	k := key{Span: Span{I: i, J: j}, X: x}
	if v, ok := st.memo[k]; ok {
		return v
	}
	if st.inProgress[k] {
		// Treat a question that depends on itself as not (yet) proven;
		// it will be resolved, if provable at all, through a rule that
		// doesn't require this exact recursion.
		return false
	}
	st.inProgress[k] = true
	defer delete(st.inProgress, k)

	for _, r := range st.g.Rules {
		if r.Nt != x {
			continue
		}
		if st.matchesRhs(r.Rhs, i, j) {
			st.memo[k] = true
			return true
		}
	}
	st.memo[k] = false
	return false
}

// matchesRhs tries every way to split [i, j) across rhs's symbols.
func (st *state) matchesRhs(rhs []earley.Symbol, i, j int) bool {
	if len(rhs) == 0 {
		return i == j
	}
	head, tail := rhs[0], rhs[1:]
	for split := i; split <= j; split++ {
		if !st.matchesSymbol(head, i, split) {
			continue
		}
		if st.matchesRhs(tail, split, j) {
			return true
		}
	}
	return false
}

func (st *state) matchesSymbol(sym earley.Symbol, i, j int) bool {
	if sym.IsNonterminal() {
		return st.derives(sym, i, j)
	}
	return st.g.Match(sym, st.input, i, j)
}
