package earley_test

import (
	"strings"
	"testing"
	"time"

	earley "github.com/clarete/earleygo"
	"github.com/clarete/earleygo/internal/ambig"
	"github.com/clarete/earleygo/internal/cyk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAmbig runs the engine over the E -> E E E | "1" | eps grammar for
// an input of n '1's.
func runAmbig(t *testing.T, n int, withUnknown bool) *earley.FinalState {
	t.Helper()
	g := ambig.Grammar{WithUnknown: withUnknown}
	fs, err := earley.Run(ambig.E, strings.Repeat("1", n), n, g.Oracles())
	require.NoError(t, err)
	return fs
}

func TestScenario1EmptyInput(t *testing.T) {
	fs := runAmbig(t, 0, false)
	assert.True(t, fs.Completed(0, ambig.E))
}

func TestScenario2SingleOne(t *testing.T) {
	fs := runAmbig(t, 1, false)
	assert.True(t, fs.Completed(0, ambig.E))
	assert.True(t, fs.Completed(1, ambig.E))
	assert.True(t, fs.CompletedSpan(0, 1, ambig.E))
}

func TestScenario3TwoOnes(t *testing.T) {
	fs := runAmbig(t, 2, false)
	for _, i := range []int{0, 1, 2} {
		assert.True(t, fs.Completed(i, ambig.E), "E should complete at origin %d", i)
	}
}

func TestScenario4ThreeOnes(t *testing.T) {
	fs := runAmbig(t, 3, false)
	for i := 0; i <= 3; i++ {
		assert.True(t, fs.CompletedSpan(i, 3, ambig.E), "E should derive [%d,3]", i)
	}
}

func TestScenario5OneHundredOnes(t *testing.T) {
	const n = 100
	fs := runAmbig(t, n, false)
	for i := 0; i <= n; i++ {
		assert.True(t, fs.Completed(i, ambig.E))
	}
	// O(n^2) bound on distinct items processed (generous constant: the
	// grammar has 3 alternatives and the engine is not tuned for speed).
	assert.LessOrEqual(t, fs.ItemsProcessed(), 200*n*n+1000)
}

func TestScenario6UnknownTerminalIsHarmless(t *testing.T) {
	fs := runAmbig(t, 10, true)
	for i := 0; i <= 10; i++ {
		assert.True(t, fs.Completed(i, ambig.E), "the unknown-terminal alternative must not break the rest of the parse")
	}
}

func TestNegativeInputLengthFails(t *testing.T) {
	g := ambig.Grammar{}
	_, err := earley.Run(ambig.E, "", -1, g.Oracles())
	require.Error(t, err)
}

func TestStartSymbolMustBeNonterminal(t *testing.T) {
	g := ambig.Grammar{}
	_, err := earley.Run(ambig.One, "", 0, g.Oracles())
	require.Error(t, err)
}

func TestDeterminismUnderWorklistReordering(t *testing.T) {
	const n = 12
	g := ambig.Grammar{}
	input := strings.Repeat("1", n)

	lifo := earley.DefaultConfig()
	fifo := earley.DefaultConfig()
	fifo.SetString("engine.worklist_order", "fifo")

	a, err := earley.RunWithConfig(ambig.E, input, n, g.Oracles(), lifo)
	require.NoError(t, err)
	b, err := earley.RunWithConfig(ambig.E, input, n, g.Oracles(), fifo)
	require.NoError(t, err)

	for i := 0; i <= n; i++ {
		assert.Equal(t, a.Completed(i, ambig.E), b.Completed(i, ambig.E))
	}
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	const n = 8
	g := ambig.Grammar{}
	input := strings.Repeat("1", n)

	a, err := earley.Run(ambig.E, input, n, g.Oracles())
	require.NoError(t, err)
	b, err := earley.Run(ambig.E, input, n, g.Oracles())
	require.NoError(t, err)

	for i := 0; i <= n; i++ {
		assert.Equal(t, a.Completed(i, ambig.E), b.Completed(i, ambig.E))
	}
}

func TestPredictionFiresAtMostOncePerKY(t *testing.T) {
	const n = 6
	g := ambig.Grammar{}
	cfg := earley.DefaultConfig()
	cfg.SetBool("engine.instrument", true)

	fs, err := earley.RunWithConfig(ambig.E, strings.Repeat("1", n), n, g.Oracles(), cfg)
	require.NoError(t, err)

	for k := 0; k <= n; k++ {
		assert.LessOrEqual(t, fs.PredictCalls(k, ambig.E), 1)
	}
}

func TestTerminalMatchingIsMemoized(t *testing.T) {
	const n = 6
	g := ambig.Grammar{}
	cfg := earley.DefaultConfig()
	cfg.SetBool("engine.instrument", true)

	fs, err := earley.RunWithConfig(ambig.E, strings.Repeat("1", n), n, g.Oracles(), cfg)
	require.NoError(t, err)

	for k := 0; k <= n; k++ {
		assert.LessOrEqual(t, fs.ScanCalls(k, ambig.One), 1)
		assert.LessOrEqual(t, fs.ScanCalls(k, ambig.Eps), 1)
	}
}

func TestNullableGrammarDoesNotLoopForever(t *testing.T) {
	// A single nullable production: S -> S | eps. Nullable recursion
	// through the same nonterminal at the same position must not spin.
	S := earley.Nonterminal(9)
	eps := earley.Terminal(9)
	oracles := earley.Oracles{
		NewItems: func(y earley.Symbol, input any, k int) []earley.Item {
			if y != S {
				return nil
			}
			return []earley.Item{
				earley.NewItem(S, k, []earley.Symbol{S}),
				earley.NewItem(S, k, []earley.Symbol{eps}),
			}
		},
		ParseTerminal: func(t earley.Symbol, input any, k, n int) []int {
			if t == eps {
				return []int{k}
			}
			return nil
		},
	}

	done := make(chan *earley.FinalState, 1)
	go func() {
		fs, err := earley.Run(S, nil, 0, oracles)
		require.NoError(t, err)
		done <- fs
	}()

	select {
	case fs := <-done:
		assert.True(t, fs.Completed(0, S))
	case <-time.After(2 * time.Second):
		t.Fatal("nullable grammar caused the engine to loop forever")
	}
}

func TestDuplicateNonterminalInRHSCompletesOnce(t *testing.T) {
	// X -> Y Y, exercising a nonterminal appearing twice in one rule.
	X := earley.Nonterminal(20)
	Y := earley.Nonterminal(21)
	a := earley.Terminal(20)

	calls := 0
	oracles := earley.Oracles{
		NewItems: func(y earley.Symbol, input any, k int) []earley.Item {
			switch y {
			case X:
				return []earley.Item{earley.NewItem(X, k, []earley.Symbol{Y, Y})}
			case Y:
				calls++
				return []earley.Item{earley.NewItem(Y, k, []earley.Symbol{a})}
			}
			return nil
		},
		ParseTerminal: func(t earley.Symbol, input any, k, n int) []int {
			if t == a && k < n {
				return []int{k + 1}
			}
			return nil
		},
	}

	fs, err := earley.Run(X, "aa", 2, oracles)
	require.NoError(t, err)
	assert.True(t, fs.Completed(0, X))
	// Y is predicted once at k=0 and once at k=1 — two distinct
	// positions, not two predictions at the same position.
	assert.Equal(t, 2, calls)
}

func TestSoundnessAndCompletenessAgainstBruteForce(t *testing.T) {
	// Balanced parentheses: S -> ( S ) S | eps
	S := earley.Nonterminal(30)
	openP, closeP := earley.Terminal(30), earley.Terminal(31)

	matchParen := func(t earley.Symbol, input any, i, j int) bool {
		s := input.(string)
		if j != i+1 || j > len(s) {
			return false
		}
		if t == openP {
			return s[i] == '('
		}
		return s[i] == ')'
	}

	oracles := earley.Oracles{
		NewItems: func(y earley.Symbol, input any, k int) []earley.Item {
			if y != S {
				return nil
			}
			return []earley.Item{
				earley.NewItem(S, k, []earley.Symbol{openP, S, closeP, S}),
				earley.NewItem(S, k, nil),
			}
		},
		ParseTerminal: func(t earley.Symbol, input any, k, n int) []int {
			s := input.(string)
			if matchParen(t, s, k, k+1) {
				return []int{k + 1}
			}
			return nil
		},
	}

	for _, input := range []string{"", "()", "(())", "()()", "(()", ")("} {
		n := len(input)
		fs, err := earley.Run(S, input, n, oracles)
		require.NoError(t, err)

		want := cyk.Recognize(cyk.Grammar{
			Rules: []cyk.Rule{
				{Nt: S, Rhs: []earley.Symbol{openP, S, closeP, S}},
				{Nt: S, Rhs: nil},
			},
			Match: matchParen,
		}, input, n)

		for i := 0; i <= n; i++ {
			for j := i; j <= n; j++ {
				expected := want[cyk.Span{I: i, J: j}][S]
				got := fs.CompletedSpan(i, j, S)
				assert.Equal(t, expected, got, "input=%q span=[%d,%d]", input, i, j)
			}
		}
	}
}

func TestBlockedItemsAtSupportsExternalForestBuilding(t *testing.T) {
	fs := runAmbig(t, 1, false)
	blocked := fs.BlockedItemsAt(0, ambig.E)
	assert.NotEmpty(t, blocked, "something must have been blocked on E at position 0")
}
