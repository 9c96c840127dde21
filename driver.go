package earley

// initState builds the chart's initial value at k=0: empty bookkeeping
// everywhere plus the initial predictions for the start nonterminal,
// seeded directly into todo_done so later AddTodo calls for the same
// items are no-ops. Seeding todo_done with the initial items, rather
// than leaving it empty, is what keeps the very first prediction step
// from re-enqueueing items already sitting in the initial worklist.
func initState(startNt Symbol, input any, inputLength int, oracles Oracles, cfg *EngineConfig) *Chart {
	c := &Chart{
		K:           0,
		todoDone:    map[string]struct{}{},
		todoGtK:     map[int]itemSet{},
		bitmsAtK:    map[Symbol]itemSet{},
		bitmsLtK:    map[int]map[Symbol]itemSet{},
		ixkDone:     map[ixkKey]struct{}{},
		ktjsVals:    map[Symbol][]int{},
		ktjsSeen:    map[Symbol]struct{}{},
		completions: map[ixkKey]map[int]struct{}{},
		input:       input,
		inputLength: inputLength,
		oracles:     oracles,
		cfg:         cfg,
		predictCalls: map[predictKey]int{},
		scanCalls:    map[scanKey]int{},
	}

	seed := itemSet{}
	for _, it := range oracles.NewItems(startNt, input, 0) {
		seed.add(it)
	}
	c.todo = seed.items()
	for k := range seed {
		c.todoDone[k] = struct{}{}
	}
	return c
}

// runDriver runs the stepper to quiescence at each position, then
// advances, until the position bound is exceeded.
func runDriver(c *Chart) (*FinalState, error) {
	for c.K <= c.inputLength {
		for len(c.todo) > 0 {
			step(c)
		}
		if !advance(c) {
			break
		}
	}
	return newFinalState(c), nil
}

// advance moves the chart from position k to k+1, archiving the
// per-position bookkeeping and seeding the worklist from todo_gt_k.
// It returns false when k+1 would exceed inputLength, in which case
// the final position's state is left completely intact for FinalState
// to read, preserving the final position's ixk_done/bitms_at_k/ktjs
// rather than discarding them one step too early.
func advance(c *Chart) bool {
	nextK := c.K + 1
	if nextK > c.inputLength {
		return false
	}

	c.bitmsLtK[c.K] = c.bitmsAtK
	c.bitmsAtK = map[Symbol]itemSet{}

	c.ixkDone = map[ixkKey]struct{}{}
	c.ktjsVals = map[Symbol][]int{}
	c.ktjsSeen = map[Symbol]struct{}{}

	bucket, ok := c.todoGtK[nextK]
	if !ok {
		bucket = itemSet{}
	}
	delete(c.todoGtK, nextK)

	c.todo = bucket.items()
	c.todoDone = map[string]struct{}{}
	for k := range bucket {
		c.todoDone[k] = struct{}{}
	}

	c.K = nextK
	return true
}
