package earley

// step dequeues one item and dispatches it to exactly one of the three
// rules below: completion, prediction, or scan. It is the
// only place new items get enqueued mid-position.
func step(c *Chart) {
	it := c.PopTodo()
	c.itemsProcessed++

	if it.Complete() {
		stepComplete(c, it)
		return
	}

	sym := it.NextSymbol()
	if sym.IsNonterminal() {
		stepBlockedOnNonterminal(c, it, sym)
		return
	}
	stepBlockedOnTerminal(c, it, sym)
}

// stepComplete implements the completion rule: a complete item over
// [i, current_k] as nonterminal X is propagated to every item that was
// blocked on X at i, exactly once per (i, X).
func stepComplete(c *Chart, it Item) {
	i, x := it.I, it.Nt
	if c.ixkDoneContains(i, x) {
		return
	}
	c.ixkDoneAdd(i, x)
	for _, blocked := range c.GetBitms(i, x) {
		c.AddTodo(Cut(blocked, c.K))
	}
}

// stepBlockedOnNonterminal implements the prediction rule plus the
// nullable-advance hazard: the first time anything is blocked on Y at
// the current position, Y is predicted; if Y has already completed
// the empty span at the current position, the item advances past it
// immediately instead of waiting for a completion event that already
// happened.
func stepBlockedOnNonterminal(c *Chart, it Item, y Symbol) {
	wasEmpty := c.bitmsEmptyAt(c.K, y)
	c.AddBitmAtK(it, y)

	if wasEmpty {
		if c.cfg.GetBool("engine.instrument") {
			c.predictCalls[predictKey{K: c.K, Y: y}]++
		}
		for _, nitm := range c.oracles.NewItems(y, c.input, c.K) {
			c.AddTodo(nitm)
		}
	}

	if c.ixkDoneContains(c.K, y) {
		c.AddTodo(Cut(it, c.K))
	}
}

// stepBlockedOnTerminal implements the scan rule, memoizing terminal
// matches per (k, t) within the current position.
func stepBlockedOnTerminal(c *Chart, it Item, t Symbol) {
	js, seen := c.findKtjs(t)
	if !seen {
		js = c.oracles.ParseTerminal(t, c.input, c.K, c.inputLength)
		c.setKtjs(t, js)
		if c.cfg.GetBool("engine.instrument") {
			c.scanCalls[scanKey{K: c.K, T: t}]++
		}
	}
	for _, j := range js {
		c.AddTodo(Cut(it, j))
	}
}
