package earley

// ixkKey identifies a (origin, nonterminal) pair — the unit the
// completion rule memoizes on.
type ixkKey struct {
	I int
	X Symbol
}

// predictKey and scanKey identify the units the prediction and scan
// rules memoize on, used only for the optional call-counting
// instrumentation (see EngineConfig's "engine.instrument").
type predictKey struct {
	K int
	Y Symbol
}

type scanKey struct {
	K int
	T Symbol
}

// itemSet is a structurally-deduplicated collection of items, keyed by
// Item.key(). It backs every position where the engine needs "a set
// of items" (todo_gt_k buckets, bitms_at_k/bitms_lt_k buckets).
type itemSet map[string]Item

func (s itemSet) add(it Item) bool {
	k := it.key()
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = it
	return true
}

func (s itemSet) items() []Item {
	out := make([]Item, 0, len(s))
	for _, it := range s {
		out = append(out, it)
	}
	return out
}

// Chart is the single mutable aggregate the stepper and position
// driver operate on. Everything here is owned by one run: there is no
// global or shared state between concurrent runs.
type Chart struct {
	K int

	todo     []Item
	todoDone map[string]struct{}
	todoGtK  map[int]itemSet

	bitmsAtK map[Symbol]itemSet
	bitmsLtK map[int]map[Symbol]itemSet

	ixkDone map[ixkKey]struct{}

	ktjsVals map[Symbol][]int
	ktjsSeen map[Symbol]struct{}

	// Archived across the whole run, never reset on advance — this is
	// what FinalState is built from.
	completions map[ixkKey]map[int]struct{}

	input       any
	inputLength int
	oracles     Oracles
	cfg         *EngineConfig

	// instrumentation: predictCalls and scanCalls are populated only when
	// cfg.GetBool("engine.instrument"); itemsProcessed is counted on every run
	predictCalls   map[predictKey]int
	scanCalls      map[scanKey]int
	itemsProcessed int
}

// AddTodo enqueues item: items whose K is in the future are parked
// under todo_gt_k; items at or before the current position are
// appended to todo unless already seen. Idempotent.
func (c *Chart) AddTodo(item Item) {
	if item.K > c.K {
		bucket, ok := c.todoGtK[item.K]
		if !ok {
			bucket = itemSet{}
			c.todoGtK[item.K] = bucket
		}
		bucket.add(item)
		return
	}
	if _, done := c.todoDone[item.key()]; done {
		return
	}
	c.todo = append(c.todo, item)
	c.todoDone[item.key()] = struct{}{}
}

// PopTodo removes and returns one item from todo. The worklist
// discipline is governed by cfg's "engine.worklist_order" — any total
// order terminates because todoDone dedupes, and the final completed
// set is independent of the choice.
func (c *Chart) PopTodo() Item {
	if len(c.todo) == 0 {
		panic("earley: PopTodo called on an empty worklist")
	}
	var it Item
	if c.cfg.GetString("engine.worklist_order") == "fifo" {
		it = c.todo[0]
		c.todo = c.todo[1:]
	} else {
		last := len(c.todo) - 1
		it = c.todo[last]
		c.todo = c.todo[:last]
	}
	return it
}

// GetBitms returns the items blocked on Y at position k. Missing
// buckets are an empty set, never nil.
func (c *Chart) GetBitms(k int, y Symbol) []Item {
	if k == c.K {
		return c.bitmsAtK[y].items()
	}
	return c.bitmsLtK[k][y].items()
}

func (c *Chart) bitmsEmptyAt(k int, y Symbol) bool {
	if k == c.K {
		return len(c.bitmsAtK[y]) == 0
	}
	return len(c.bitmsLtK[k][y]) == 0
}

// AddBitmAtK records item as blocked on y at the current position, so
// a later completion of y over [current_k, ...] will resume it.
func (c *Chart) AddBitmAtK(item Item, y Symbol) {
	bucket, ok := c.bitmsAtK[y]
	if !ok {
		bucket = itemSet{}
		c.bitmsAtK[y] = bucket
	}
	bucket.add(item)
}

func (c *Chart) ixkDoneContains(i int, x Symbol) bool {
	_, ok := c.ixkDone[ixkKey{I: i, X: x}]
	return ok
}

func (c *Chart) ixkDoneAdd(i int, x Symbol) {
	key := ixkKey{I: i, X: x}
	c.ixkDone[key] = struct{}{}

	ks, ok := c.completions[key]
	if !ok {
		ks = map[int]struct{}{}
		c.completions[key] = ks
	}
	ks[c.K] = struct{}{}
}

// findKtjs returns the cached end positions for terminal t at the
// current position, and whether they have already been computed.
func (c *Chart) findKtjs(t Symbol) ([]int, bool) {
	if _, seen := c.ktjsSeen[t]; seen {
		return c.ktjsVals[t], true
	}
	return nil, false
}

func (c *Chart) setKtjs(t Symbol, js []int) {
	c.ktjsSeen[t] = struct{}{}
	c.ktjsVals[t] = js
}
