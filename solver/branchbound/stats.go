package branchbound

import "sync/atomic"

// Stats summarises the work done by one Solve call.
type Stats struct {
	// Calls counts search calls, including cache hits.
	Calls uint64
	// Dominated counts entries dropped by dominance elimination.
	Dominated uint64
	// Forced counts forced selections.
	Forced uint64
	// Branches counts exclude/include splits.
	Branches uint64
	// MemoHits counts subproblems answered from the cache.
	MemoHits uint64
	// MaxDepth is the deepest recursion level reached.
	MaxDepth int
}

type counters struct {
	calls     atomic.Uint64
	dominated atomic.Uint64
	forced    atomic.Uint64
	branches  atomic.Uint64
	memoHits  atomic.Uint64
	maxDepth  atomic.Int64
}

func (c *counters) depth(d int) {
	for {
		cur := c.maxDepth.Load()
		if int64(d) <= cur || c.maxDepth.CompareAndSwap(cur, int64(d)) {
			return
		}
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Calls:     c.calls.Load(),
		Dominated: c.dominated.Load(),
		Forced:    c.forced.Load(),
		Branches:  c.branches.Load(),
		MemoHits:  c.memoHits.Load(),
		MaxDepth:  int(c.maxDepth.Load()),
	}
}
