package branchbound

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/internal/memo"
	"github.com/viant/setcover/solver"
)

const defaultParallelThreshold = 12

// Solver is the exact branch-and-bound minimum set cover search. A Solver
// may be reused; Stats reports on the most recent Solve call.
type Solver struct {
	memo              bool
	parallelism       int
	parallelThreshold int
	logger            logrus.FieldLogger

	mu    sync.Mutex
	stats Stats
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{
		parallelThreshold: defaultParallelThreshold,
		logger:            logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters of the most recent Solve call.
func (s *Solver) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Solve returns a minimum cover of uncovered drawn from entries.
//
// Entries are taken in identity order and their active memberships are
// clipped to uncovered, so that active membership always equals an entry's
// contribution to the still uncovered elements.
func (s *Solver) Solve(ctx context.Context, entries []*instance.Entry, uncovered *bitset.BitSet) (solver.Cover, error) {
	started := time.Now()
	r := &search{ctx: ctx, threshold: s.parallelThreshold}
	if s.memo {
		r.cache = memo.New[solver.Cover]()
	}
	if s.parallelism > 1 {
		r.tokens = make(chan struct{}, s.parallelism-1)
	}
	cover, err := r.cover(normalize(entries, uncovered), uncovered, 0)
	stats := r.counters.snapshot()
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()

	fields := logrus.Fields{
		"entries":   len(entries),
		"calls":     humanize.Comma(int64(stats.Calls)),
		"dominated": humanize.Comma(int64(stats.Dominated)),
		"forced":    humanize.Comma(int64(stats.Forced)),
		"branches":  humanize.Comma(int64(stats.Branches)),
		"memo_hits": humanize.Comma(int64(stats.MemoHits)),
		"depth":     stats.MaxDepth,
		"elapsed":   time.Since(started),
	}
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Debug("search aborted")
		return nil, err
	}
	s.logger.WithFields(fields).WithField("size", len(cover)).Debug("search finished")
	return cover, nil
}

// normalize copies entries in identity order, clipping active memberships
// that reach outside uncovered.
func normalize(entries []*instance.Entry, uncovered *bitset.BitSet) []*instance.Entry {
	out := make([]*instance.Entry, len(entries))
	for i, e := range entries {
		if e.Active.DifferenceCardinality(uncovered) > 0 {
			e = e.Restrict(e.Active.Difference(uncovered))
		}
		out[i] = e
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

type search struct {
	ctx       context.Context
	cache     *memo.Cache[solver.Cover]
	tokens    chan struct{}
	threshold int
	counters
}

// cover is a pure function of (entries, uncovered); entries are kept in
// identity order so every tie-break below is deterministic.
func (r *search) cover(entries []*instance.Entry, uncovered *bitset.BitSet, depth int) (solver.Cover, error) {
	if err := r.ctx.Err(); err != nil {
		return nil, solver.Timeout(err)
	}
	r.calls.Add(1)
	r.depth(depth)

	if uncovered.None() {
		return solver.Cover{}, nil
	}
	if len(entries) == 0 {
		return nil, &solver.UnsatisfiableError{Uncovered: instance.Elements(uncovered)}
	}

	var key string
	if r.cache != nil {
		key = memo.Key(ids(entries), uncovered)
		if cached, ok := r.cache.Get(key); ok {
			r.memoHits.Add(1)
			return cached, nil
		}
	}

	result, err := r.reduce(entries, uncovered, depth)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Put(key, result)
	}
	return result, nil
}

func (r *search) reduce(entries []*instance.Entry, uncovered *bitset.BitSet, depth int) (solver.Cover, error) {
	if live := r.eliminateDominated(entries); len(live) < len(entries) {
		return r.cover(live, uncovered, depth+1)
	}

	for e, ok := uncovered.NextSet(0); ok; e, ok = uncovered.NextSet(e + 1) {
		holder, count := -1, 0
		for k, entry := range entries {
			if entry.Active.Test(e) {
				holder = k
				if count++; count > 1 {
					break
				}
			}
		}
		switch count {
		case 0:
			return nil, &solver.UnsatisfiableError{Uncovered: uncoverable(entries, uncovered)}
		case 1:
			r.forced.Add(1)
			selected := entries[holder]
			rest, err := r.cover(take(entries, holder), uncovered.Difference(selected.Active), depth+1)
			if err != nil {
				return nil, err
			}
			return prepend(selected.ID, rest), nil
		}
	}

	return r.branch(entries, uncovered, depth)
}

// eliminateDominated drops every entry whose active membership is a strict
// subset of another live entry's. Strict inclusion is transitive, so the
// survivors are the same whichever dominated entry is removed first.
func (r *search) eliminateDominated(entries []*instance.Entry) []*instance.Entry {
	sizes := make([]uint, len(entries))
	for i, e := range entries {
		sizes[i] = e.Active.Count()
	}
	var live []*instance.Entry
	for i, a := range entries {
		dominated := false
		for j, b := range entries {
			if i == j || sizes[i] >= sizes[j] {
				continue
			}
			if b.Active.IsSuperSet(a.Active) {
				dominated = true
				break
			}
		}
		if dominated {
			if live == nil {
				live = append(make([]*instance.Entry, 0, len(entries)), entries[:i]...)
			}
			r.dominated.Add(1)
			continue
		}
		if live != nil {
			live = append(live, a)
		}
	}
	if live == nil {
		return entries
	}
	return live
}

func (r *search) branch(entries []*instance.Entry, uncovered *bitset.BitSet, depth int) (solver.Cover, error) {
	r.branches.Add(1)
	largest, size := 0, entries[0].Active.Count()
	for k := 1; k < len(entries); k++ {
		if n := entries[k].Active.Count(); n > size {
			largest, size = k, n
		}
	}
	chosen := entries[largest]
	excludeEntries := without(entries, largest)
	includeEntries := take(entries, largest)
	includeUncovered := uncovered.Difference(chosen.Active)

	var exclude, include solver.Cover
	var excludeErr, includeErr error
	if len(entries) >= r.threshold && r.acquire() {
		var g errgroup.Group
		g.Go(func() error {
			defer r.release()
			exclude, excludeErr = r.cover(excludeEntries, uncovered, depth+1)
			return excludeErr
		})
		include, includeErr = r.cover(includeEntries, includeUncovered, depth+1)
		_ = g.Wait()
	} else {
		exclude, excludeErr = r.cover(excludeEntries, uncovered, depth+1)
		if excludeErr == nil {
			include, includeErr = r.cover(includeEntries, includeUncovered, depth+1)
		}
	}
	if excludeErr != nil {
		return nil, excludeErr
	}
	if includeErr != nil {
		return nil, includeErr
	}
	if len(include)+1 < len(exclude) {
		return prepend(chosen.ID, include), nil
	}
	return exclude, nil
}

func (r *search) acquire() bool {
	if r.tokens == nil {
		return false
	}
	select {
	case r.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

func (r *search) release() { <-r.tokens }

// take selects entries[k]: the remaining entries are restricted by its
// active membership, and those left with no active members are dropped.
func take(entries []*instance.Entry, k int) []*instance.Entry {
	selected := entries[k].Active
	out := make([]*instance.Entry, 0, len(entries)-1)
	for i, e := range entries {
		if i == k || e.Active.DifferenceCardinality(selected) == 0 {
			continue
		}
		out = append(out, e.Restrict(selected))
	}
	return out
}

func without(entries []*instance.Entry, k int) []*instance.Entry {
	out := make([]*instance.Entry, 0, len(entries)-1)
	out = append(out, entries[:k]...)
	return append(out, entries[k+1:]...)
}

func prepend(id int, rest solver.Cover) solver.Cover {
	out := make(solver.Cover, 0, len(rest)+1)
	out = append(out, id)
	return append(out, rest...)
}

func ids(entries []*instance.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func uncoverable(entries []*instance.Entry, uncovered *bitset.BitSet) []int {
	union := bitset.New(uncovered.Len())
	for _, e := range entries {
		union.InPlaceUnion(e.Active)
	}
	return instance.Elements(uncovered.Difference(union))
}

var _ solver.Solver = (*Solver)(nil)
