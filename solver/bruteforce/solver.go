package bruteforce

import (
	"context"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/solver"
)

// DefaultMaxEntries bounds the collections the solver accepts when
// MaxEntries is not set.
const DefaultMaxEntries = 24

const checkEvery = 1 << 10

// Solver enumerates combinations of entries by increasing cardinality.
type Solver struct {
	// MaxEntries rejects larger collections; 0 means DefaultMaxEntries.
	MaxEntries int
}

// New returns a Solver accepting up to maxEntries entries.
func New(maxEntries int) *Solver { return &Solver{MaxEntries: maxEntries} }

// Solve returns the lexicographically first minimum cover over entries
// ordered by identity.
func (s *Solver) Solve(ctx context.Context, entries []*instance.Entry, uncovered *bitset.BitSet) (solver.Cover, error) {
	limit := s.MaxEntries
	if limit <= 0 {
		limit = DefaultMaxEntries
	}
	if len(entries) > limit {
		return nil, fmt.Errorf("bruteforce: %d entries exceeds limit %d", len(entries), limit)
	}
	if uncovered.None() {
		return solver.Cover{}, nil
	}
	sorted := append([]*instance.Entry(nil), entries...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].ID < sorted[b].ID })

	union := bitset.New(uncovered.Len())
	for _, e := range sorted {
		union.InPlaceUnion(e.Active)
	}
	if missing := uncovered.Difference(union); missing.Any() {
		return nil, &solver.UnsatisfiableError{Uncovered: instance.Elements(missing)}
	}

	n := len(sorted)
	visited := 0
	for k := 1; k <= n; k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if visited++; visited%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return nil, solver.Timeout(err)
				}
			}
			acc := bitset.New(uncovered.Len())
			for _, i := range idx {
				acc.InPlaceUnion(sorted[i].Active)
			}
			if uncovered.DifferenceCardinality(acc) == 0 {
				cover := make(solver.Cover, k)
				for j, i := range idx {
					cover[j] = sorted[i].ID
				}
				return cover, nil
			}
			if !next(idx, n) {
				break
			}
		}
	}
	return nil, &solver.UnsatisfiableError{Uncovered: instance.Elements(uncovered)}
}

// next advances idx to the following k-combination of 0..n-1 in
// lexicographic order and reports whether one exists.
func next(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

var _ solver.Solver = (*Solver)(nil)
