package instance

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// MaxElementCount bounds the universe size accepted from an instance header.
const MaxElementCount = 1 << 24

// Instance is a parsed minimum set cover problem.
type Instance struct {
	// ElementCount is N; the universe is {1..N}.
	ElementCount int
	// Entries are ordered by identity; Entries[i].ID == i+1.
	Entries []*Entry
	// Universe is never mutated once built.
	Universe *bitset.BitSet
}

// Build turns raw member lists into entries with sequential identities
// starting at 1 and computes the universe {1..elementCount}. It fails with a
// MalformedInputError when elementCount is not positive or a member lies
// outside the universe.
func Build(elementCount int, sets [][]int) (*Instance, error) {
	if elementCount <= 0 {
		return nil, &MalformedInputError{Line: 1, Reason: fmt.Sprintf("element count must be positive, got %d", elementCount)}
	}
	if elementCount > MaxElementCount {
		return nil, &MalformedInputError{Line: 1, Reason: fmt.Sprintf("element count %d exceeds limit %d", elementCount, MaxElementCount)}
	}
	entries := make([]*Entry, len(sets))
	for i, members := range sets {
		for _, m := range members {
			if m < 1 || m > elementCount {
				return nil, &MalformedInputError{Set: i + 1, Reason: fmt.Sprintf("element %d outside universe 1..%d", m, elementCount)}
			}
		}
		entries[i] = NewEntry(i+1, members)
	}
	return &Instance{ElementCount: elementCount, Entries: entries, Universe: Universe(elementCount)}, nil
}

// Universe returns the set {1..n}.
func Universe(n int) *bitset.BitSet {
	set := bitset.New(uint(n + 1))
	for i := 1; i <= n; i++ {
		set.Set(uint(i))
	}
	return set
}

// Entry returns the entry with the given identity, or nil.
func (i *Instance) Entry(id int) *Entry {
	if id < 1 || id > len(i.Entries) {
		return nil
	}
	return i.Entries[id-1]
}

// Collection returns a fresh slice over the instance entries so a search
// can reorder or shrink it without touching the instance.
func (i *Instance) Collection() []*Entry {
	return append([]*Entry(nil), i.Entries...)
}

// Uncovered returns a copy of the universe to seed a search.
func (i *Instance) Uncovered() *bitset.BitSet {
	return i.Universe.Clone()
}
