package instance

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Entry is a candidate subset of the universe.
//
// Original is fixed when the instance is built and is only used for
// reporting and verification. Active is the part of Original that is still
// uncovered at the current search level; entries are compared for pruning
// by Active only.
type Entry struct {
	ID       int
	Original []int
	Active   *bitset.BitSet
}

// NewEntry builds an entry whose active membership equals its original one.
// Duplicate members are collapsed and Original is kept sorted ascending.
func NewEntry(id int, members []int) *Entry {
	active := bitset.New(0)
	for _, m := range members {
		if m < 0 {
			continue
		}
		active.Set(uint(m))
	}
	return &Entry{ID: id, Original: Elements(active), Active: active}
}

// Size returns the number of active members.
func (e *Entry) Size() int { return int(e.Active.Count()) }

// Contains reports whether element is an active member.
func (e *Entry) Contains(element int) bool { return e.Active.Test(uint(element)) }

// Restrict returns a new entry with the same identity and original
// membership whose active membership is e.Active \ removed. The receiver is
// never modified, so sibling branches can restrict the same entry
// independently.
func (e *Entry) Restrict(removed *bitset.BitSet) *Entry {
	return &Entry{ID: e.ID, Original: e.Original, Active: e.Active.Difference(removed)}
}

// DominatedBy reports whether e's active membership is a strict subset of
// other's.
func (e *Entry) DominatedBy(other *Entry) bool {
	return e.ID != other.ID && other.Active.IsStrictSuperSet(e.Active)
}

// Elements lists the members of set in ascending order.
func Elements(set *bitset.BitSet) []int {
	if set == nil {
		return nil
	}
	out := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// SetOf builds a bit set holding elements.
func SetOf(elements ...int) *bitset.BitSet {
	set := bitset.New(0)
	for _, e := range elements {
		set.Set(uint(e))
	}
	return set
}

// IDs returns the identities of entries, sorted ascending.
func IDs(entries []*Entry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	sort.Ints(ids)
	return ids
}
