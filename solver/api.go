package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/viant/setcover/instance"
)

// Cover lists the identities of the entries chosen by a solver. Order is
// not significant; use Sorted for reporting.
type Cover []int

// Len returns the number of chosen entries.
func (c Cover) Len() int { return len(c) }

// Sorted returns a copy of the cover ordered by identity.
func (c Cover) Sorted() Cover {
	out := append(Cover(nil), c...)
	sort.Ints(out)
	return out
}

// Solver finds a minimum cover of uncovered using entries.
type Solver interface {
	// Solve returns a cover of uncovered that is minimal in cardinality among
	// all sub-collections of entries. Entries and uncovered are not modified.
	//
	// Solve fails with ErrTimeout when ctx is done before the search
	// completes, and with *UnsatisfiableError when entries cannot cover
	// uncovered.
	Solve(ctx context.Context, entries []*instance.Entry, uncovered *bitset.BitSet) (Cover, error)
}

// ErrTimeout is returned when the search context expires before a cover is
// found.
var ErrTimeout = errors.New("solver: search timed out")

// Timeout wraps cause (usually ctx.Err()) so that errors.Is matches both
// ErrTimeout and cause.
func Timeout(cause error) error {
	if cause == nil {
		return ErrTimeout
	}
	return &timeoutCause{cause: cause}
}

type timeoutCause struct{ cause error }

func (e *timeoutCause) Error() string { return ErrTimeout.Error() + ": " + e.cause.Error() }

func (e *timeoutCause) Unwrap() []error { return []error{ErrTimeout, e.cause} }

// UnsatisfiableError reports that a search ran out of entries while elements
// were still uncovered. Instances are expected to be coverable, so this
// signals a violated precondition rather than a recoverable condition.
type UnsatisfiableError struct {
	Uncovered []int
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("solver: no entries left to cover elements %v", e.Uncovered)
}
