package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/solver"
)

// Set is one selected entry as it appears in the report.
type Set struct {
	ID      int
	Members []int
}

// Report is a verified cover ready to be written out.
type Report struct {
	// Included lists the selected identities in ascending order.
	Included []int
	// Sets holds the original membership of every included entry, in the
	// same order as Included.
	Sets    []Set
	Elapsed time.Duration
}

// Size returns the number of selected entries.
func (r *Report) Size() int { return len(r.Included) }

// CoverageInvariantViolation is returned when a cover handed to Assemble is
// not a cover of the instance. It always indicates a solver defect.
type CoverageInvariantViolation struct {
	// Missing are universe elements no selected entry contains.
	Missing []int
	// Unknown are selected identities that name no entry.
	Unknown []int
	// Duplicate are identities selected more than once.
	Duplicate []int
	// Vacuous are selected entries with no members at all.
	Vacuous []int
}

func (e *CoverageInvariantViolation) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing elements %v", e.Missing))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown sets %v", e.Unknown))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate sets %v", e.Duplicate))
	}
	if len(e.Vacuous) > 0 {
		parts = append(parts, fmt.Sprintf("empty sets %v", e.Vacuous))
	}
	return "report: cover invariant violated: " + strings.Join(parts, "; ")
}

func (e *CoverageInvariantViolation) empty() bool {
	return len(e.Missing) == 0 && len(e.Unknown) == 0 && len(e.Duplicate) == 0 && len(e.Vacuous) == 0
}

// Assemble checks that the union of the original memberships of cover
// equals the instance universe and builds the report.
func Assemble(inst *instance.Instance, cover solver.Cover, elapsed time.Duration) (*Report, error) {
	violation := &CoverageInvariantViolation{}
	covered := bitset.New(inst.Universe.Len())
	seen := make(map[int]bool, len(cover))
	ret := &Report{Elapsed: elapsed}
	for _, id := range cover.Sorted() {
		entry := inst.Entry(id)
		switch {
		case entry == nil:
			violation.Unknown = append(violation.Unknown, id)
			continue
		case seen[id]:
			if n := len(violation.Duplicate); n == 0 || violation.Duplicate[n-1] != id {
				violation.Duplicate = append(violation.Duplicate, id)
			}
			continue
		case len(entry.Original) == 0:
			violation.Vacuous = append(violation.Vacuous, id)
		}
		seen[id] = true
		for _, m := range entry.Original {
			covered.Set(uint(m))
		}
		ret.Included = append(ret.Included, id)
		ret.Sets = append(ret.Sets, Set{ID: id, Members: sortedCopy(entry.Original)})
	}
	if missing := instance.Elements(inst.Universe.Difference(covered)); len(missing) > 0 {
		violation.Missing = missing
	}
	if !violation.empty() {
		return nil, violation
	}
	if ret.Included == nil {
		ret.Included = []int{}
	}
	return ret, nil
}

func sortedCopy(values []int) []int {
	out := append([]int{}, values...)
	sort.Ints(out)
	return out
}
