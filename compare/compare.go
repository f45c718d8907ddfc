package compare

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/viant/vec/search"

	"github.com/viant/setcover/report"
)

// Result compares one testcase solved by both sides.
type Result struct {
	Name          string
	Size          int
	ReferenceSize int
	SizeMatch     bool
	// Similarity is the cosine similarity of the covers' indicator vectors
	// over set indices; 1 means both chose the same sets.
	Similarity float64
	// Differing counts sets chosen by exactly one side.
	Differing int
	// Speedup is reference runtime over ours.
	Speedup float64
}

func (r Result) String() string {
	verdict := "sizes agree"
	if !r.SizeMatch {
		verdict = "SIZE MISMATCH"
	}
	return fmt.Sprintf("%s: %s (%d vs %d), similarity %.3f, %s sets differ, speedup %.2fx",
		r.Name, verdict, r.Size, r.ReferenceSize, r.Similarity,
		humanize.Comma(int64(r.Differing)), r.Speedup)
}

// Comparison is the outcome of Summaries.
type Comparison struct {
	Results []Result
	// MissingInReference names testcases only ours has.
	MissingInReference []string
	// MissingInOurs names testcases only the reference has.
	MissingInOurs []string
	// Unfinished names testcases at least one side did not finish.
	Unfinished []string
}

// Mismatches returns the results whose cover sizes differ.
func (c *Comparison) Mismatches() []Result {
	var out []Result
	for _, r := range c.Results {
		if !r.SizeMatch {
			out = append(out, r)
		}
	}
	return out
}

// Summaries compares ours with reference testcase by testcase, in the order
// of ours.
func Summaries(ours, reference *report.Summary) *Comparison {
	ret := &Comparison{}
	for _, name := range ours.Names() {
		if !ours.Finished(name) || !reference.Finished(name) {
			ret.Unfinished = append(ret.Unfinished, name)
			continue
		}
		out, _ := ours.Lookup(name)
		ref, ok := reference.Lookup(name)
		if !ok {
			ret.MissingInReference = append(ret.MissingInReference, name)
			continue
		}
		ret.Results = append(ret.Results, Testcase(out, ref))
	}
	for _, name := range reference.Names() {
		if _, ok := ours.Lookup(name); ok || !ours.Finished(name) {
			continue
		}
		ret.MissingInOurs = append(ret.MissingInOurs, name)
	}
	return ret
}

// Testcase compares two records of the same testcase.
func Testcase(ours, reference report.TestcaseOutput) Result {
	a, b := indicators(ours.SetIndices, reference.SetIndices)
	return Result{
		Name:          ours.Name,
		Size:          ours.SetCount,
		ReferenceSize: reference.SetCount,
		SizeMatch:     ours.SetCount == reference.SetCount,
		Similarity:    similarity(a, b),
		Differing:     differing(a, b),
		Speedup:       speedup(ours.Runtime, reference.Runtime),
	}
}

func similarity(a, b []float32) float64 {
	v1 := search.Float32s(a)
	m1, m2 := v1.Magnitude(), search.Float32s(b).Magnitude()
	switch {
	case m1 == 0 && m2 == 0:
		return 1
	case m1 == 0 || m2 == 0:
		return 0
	}
	return 1 - float64(v1.CosineDistance(b))
}

// indicators returns 0/1 vectors over the set indices used by either cover.
func indicators(x, y []int) ([]float32, []float32) {
	n := 0
	for _, indices := range [][]int{x, y} {
		for _, i := range indices {
			if i+1 > n {
				n = i + 1
			}
		}
	}
	a, b := make([]float32, n), make([]float32, n)
	for _, i := range x {
		a[i] = 1
	}
	for _, i := range y {
		b[i] = 1
	}
	return a, b
}

func differing(a, b []float32) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func speedup(ours, reference float64) float64 {
	if ours <= 0 {
		return math.Inf(1)
	}
	return reference / ours
}
