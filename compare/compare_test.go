package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/setcover/report"
)

func TestTestcase(t *testing.T) {
	var testCases = []struct {
		description string
		ours        []int
		reference   []int
		similarity  float64
		differing   int
	}{
		{description: "identical", ours: []int{0, 3}, reference: []int{0, 3}, similarity: 1, differing: 0},
		{description: "half shared", ours: []int{0, 1}, reference: []int{0, 2}, similarity: 0.5, differing: 2},
		{description: "disjoint", ours: []int{1}, reference: []int{4}, similarity: 0, differing: 2},
		{description: "both empty", ours: []int{}, reference: []int{}, similarity: 1, differing: 0},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			result := Testcase(
				report.TestcaseOutput{Name: "x", Runtime: 0.5, SetCount: len(testCase.ours), SetIndices: testCase.ours},
				report.TestcaseOutput{Name: "x", Runtime: 1.5, SetCount: len(testCase.reference), SetIndices: testCase.reference},
			)
			assert.InDelta(t, testCase.similarity, result.Similarity, 1e-6)
			assert.Equal(t, testCase.differing, result.Differing)
			assert.True(t, result.SizeMatch)
			assert.InDelta(t, 3.0, result.Speedup, 1e-9)
		})
	}
}

func TestSummaries(t *testing.T) {
	ours := &report.Summary{}
	ours.Add(report.TestcaseOutput{Name: "a", Runtime: 1, SetCount: 2, SetIndices: []int{0, 1}})
	ours.Add(report.TestcaseOutput{Name: "b", Runtime: 0, SetCount: 1, SetIndices: []int{2}})
	ours.Add(report.TestcaseOutput{Name: "only-ours", Runtime: 1, SetCount: 1, SetIndices: []int{0}})
	ours.MarkUnfinished("slow")

	reference := &report.Summary{}
	reference.Add(report.TestcaseOutput{Name: "a", Runtime: 2, SetCount: 2, SetIndices: []int{0, 1}})
	reference.Add(report.TestcaseOutput{Name: "b", Runtime: 1, SetCount: 2, SetIndices: []int{0, 1}})
	reference.Add(report.TestcaseOutput{Name: "slow", Runtime: 9, SetCount: 3, SetIndices: []int{0, 1, 2}})
	reference.Add(report.TestcaseOutput{Name: "only-ref", Runtime: 1, SetCount: 1, SetIndices: []int{0}})

	comparison := Summaries(ours, reference)
	require.Len(t, comparison.Results, 2)
	assert.Equal(t, "a", comparison.Results[0].Name)
	assert.True(t, comparison.Results[0].SizeMatch)
	assert.InDelta(t, 2.0, comparison.Results[0].Speedup, 1e-9)
	assert.True(t, math.IsInf(comparison.Results[1].Speedup, 1))
	assert.Equal(t, []string{"only-ours"}, comparison.MissingInReference)
	assert.Equal(t, []string{"only-ref"}, comparison.MissingInOurs)
	assert.Equal(t, []string{"slow"}, comparison.Unfinished)

	mismatches := comparison.Mismatches()
	require.Len(t, mismatches, 1)
	assert.Equal(t, "b", mismatches[0].Name)
	assert.Contains(t, mismatches[0].String(), "SIZE MISMATCH (1 vs 2)")
	assert.Contains(t, comparison.Results[0].String(), "a: sizes agree (2 vs 2), similarity 1.000, 0 sets differ, speedup 2.00x")
}
