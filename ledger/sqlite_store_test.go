package ledger

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/setcover/engine"
	"github.com/viant/setcover/report"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	return store
}

func TestSQLiteStore_RecordAndSummary(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	runID, err := store.Begin(ctx, "branchbound")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	a := report.TestcaseOutput{Name: "a", Runtime: 0.5, SetCount: 2, SetIndices: []int{0, 3}}
	b := report.TestcaseOutput{Name: "b", Runtime: 0.0025, SetCount: 1, SetIndices: []int{7}}
	require.NoError(t, store.Record(ctx, runID, a, b))
	require.NoError(t, store.RecordUnfinished(ctx, runID, "c"))

	expect := &report.Summary{}
	expect.Add(a)
	expect.Add(b)
	expect.MarkUnfinished("c")

	actual, err := store.Summary(ctx, runID)
	require.NoError(t, err)
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	other, err := store.Begin(ctx, "other")
	require.NoError(t, err)
	assert.NotEqual(t, runID, other)
	empty, err := store.Summary(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, empty.TestcaseOutputs)

	_, err = store.Begin(ctx, "")
	assert.Error(t, err)
}

func TestSQLiteStore_Tabulate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	ours, err := store.Begin(ctx, "branchbound")
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, ours,
		report.TestcaseOutput{Name: "a", Runtime: 0.5, SetCount: 1, SetIndices: []int{0}},
		report.TestcaseOutput{Name: "b", Runtime: 0.0025, SetCount: 1, SetIndices: []int{1}},
	))
	require.NoError(t, store.RecordUnfinished(ctx, ours, "c"))

	reference := &report.Summary{}
	reference.Add(report.TestcaseOutput{Name: "a", Runtime: 1.5, SetCount: 1, SetIndices: []int{0}})
	reference.Add(report.TestcaseOutput{Name: "b", Runtime: 0.000042, SetCount: 1, SetIndices: []int{1}})
	reference.Add(report.TestcaseOutput{Name: "c", Runtime: 2, SetCount: 1, SetIndices: []int{2}})
	z3, err := store.ImportSummary(ctx, "z3", reference)
	require.NoError(t, err)

	table, err := store.Tabulate(ctx, ours, z3)
	require.NoError(t, err)
	expect := "" +
		"| Test Case | branchbound | z3       |\n" +
		"|-----------|-------------|----------|\n" +
		"| a         | 500.00 ms   | 1.50 s   |\n" +
		"| b         | 2.50 ms     | 42.00 µs |\n" +
		"| c         | inf         | 2.00 s   |\n" +
		"| Total     | inf         | 3.50 s   |\n"
	assert.Equal(t, expect, table)

	_, err = store.Tabulate(ctx, "missing")
	assert.Error(t, err)
	_, err = store.Tabulate(ctx)
	assert.Error(t, err)
}

func TestSQLiteStore_TabulateMissingRow(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	first, err := store.ImportSummary(ctx, "x", &report.Summary{TestcaseOutputs: []report.TestcaseOutput{{Name: "a", Runtime: 2, SetIndices: []int{}}}})
	require.NoError(t, err)
	second, err := store.ImportSummary(ctx, "y", &report.Summary{})
	require.NoError(t, err)

	table, err := store.Tabulate(ctx, first, second)
	require.NoError(t, err)
	expect := "" +
		"| Test Case | x      | y       |\n" +
		"|-----------|--------|---------|\n" +
		"| a         | 2.00 s | -       |\n" +
		"| Total     | 2.00 s | 0.00 ns |\n"
	assert.Equal(t, expect, table)
}
