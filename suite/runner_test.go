package suite

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/setcover/config"
	"github.com/viant/setcover/engine"
	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/ledger"
	"github.com/viant/setcover/metrics"
	"github.com/viant/setcover/solver"
	"github.com/viant/setcover/solver/bruteforce"
)

func writeCase(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(content), 0o644))
}

func writeGenerated(t *testing.T, dir string, seed uint64, elements, sets int) string {
	t.Helper()
	inst, err := instance.Generate(rand.New(rand.NewPCG(seed, seed)), elements, sets, false)
	require.NoError(t, err)
	name := instance.Name(elements, sets, false)
	var sb strings.Builder
	require.NoError(t, instance.Encode(&sb, inst))
	writeCase(t, dir, name, sb.String())
	return name
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "triangle", "3\n3\n1 2\n2 3\n1 3")
	writeCase(t, dir, "superset", "2\n3\n1\n2\n1 2")
	generated := writeGenerated(t, dir, 7, 12, 10)

	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	store, err := ledger.NewSQLiteStore(db)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	runner := &Runner{Logger: logger, Ledger: store, Metrics: metrics.New()}
	cfg := config.Default()
	cfg.TestcasesDir = dir
	cfg.Testcases = []string{"triangle", "superset", generated}
	cfg.Concurrency = 2

	result, err := runner.Run(context.Background(), cfg)
	require.NoError(t, err)
	summary := result.Summary
	require.Len(t, summary.TestcaseOutputs, 3)
	assert.Empty(t, summary.Unfinished)
	assert.Equal(t, []string{"triangle", "superset", generated}, summary.Names())

	triangle := summary.TestcaseOutputs[0]
	assert.Equal(t, 2, triangle.SetCount)
	assert.Equal(t, []int{1, 2}, triangle.SetIndices)
	assert.Equal(t, []int{2}, summary.TestcaseOutputs[1].SetIndices)

	inst, err := instance.Load(cfg.Path(generated))
	require.NoError(t, err)
	expect, err := bruteforce.New(0).Solve(context.Background(), inst.Collection(), inst.Uncovered())
	require.NoError(t, err)
	assert.Equal(t, len(expect), summary.TestcaseOutputs[2].SetCount)

	require.NotEmpty(t, result.RunID)
	recorded, err := store.Summary(context.Background(), result.RunID)
	require.NoError(t, err)
	if diff := cmp.Diff(summary, recorded); diff != "" {
		t.Fatalf("ledger mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 3, testutil.CollectAndCount(runner.Metrics.CoverSize))
	assert.Equal(t, 2.0, testutil.ToFloat64(runner.Metrics.CoverSize.WithLabelValues("triangle")))
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "suite finished", hook.LastEntry().Message)
}

// waitingSolver blocks until its context is done.
type waitingSolver struct{}

func (waitingSolver) Solve(ctx context.Context, _ []*instance.Entry, _ *bitset.BitSet) (solver.Cover, error) {
	<-ctx.Done()
	return nil, solver.Timeout(ctx.Err())
}

func TestRunner_Timeout(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "slow", "1\n1\n1")

	runner := &Runner{
		Logger:  logrus.New(),
		Metrics: metrics.New(),
		NewSolver: func(opts Options) (solver.Solver, error) {
			return waitingSolver{}, nil
		},
	}
	cfg := config.Default()
	cfg.TestcasesDir = dir
	cfg.Testcases = []string{"slow"}
	cfg.Timeout = 10 * time.Millisecond

	result, err := runner.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"slow"}, result.Summary.Unfinished)
	assert.Empty(t, result.Summary.TestcaseOutputs)
	assert.Zero(t, result.Summary.TotalRuntime)
	assert.Equal(t, 1.0, testutil.ToFloat64(runner.Metrics.Unfinished.WithLabelValues("slow")))
}

func TestRunner_Failures(t *testing.T) {
	dir := t.TempDir()
	writeCase(t, dir, "malformed", "3\n3\n1 2\n2 3")
	writeCase(t, dir, "uncoverable", "3\n2\n1\n2")

	var testCases = []struct {
		description string
		testcase    string
		check       func(t *testing.T, err error)
	}{
		{
			description: "malformed instance",
			testcase:    "malformed",
			check: func(t *testing.T, err error) {
				var malformed *instance.MalformedInputError
				assert.ErrorAs(t, err, &malformed)
			},
		},
		{
			description: "unsatisfiable instance",
			testcase:    "uncoverable",
			check: func(t *testing.T, err error) {
				var unsat *solver.UnsatisfiableError
				require.ErrorAs(t, err, &unsat)
				assert.Equal(t, []int{3}, unsat.Uncovered)
			},
		},
		{
			description: "missing file",
			testcase:    "absent",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := config.Default()
			cfg.TestcasesDir = dir
			cfg.Testcases = []string{testCase.testcase}
			_, err := (&Runner{Logger: logrus.New()}).Run(context.Background(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.testcase)
			testCase.check(t, err)
		})
	}
}

func TestNewSolver(t *testing.T) {
	_, err := NewSolver(Options{Solver: "z3"})
	assert.Error(t, err)
	s, err := NewSolver(Options{Solver: config.SolverBruteForce})
	require.NoError(t, err)
	assert.IsType(t, &bruteforce.Solver{}, s)
}
