package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		yaml        string
		expect      func() *Config
		expectErr   string
	}{
		{
			description: "defaults fill unset fields",
			yaml:        "testcases: [a, b]\n",
			expect: func() *Config {
				cfg := Default()
				cfg.Testcases = []string{"a", "b"}
				return cfg
			},
		},
		{
			description: "every field",
			yaml: `testcases_dir: /data/cases
extension: .in
testcases: [s-rg-8-10]
solver: bruteforce
memoize: true
parallelism: 4
concurrency: 2
timeout: 1m30s
summary: out.json
ledger: ledger.sqlite
metrics_file: msc.prom
`,
			expect: func() *Config {
				return &Config{
					TestcasesDir: "/data/cases",
					Extension:    ".in",
					Testcases:    []string{"s-rg-8-10"},
					Solver:       SolverBruteForce,
					Memoize:      true,
					Parallelism:  4,
					Concurrency:  2,
					Timeout:      90 * time.Second,
					Summary:      "out.json",
					Ledger:       "ledger.sqlite",
					MetricsFile:  "msc.prom",
				}
			},
		},
		{description: "no testcases", yaml: "solver: branchbound\n", expectErr: "no testcases"},
		{description: "unknown solver", yaml: "testcases: [a]\nsolver: z3\n", expectErr: "unknown solver"},
		{description: "negative concurrency", yaml: "testcases: [a]\nconcurrency: -1\n", expectErr: "concurrency"},
		{description: "duplicate testcase", yaml: "testcases: [a, a]\n", expectErr: "listed twice"},
		{description: "unknown key", yaml: "testcases: [a]\nsolvr: bruteforce\n", expectErr: "solvr"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg, err := Parse([]byte(testCase.yaml))
			if testCase.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testCase.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect(), cfg)
		})
	}
}

func TestLoad_RelativeDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("testcases_dir: cases\ntestcases: [x]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cases"), cfg.TestcasesDir)
	assert.Equal(t, filepath.Join(dir, "cases", "x.txt"), cfg.Path("x"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
