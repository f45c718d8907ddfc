package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Solver names accepted in Config.Solver.
const (
	SolverBranchBound = "branchbound"
	SolverBruteForce  = "bruteforce"
)

// Config describes a benchmark suite.
type Config struct {
	// TestcasesDir holds <name><Extension> instance files. A relative path
	// is resolved against the directory of the YAML file.
	TestcasesDir string   `yaml:"testcases_dir"`
	Extension    string   `yaml:"extension"`
	Testcases    []string `yaml:"testcases"`

	Solver      string `yaml:"solver"`
	Memoize     bool   `yaml:"memoize"`
	Parallelism int    `yaml:"parallelism"`
	// Concurrency is the number of testcases solved at once.
	Concurrency int `yaml:"concurrency"`
	// Timeout bounds each testcase; zero disables it.
	Timeout time.Duration `yaml:"timeout"`

	Summary     string `yaml:"summary"`
	Ledger      string `yaml:"ledger"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// Default returns a configuration with every field but Testcases set.
func Default() *Config {
	return &Config{
		TestcasesDir: "testcases",
		Extension:    ".txt",
		Solver:       SolverBranchBound,
		Parallelism:  1,
		Concurrency:  1,
		Summary:      "output.json",
		Ledger:       ":memory:",
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	if !filepath.IsAbs(cfg.TestcasesDir) {
		cfg.TestcasesDir = filepath.Join(filepath.Dir(path), cfg.TestcasesDir)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Solver {
	case SolverBranchBound, SolverBruteForce:
	default:
		return fmt.Errorf("config: unknown solver %q", c.Solver)
	}
	if len(c.Testcases) == 0 {
		return fmt.Errorf("config: no testcases listed")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config: parallelism must not be negative, got %d", c.Parallelism)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config: concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %v", c.Timeout)
	}
	seen := map[string]bool{}
	for _, name := range c.Testcases {
		if name == "" {
			return fmt.Errorf("config: empty testcase name")
		}
		if seen[name] {
			return fmt.Errorf("config: testcase %q listed twice", name)
		}
		seen[name] = true
	}
	return nil
}

// Path returns the instance file of the named testcase.
func (c *Config) Path(name string) string {
	return filepath.Join(c.TestcasesDir, name+c.Extension)
}
