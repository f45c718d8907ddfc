// Package config loads the YAML description of a benchmark suite: where the
// testcases live, which ones to run, and how the solver is configured.
package config
