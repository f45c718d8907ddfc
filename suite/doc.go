// Package suite runs a solver over a batch of named testcases described by
// a config.Config. Each testcase is parsed, searched (only the search is
// timed), verified against its universe and recorded in the ledger; the
// batch yields the JSON summary shared with reference solvers.
package suite
