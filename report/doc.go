// Package report assembles the result of a minimum set cover search. It
// verifies that a cover really covers the universe, renders the plain-text
// report read by external tabulators, and converts between that report and
// the JSON summary shared with reference solvers. Identities are 1-based in
// the text report and 0-based in the summary.
package report
