// Package ledger records solver runs in SQLite. A run is one pass of a
// solver over a batch of named testcases; every testcase result keeps its
// runtime (NULL when the testcase did not finish) and the chosen 0-based
// set indices. Runs from different solvers, including imported reference
// summaries, can be rendered side by side as a markdown table.
package ledger
