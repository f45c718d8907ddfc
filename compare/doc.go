// Package compare matches the testcases of two summaries, typically this
// module's solver against a reference solver, and reports whether they agree
// on the minimum cover size, how similar the chosen covers are and how the
// runtimes relate.
package compare
