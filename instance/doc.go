// Package instance holds the data a minimum set cover search operates on:
// entries (candidate subsets with a stable 1-based identity, an immutable
// original membership and a shrinking active membership), the universe of
// elements, and the plain-text instance format used to exchange problems
// with generators and reference solvers.
package instance
