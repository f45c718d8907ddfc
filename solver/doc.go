// Package solver defines the contract shared by minimum set cover solvers:
// given a collection of entries and the elements still uncovered, return a
// smallest sub-collection (by entry count) whose active memberships cover
// every uncovered element. Implementations include an exact branch-and-bound
// search and an exhaustive baseline for small instances.
package solver
