// Package branchbound implements the exact minimum set cover search.
//
// Every call applies, in order: termination, dominance elimination (an entry
// whose active membership is a strict subset of another's is dropped),
// forced selection (an entry that is the only holder of some uncovered
// element is taken), and finally branching on the entry with the most active
// members, keeping the smaller of the exclude and include results and
// preferring exclude on ties.
//
// Optional extensions: a subproblem cache, parallel evaluation of the exclude
// branch, and deadline checks through the context. None of them changes the
// reported cover.
package branchbound
