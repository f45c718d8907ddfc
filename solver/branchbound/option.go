package branchbound

import "github.com/sirupsen/logrus"

// Option configures a Solver.
type Option func(s *Solver)

// WithMemo enables caching of subproblem results.
func WithMemo(enabled bool) Option {
	return func(s *Solver) { s.memo = enabled }
}

// WithParallelism lets up to n goroutines (including the caller) evaluate
// branches concurrently. Values below 2 keep the search sequential.
func WithParallelism(n int) Option {
	return func(s *Solver) { s.parallelism = n }
}

// WithParallelThreshold sets the minimum number of live entries a branch
// needs before its exclude side is handed to another goroutine.
func WithParallelThreshold(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.parallelThreshold = n
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}
