package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/viant/setcover/config"
	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/report"
	"github.com/viant/setcover/solver"
	"github.com/viant/setcover/solver/branchbound"
	"github.com/viant/setcover/solver/bruteforce"
)

// Options selects and tunes a solver.
type Options struct {
	Solver      string
	Memoize     bool
	Parallelism int
	Logger      logrus.FieldLogger
}

// OptionsOf extracts the solver settings of cfg.
func OptionsOf(cfg *config.Config, logger logrus.FieldLogger) Options {
	return Options{Solver: cfg.Solver, Memoize: cfg.Memoize, Parallelism: cfg.Parallelism, Logger: logger}
}

// NewSolver builds the solver named by opts.Solver.
func NewSolver(opts Options) (solver.Solver, error) {
	switch opts.Solver {
	case "", config.SolverBranchBound:
		return branchbound.New(
			branchbound.WithMemo(opts.Memoize),
			branchbound.WithParallelism(opts.Parallelism),
			branchbound.WithLogger(opts.Logger),
		), nil
	case config.SolverBruteForce:
		return bruteforce.New(0), nil
	default:
		return nil, fmt.Errorf("suite: unknown solver %q", opts.Solver)
	}
}

// Solve searches inst with s and assembles the verified report. Elapsed
// time covers the search only.
func Solve(ctx context.Context, s solver.Solver, inst *instance.Instance) (*report.Report, error) {
	started := time.Now()
	cover, err := s.Solve(ctx, inst.Collection(), inst.Uncovered())
	elapsed := time.Since(started)
	if err != nil {
		return nil, err
	}
	return report.Assemble(inst, cover, elapsed)
}

// StatsOf returns the search statistics of s when it keeps any.
func StatsOf(s solver.Solver) (branchbound.Stats, bool) {
	if withStats, ok := s.(interface{ Stats() branchbound.Stats }); ok {
		return withStats.Stats(), true
	}
	return branchbound.Stats{}, false
}
