package suite

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/viant/setcover/config"
	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/ledger"
	"github.com/viant/setcover/metrics"
	"github.com/viant/setcover/report"
	"github.com/viant/setcover/solver"
)

// Runner solves the testcases of a suite. Ledger and Metrics are optional.
type Runner struct {
	Logger  logrus.FieldLogger
	Ledger  ledger.Store
	Metrics *metrics.Metrics
	// NewSolver builds one solver per testcase; defaults to NewSolver.
	NewSolver func(Options) (solver.Solver, error)
}

// Result is the outcome of one Run.
type Result struct {
	Summary *report.Summary
	// RunID identifies the run in the ledger; empty without a ledger.
	RunID string
}

type outcome struct {
	output   report.TestcaseOutput
	finished bool
}

// Run solves every testcase of cfg, up to cfg.Concurrency at once. A
// testcase that exceeds cfg.Timeout is reported as unfinished; any other
// failure (malformed instance, unsatisfiable instance, invalid cover)
// aborts the run.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger()
	opts := OptionsOf(cfg, logger)
	if _, err := r.newSolver(opts); err != nil {
		return nil, err
	}

	outcomes := make([]outcome, len(cfg.Testcases))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, name := range cfg.Testcases {
		g.Go(func() error {
			out, finished, err := r.solveTestcase(gctx, cfg, opts, name)
			if err != nil {
				return pkgerrors.Wrapf(err, "suite: testcase %s", name)
			}
			outcomes[i] = outcome{output: out, finished: finished}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &report.Summary{}
	for i, o := range outcomes {
		if !o.finished {
			summary.MarkUnfinished(cfg.Testcases[i])
			continue
		}
		summary.Add(o.output)
	}
	result := &Result{Summary: summary}
	if r.Ledger != nil {
		runID, err := r.record(ctx, cfg.Solver, summary)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "suite: record run")
		}
		result.RunID = runID
	}
	logger.WithFields(logrus.Fields{
		"testcases":  len(summary.TestcaseOutputs),
		"unfinished": len(summary.Unfinished),
		"total":      report.FormatSeconds(secondsToDuration(summary.TotalRuntime)),
		"run":        result.RunID,
	}).Info("suite finished")
	return result, nil
}

func (r *Runner) solveTestcase(ctx context.Context, cfg *config.Config, opts Options, name string) (report.TestcaseOutput, bool, error) {
	inst, err := instance.Load(cfg.Path(name))
	if err != nil {
		return report.TestcaseOutput{}, false, err
	}
	s, err := r.newSolver(opts)
	if err != nil {
		return report.TestcaseOutput{}, false, err
	}
	searchCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger := r.logger().WithField("testcase", name)
	rep, err := Solve(searchCtx, s, inst)
	switch {
	case err == nil:
	case errors.Is(err, solver.ErrTimeout) && ctx.Err() == nil:
		logger.WithField("timeout", cfg.Timeout).Warn("did not finish")
		if r.Metrics != nil {
			r.Metrics.ObserveUnfinished(name)
		}
		return report.TestcaseOutput{Name: name}, false, nil
	default:
		return report.TestcaseOutput{}, false, err
	}

	if r.Metrics != nil {
		stats, _ := StatsOf(s)
		r.Metrics.Observe(name, stats, rep.Elapsed, rep.Size())
	}
	logger.WithFields(logrus.Fields{
		"sets":    rep.Size(),
		"runtime": report.FormatSeconds(rep.Elapsed),
	}).Info("solved")
	return rep.Output(name), true, nil
}

func (r *Runner) record(ctx context.Context, label string, summary *report.Summary) (string, error) {
	runID, err := r.Ledger.Begin(ctx, label)
	if err != nil {
		return "", err
	}
	if err := r.Ledger.Record(ctx, runID, summary.TestcaseOutputs...); err != nil {
		return "", err
	}
	if err := r.Ledger.RecordUnfinished(ctx, runID, summary.Unfinished...); err != nil {
		return "", err
	}
	return runID, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func (r *Runner) newSolver(opts Options) (solver.Solver, error) {
	if r.NewSolver != nil {
		return r.NewSolver(opts)
	}
	return NewSolver(opts)
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}
