package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/setcover/config"
	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/metrics"
	"github.com/viant/setcover/report"
	"github.com/viant/setcover/solver"
	"github.com/viant/setcover/suite"
)

type solveOptions struct {
	solver      string
	memo        bool
	parallel    int
	timeout     time.Duration
	summary     string
	metricsFile string
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	solveCmd := &cobra.Command{
		Use:   "solve <instance-file>",
		Short: "Solve one instance and print the cover report",
		Long: `The msc solve command reads an instance file, finds a minimum set cover
        and prints the report to stdout:

        Found minimum set cover containing <K> sets in <T> seconds.
        Included sets: [<id>, ...]
        Set #<id>: [<member>, ...]

        When --timeout expires the report reads "did not finish".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveFunc(cmd, args[0], opts)
		},
	}

	solveCmd.Flags().StringVar(&opts.solver, "solver", config.SolverBranchBound, "Search to use. One of: [branchbound, bruteforce]")
	solveCmd.Flags().BoolVar(&opts.memo, "memo", false, "Cache subproblem results")
	solveCmd.Flags().IntVar(&opts.parallel, "parallel", 1, "Goroutines evaluating branches concurrently")
	solveCmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abandon the search after this long (0 disables)")
	solveCmd.Flags().StringVar(&opts.summary, "summary", "", "Also write a JSON summary to this path")
	solveCmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write search metrics in textfile format to this path")
	return solveCmd
}

func solveFunc(cmd *cobra.Command, path string, opts *solveOptions) error {
	inst, err := instance.Load(path)
	if err != nil {
		return err
	}
	s, err := suite.NewSolver(suite.Options{
		Solver:      opts.solver,
		Memoize:     opts.memo,
		Parallelism: opts.parallel,
		Logger:      log.StandardLogger(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.WithFields(log.Fields{"instance": name, "elements": inst.ElementCount, "sets": len(inst.Entries)}).Debug("solving")

	var m *metrics.Metrics
	if opts.metricsFile != "" {
		m = metrics.New()
	}
	summary := &report.Summary{}
	rep, err := suite.Solve(ctx, s, inst)
	switch {
	case err == nil:
		if _, err := rep.WriteTo(cmd.OutOrStdout()); err != nil {
			return err
		}
		summary.Add(rep.Output(name))
		if m != nil {
			stats, _ := suite.StatsOf(s)
			m.Observe(name, stats, rep.Elapsed, rep.Size())
		}
	case errors.Is(err, solver.ErrTimeout):
		fmt.Fprintln(cmd.OutOrStdout(), report.DidNotFinish)
		summary.MarkUnfinished(name)
		if m != nil {
			m.ObserveUnfinished(name)
		}
	default:
		return err
	}

	if opts.summary != "" {
		if serr := summary.Save(opts.summary); serr != nil {
			return serr
		}
	}
	if m != nil {
		if werr := m.WriteTextfile(opts.metricsFile); werr != nil {
			return werr
		}
	}
	return err
}
