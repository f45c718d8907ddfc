package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/setcover/compare"
	"github.com/viant/setcover/config"
	"github.com/viant/setcover/engine"
	"github.com/viant/setcover/ledger"
	"github.com/viant/setcover/metrics"
	"github.com/viant/setcover/suite"
)

type benchOptions struct {
	config     string
	summary    string
	ledger     string
	references []string
}

func newBenchCmd() *cobra.Command {
	opts := &benchOptions{}
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve a suite of testcases and tabulate the runtimes",
		Long: `The msc bench command solves every testcase listed in a suite
        configuration, writes the JSON summary and prints a markdown table of
        runtimes next to any reference summaries.

        $ msc bench --config suite.yaml --reference z3=../z3/output.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchFunc(cmd, opts)
		},
	}

	benchCmd.Flags().StringVarP(&opts.config, "config", "c", "", "Suite configuration file.")
	if err := benchCmd.MarkFlagRequired("config"); err != nil {
		log.Fatalf("Failed to mark `config` flag for `bench` subcommand as required")
	}
	benchCmd.Flags().StringVar(&opts.summary, "summary", "", "Summary output path, overriding the configuration.")
	benchCmd.Flags().StringVar(&opts.ledger, "ledger", "", "Ledger database, overriding the configuration.")
	benchCmd.Flags().StringArrayVar(&opts.references, "reference", nil, "Reference results as label=path (JSON summary or directory of text reports).")
	return benchCmd
}

func benchFunc(cmd *cobra.Command, opts *benchOptions) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("summary") {
		cfg.Summary = opts.summary
	}
	if cmd.Flags().Changed("ledger") {
		cfg.Ledger = opts.ledger
	}
	references, err := parseColumns(opts.references)
	if err != nil {
		return err
	}

	db, err := engine.Open(cfg.Ledger)
	if err != nil {
		return err
	}
	defer db.Close()
	store, err := ledger.NewSQLiteStore(db)
	if err != nil {
		return err
	}

	runner := &suite.Runner{Logger: log.StandardLogger(), Ledger: store}
	if cfg.MetricsFile != "" {
		runner.Metrics = metrics.New()
	}
	ctx := cmd.Context()
	result, err := runner.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.Summary != "" {
		if err := result.Summary.Save(cfg.Summary); err != nil {
			return err
		}
		log.WithField("path", cfg.Summary).Info("summary written")
	}
	if runner.Metrics != nil {
		if err := runner.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	refIDs, refSummaries, err := importColumns(ctx, store, references)
	if err != nil {
		return err
	}
	for i, ref := range refSummaries {
		comparison := compare.Summaries(result.Summary, ref)
		for _, r := range comparison.Results {
			entry := log.WithField("reference", references[i].label)
			if r.SizeMatch {
				entry.Info(r.String())
			} else {
				entry.Warn(r.String())
			}
		}
	}

	table, err := store.Tabulate(ctx, append([]string{result.RunID}, refIDs...)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), table)
	return err
}
