package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/setcover/compare"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <ours> <reference>",
		Short: "Compare two result summaries testcase by testcase",
		Long: `The msc compare command matches the testcases of two summaries (JSON
        files or directories of text reports) and prints one line per testcase.
        It fails when any minimum cover size differs.`,
		Args: cobra.ExactArgs(2),
		RunE: compareFunc,
	}
}

func compareFunc(cmd *cobra.Command, args []string) error {
	ours, err := loadSummary(args[0])
	if err != nil {
		return err
	}
	reference, err := loadSummary(args[1])
	if err != nil {
		return err
	}
	comparison := compare.Summaries(ours, reference)
	for _, r := range comparison.Results {
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
	}
	if len(comparison.MissingInReference) > 0 {
		log.WithField("testcases", comparison.MissingInReference).Warn("missing in reference")
	}
	if len(comparison.MissingInOurs) > 0 {
		log.WithField("testcases", comparison.MissingInOurs).Warn("missing in ours")
	}
	if len(comparison.Unfinished) > 0 {
		log.WithField("testcases", comparison.Unfinished).Warn("not compared, unfinished")
	}
	if mismatches := comparison.Mismatches(); len(mismatches) > 0 {
		return fmt.Errorf("%d of %d testcases disagree on the minimum cover size", len(mismatches), len(comparison.Results))
	}
	return nil
}
