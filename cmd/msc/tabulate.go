package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/setcover/engine"
	"github.com/viant/setcover/ledger"
)

type tabulateOptions struct {
	columns []string
	ledger  string
}

func newTabulateCmd() *cobra.Command {
	opts := &tabulateOptions{}
	tabulateCmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Render result summaries as a markdown runtime table",
		Long: `The msc tabulate command prints one runtime column per --column, in
        the order given. Rows follow the testcases of the first column.

        $ msc tabulate --column C=../c/output --column Rust=../rust/output.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tabulateFunc(cmd, opts)
		},
	}

	tabulateCmd.Flags().StringArrayVar(&opts.columns, "column", nil, "Column as label=path (JSON summary or directory of text reports).")
	if err := tabulateCmd.MarkFlagRequired("column"); err != nil {
		log.Fatalf("Failed to mark `column` flag for `tabulate` subcommand as required")
	}
	tabulateCmd.Flags().StringVar(&opts.ledger, "ledger", ":memory:", "Ledger database to record the columns in.")
	return tabulateCmd
}

func tabulateFunc(cmd *cobra.Command, opts *tabulateOptions) error {
	columns, err := parseColumns(opts.columns)
	if err != nil {
		return err
	}
	db, err := engine.Open(opts.ledger)
	if err != nil {
		return err
	}
	defer db.Close()
	store, err := ledger.NewSQLiteStore(db)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	runIDs, _, err := importColumns(ctx, store, columns)
	if err != nil {
		return err
	}
	table, err := store.Tabulate(ctx, runIDs...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), table)
	return err
}
