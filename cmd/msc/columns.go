package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/setcover/ledger"
	"github.com/viant/setcover/report"
)

// column is a labelled source of testcase results.
type column struct {
	label string
	path  string
}

func parseColumns(values []string) ([]column, error) {
	columns := make([]column, 0, len(values))
	for _, v := range values {
		label, path, ok := strings.Cut(v, "=")
		if !ok || label == "" || path == "" {
			return nil, fmt.Errorf("column %q: want label=path", v)
		}
		columns = append(columns, column{label: label, path: path})
	}
	return columns, nil
}

// loadSummary reads a JSON summary, or a directory of <name>.txt reports.
func loadSummary(path string) (*report.Summary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return report.LoadTextDir(path)
	}
	return report.LoadSummary(path)
}

// importColumns records every column as a ledger run and returns the run
// identifiers with the loaded summaries.
func importColumns(ctx context.Context, store *ledger.SQLiteStore, columns []column) ([]string, []*report.Summary, error) {
	runIDs := make([]string, 0, len(columns))
	summaries := make([]*report.Summary, 0, len(columns))
	for _, c := range columns {
		summary, err := loadSummary(c.path)
		if err != nil {
			return nil, nil, fmt.Errorf("column %s: %w", c.label, err)
		}
		runID, err := store.ImportSummary(ctx, c.label, summary)
		if err != nil {
			return nil, nil, err
		}
		runIDs = append(runIDs, runID)
		summaries = append(summaries, summary)
	}
	return runIDs, summaries, nil
}
