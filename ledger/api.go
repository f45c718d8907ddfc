package ledger

import (
	"context"

	"github.com/viant/setcover/report"
)

// Store defines the run ledger API.
type Store interface {
	// Begin opens a new run labelled label and returns its identifier.
	Begin(ctx context.Context, label string) (string, error)

	// Record stores finished testcase results for a run.
	Record(ctx context.Context, runID string, outputs ...report.TestcaseOutput) error

	// RecordUnfinished stores testcases that did not finish for a run.
	RecordUnfinished(ctx context.Context, runID string, names ...string) error

	// Summary rebuilds the summary of a run in record order.
	Summary(ctx context.Context, runID string) (*report.Summary, error)
}
