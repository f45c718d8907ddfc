package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/viant/setcover/report"
)

// SQLiteStore is the SQLite-backed Store. The database must have been opened
// through engine.Open so that fmt_runtime is available to Tabulate.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a ledger over db, ensuring its schema exists.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("ledger: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Begin inserts a new run with a random identifier.
func (s *SQLiteStore) Begin(ctx context.Context, label string) (string, error) {
	if label == "" {
		return "", fmt.Errorf("ledger: Begin called with empty label")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO msc_run(id, label, started_at) VALUES(?, ?, ?)`,
		id, label, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", err
	}
	return id, nil
}

// Record stores finished results, replacing earlier results of the same
// testcase in the run.
func (s *SQLiteStore) Record(ctx context.Context, runID string, outputs ...report.TestcaseOutput) error {
	if len(outputs) == 0 {
		return nil
	}
	return s.insert(ctx, runID, len(outputs), func(i int) ([]interface{}, error) {
		out := outputs[i]
		indices, err := EncodeIndices(out.SetIndices)
		if err != nil {
			return nil, err
		}
		return []interface{}{runID, out.Name, out.Runtime, out.SetCount, indices}, nil
	})
}

// RecordUnfinished stores testcases with a NULL runtime.
func (s *SQLiteStore) RecordUnfinished(ctx context.Context, runID string, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	return s.insert(ctx, runID, len(names), func(i int) ([]interface{}, error) {
		return []interface{}{runID, names[i], nil, nil, nil}, nil
	})
}

func (s *SQLiteStore) insert(ctx context.Context, runID string, n int, row func(i int) ([]interface{}, error)) error {
	if runID == "" {
		return fmt.Errorf("ledger: empty run id")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// REPLACE deletes the old row, so a re-recorded testcase moves to the end.
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO msc_result(run_id, name, runtime, set_count, set_indices) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		args, err := row(i)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Summary rebuilds a run summary; results with a NULL runtime are listed as
// unfinished.
func (s *SQLiteStore) Summary(ctx context.Context, runID string) (*report.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name, runtime, set_count, set_indices FROM msc_result WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &report.Summary{}
	for rows.Next() {
		var (
			name     string
			runtime  sql.NullFloat64
			setCount sql.NullInt64
			blob     []byte
		)
		if err := rows.Scan(&name, &runtime, &setCount, &blob); err != nil {
			return nil, err
		}
		if !runtime.Valid {
			summary.MarkUnfinished(name)
			continue
		}
		indices, err := DecodeIndices(blob)
		if err != nil {
			return nil, err
		}
		summary.Add(report.TestcaseOutput{Name: name, Runtime: runtime.Float64, SetCount: int(setCount.Int64), SetIndices: indices})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summary, nil
}

// ImportSummary records an existing summary, for example one produced by a
// reference solver, as a new run.
func (s *SQLiteStore) ImportSummary(ctx context.Context, label string, summary *report.Summary) (string, error) {
	runID, err := s.Begin(ctx, label)
	if err != nil {
		return "", err
	}
	if err := s.Record(ctx, runID, summary.TestcaseOutputs...); err != nil {
		return "", err
	}
	if err := s.RecordUnfinished(ctx, runID, summary.Unfinished...); err != nil {
		return "", err
	}
	return runID, nil
}

// Tabulate renders the runs as a markdown table with one runtime column per
// run, headed by the run label, and a Total row. Rows follow the record
// order of the first run; a testcase absent from a run renders as "-".
// A run with an unfinished testcase totals "inf".
func (s *SQLiteStore) Tabulate(ctx context.Context, runIDs ...string) (string, error) {
	if len(runIDs) == 0 {
		return "", fmt.Errorf("ledger: Tabulate needs at least one run")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	headers := []string{"Test Case"}
	var names []string
	cells := make([]map[string]string, len(runIDs))
	totals := make([]string, len(runIDs))
	for i, runID := range runIDs {
		var label string
		if err := s.db.QueryRowContext(ctx, `SELECT label FROM msc_run WHERE id = ?`, runID).Scan(&label); err != nil {
			if err == sql.ErrNoRows {
				return "", fmt.Errorf("ledger: unknown run %s", runID)
			}
			return "", err
		}
		headers = append(headers, label)

		rows, err := s.db.QueryContext(ctx, `SELECT name, fmt_runtime(runtime) FROM msc_result WHERE run_id = ? ORDER BY rowid`, runID)
		if err != nil {
			return "", err
		}
		cells[i] = map[string]string{}
		for rows.Next() {
			var name, text string
			if err := rows.Scan(&name, &text); err != nil {
				rows.Close()
				return "", err
			}
			cells[i][name] = text
			if i == 0 {
				names = append(names, name)
			}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return "", err
		}

		err = s.db.QueryRowContext(ctx, `SELECT fmt_runtime(CASE WHEN COUNT(*) > COUNT(runtime) THEN NULL ELSE COALESCE(SUM(runtime), 0.0) END)
FROM msc_result WHERE run_id = ?`, runID).Scan(&totals[i])
		if err != nil {
			return "", err
		}
	}

	table := make([][]string, 0, len(names)+2)
	table = append(table, headers)
	for _, name := range names {
		row := []string{name}
		for i := range runIDs {
			text, ok := cells[i][name]
			if !ok {
				text = "-"
			}
			row = append(row, text)
		}
		table = append(table, row)
	}
	table = append(table, append([]string{"Total"}, totals...))
	return markdown(table), nil
}

// markdown renders rows (the first being the header) with every cell padded
// to its column's widest value.
func markdown(rows [][]string) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	writeRow(rows[0])
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

var _ Store = (*SQLiteStore)(nil)
