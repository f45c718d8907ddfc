package ledger

import (
	"database/sql"
)

const runSchema = `
CREATE TABLE IF NOT EXISTS msc_run (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    started_at TEXT NOT NULL
);
`

// runtime is NULL for testcases that did not finish.
const resultSchema = `
CREATE TABLE IF NOT EXISTS msc_result (
    run_id TEXT NOT NULL REFERENCES msc_run(id),
    name TEXT NOT NULL,
    runtime REAL,
    set_count INTEGER,
    set_indices BLOB,
    PRIMARY KEY (run_id, name)
);
`

// EnsureSchema creates the ledger tables in db if they do not already exist.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range []string{runSchema, resultSchema} {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
