package engine

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver, with
// the report functions registered.
//
// For file-based databases, pass a path like "./ledger.sqlite". For
// in-memory databases, pass ":memory:"; the pool is then limited to a single
// connection since every connection would otherwise see its own database.
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterReportFunctions(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
