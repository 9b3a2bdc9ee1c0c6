// Package archive keeps every executed command line in a SQLite database.
// Unlike the history of a session, the archive is never truncated.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT NOT NULL,
	line    TEXT NOT NULL,
	created INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_session ON records(session);
`

type Record struct {
	ID      int64
	Session string
	Line    string
	When    time.Time
}

type Archive struct {
	db *sql.DB
}

func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) Record(ctx context.Context, session, line string) error {
	const q = `INSERT INTO records (session, line, created) VALUES (?, ?, ?)`
	if _, err := a.db.ExecContext(ctx, q, session, line, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to archive record: %w", err)
	}
	return nil
}

// Recent returns the last n records, oldest first. A non positive n returns
// every record.
func (a *Archive) Recent(ctx context.Context, n int) ([]Record, error) {
	q := `SELECT id, session, line, created FROM records ORDER BY id DESC`
	args := []any{}
	if n > 0 {
		q += ` LIMIT ?`
		args = append(args, n)
	}
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var list []Record
	for rows.Next() {
		var (
			r  Record
			ms int64
		)
		if err := rows.Scan(&r.ID, &r.Session, &r.Line, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan archive record: %w", err)
		}
		r.When = time.UnixMilli(ms)
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}
