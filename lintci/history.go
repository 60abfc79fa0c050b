package lintci

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// runRecord is one finished lint run in the history database.
type runRecord struct {
	Commit   string
	Event    string
	State    string
	Errors   int
	Warnings int
	Created  time.Time
}

// historyStore records lint runs in a local SQLite database.
type historyStore struct {
	db *sql.DB
}

func openHistory(f string) (*historyStore, error) {
	if f == "" {
		f = ":memory:"
	}

	const driver = "sqlite"
	db, err := sql.Open(driver, f)
	if err != nil {
		return nil, err
	}

	h := &historyStore{db: db}
	if err := h.create(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *historyStore) create(ctx context.Context) error {
	_, err := h.db.ExecContext(ctx, `
		create table if not exists lint_runs (
			id integer primary key autoincrement,
			commit_sha text not null,
			event text not null,
			state text not null,
			errors integer not null,
			warnings integer not null,
			created integer not null
		)`)
	return err
}

func (h *historyStore) record(ctx context.Context, r *runRecord) error {
	created := r.Created
	if created.IsZero() {
		created = time.Now()
	}
	_, err := h.db.ExecContext(ctx, `
		insert into lint_runs
			(commit_sha, event, state, errors, warnings, created)
			values (?, ?, ?, ?, ?, ?)`,
		r.Commit, r.Event, r.State, r.Errors, r.Warnings,
		created.Unix(),
	)
	return err
}

// recent returns the most recent runs, newest first.
func (h *historyStore) recent(ctx context.Context, n int) (
	[]*runRecord, error,
) {
	rows, err := h.db.QueryContext(ctx, `
		select commit_sha, event, state, errors, warnings, created
		from lint_runs order by id desc limit ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*runRecord
	for rows.Next() {
		r := new(runRecord)
		var created int64
		if err := rows.Scan(
			&r.Commit, &r.Event, &r.State,
			&r.Errors, &r.Warnings, &created,
		); err != nil {
			return nil, err
		}
		r.Created = time.Unix(created, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (h *historyStore) close() error {
	return h.db.Close()
}
