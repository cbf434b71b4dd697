package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// defaultLease is used when no lease is configured.
const defaultLease = 5 * time.Minute

// PostgresQueue stores jobs in the thumbnail_jobs table. Workers lease rows with
// FOR UPDATE SKIP LOCKED so several of them can poll the same table. A row left
// running for longer than the lease (worker crash, lost Complete/Fail) is claimed again.
type PostgresQueue struct {
	db    *sql.DB
	lease time.Duration
}

func NewPostgresQueue(db *sql.DB, lease time.Duration) *PostgresQueue {
	if lease <= 0 {
		lease = defaultLease
	}
	return &PostgresQueue{db: db, lease: lease}
}

var (
	_ Enqueuer = (*PostgresQueue)(nil)
	_ Consumer = (*PostgresQueue)(nil)
)

func (q *PostgresQueue) Enqueue(ctx context.Context, job ThumbnailJob) error {
	const stmt = `INSERT INTO thumbnail_jobs (user_id, file_id) VALUES ($1, $2)`
	if _, err := q.db.ExecContext(ctx, stmt, job.UserID, job.FileID); err != nil {
		return fmt.Errorf("enqueue thumbnail job: %w", err)
	}
	return nil
}

// Claim leases the oldest pending or lease-expired job and marks it running.
// It returns nil, nil when the queue is empty.
func (q *PostgresQueue) Claim(ctx context.Context) (*ClaimedJob, error) {
	const stmt = `
		UPDATE thumbnail_jobs SET status = 'running', attempts = attempts + 1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM thumbnail_jobs
			WHERE status = 'pending'
				OR (status = 'running' AND updated_at < NOW() - make_interval(secs => $1))
			ORDER BY id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id, user_id, file_id, attempts`

	var j ClaimedJob
	err := q.db.QueryRowContext(ctx, stmt, q.lease.Seconds()).Scan(&j.ID, &j.UserID, &j.FileID, &j.Attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("claim thumbnail job: %w", err)
	}
	return &j, nil
}

func (q *PostgresQueue) Complete(ctx context.Context, id int64) error {
	const stmt = `UPDATE thumbnail_jobs SET status = 'done', last_error = NULL, updated_at = NOW() WHERE id = $1`
	if _, err := q.db.ExecContext(ctx, stmt, id); err != nil {
		return fmt.Errorf("complete thumbnail job %d: %w", id, err)
	}
	return nil
}

// Fail records cause and puts the job back to pending, or marks it failed once
// it has been attempted maxAttempts times.
func (q *PostgresQueue) Fail(ctx context.Context, id int64, cause error, maxAttempts int) error {
	const stmt = `
		UPDATE thumbnail_jobs
		SET status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'pending' END,
			last_error = $2,
			updated_at = NOW()
		WHERE id = $1`

	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if _, err := q.db.ExecContext(ctx, stmt, id, msg, maxAttempts); err != nil {
		return fmt.Errorf("fail thumbnail job %d: %w", id, err)
	}
	return nil
}
