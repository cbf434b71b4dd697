package postgres

import (
	"context"
	"database/sql"

	"filesmanager/internal/model"
	"filesmanager/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

const fileColumns = `id, user_id, name, type, is_public, parent_id, local_path`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (*model.File, error) {
	var (
		f         model.File
		localPath sql.NullString
	)
	if err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.IsPublic,
		&f.ParentID,
		&localPath,
	); err != nil {
		return nil, err
	}
	f.LocalPath = localPath.String
	return &f, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, f *model.File) (*model.File, error) {
	const q = `
		INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + fileColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.UserID,
		f.Name,
		string(f.Type),
		f.IsPublic,
		f.ParentID,
		nullable(f.LocalPath),
	)
	return scanFile(row)
}

// FindByID fetches a single file by its id.
func (r *FilePostgres) FindByID(ctx context.Context, id string) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return scanFile(r.db.QueryRowContext(ctx, q, id))
}

// FindByIDForOwner fetches a file by id scoped to its owner.
func (r *FilePostgres) FindByIDForOwner(ctx context.Context, id, userID string) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID))
}

// ListByParent returns one page of a user's files under parent, ordered by insertion.
func (r *FilePostgres) ListByParent(ctx context.Context, userID string, parent model.ParentRef, pq repository.PageQuery) ([]model.File, error) {
	const (
		qRoot = `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = $1 AND parent_id IS NULL
			ORDER BY seq
			LIMIT $2 OFFSET $3`
		qFolder = `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = $1 AND parent_id = $2
			ORDER BY seq
			LIMIT $3 OFFSET $4`
	)

	var (
		rows *sql.Rows
		err  error
	)
	if parent.IsRoot() {
		rows, err = r.db.QueryContext(ctx, qRoot, userID, pq.Limit, pq.Offset)
	} else {
		rows, err = r.db.QueryContext(ctx, qFolder, userID, parent.ID(), pq.Limit, pq.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetPublic flips is_public on a file owned by userID. It returns sql.ErrNoRows when
// the file is missing or belongs to someone else.
func (r *FilePostgres) SetPublic(ctx context.Context, id, userID string, public bool) (*model.File, error) {
	const q = `
		UPDATE files SET is_public = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + fileColumns
	return scanFile(r.db.QueryRowContext(ctx, q, id, userID, public))
}

// Count returns the total number of file rows.
func (r *FilePostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
