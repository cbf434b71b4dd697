package repository

import (
	"context"

	"filesmanager/internal/model"
)

// FileRepository defines data access for file records.
// No business logic here: each operation is a single atomic statement.
type FileRepository interface {
	// Create inserts a new file record. The caller supplies the id.
	Create(ctx context.Context, f *model.File) (*model.File, error)

	// FindByID returns a file by its id regardless of owner.
	FindByID(ctx context.Context, id string) (*model.File, error)

	// FindByIDForOwner returns a file only if it belongs to userID.
	FindByIDForOwner(ctx context.Context, id, userID string) (*model.File, error)

	// ListByParent returns userID's files under parent in insertion order.
	ListByParent(ctx context.Context, userID string, parent model.ParentRef, pq PageQuery) ([]model.File, error)

	// SetPublic updates the visibility of a file owned by userID and returns the updated record.
	SetPublic(ctx context.Context, id, userID string, public bool) (*model.File, error)

	// Count returns the number of file records.
	Count(ctx context.Context) (int, error)
}
