package repository

import (
	"context"

	"cdms/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record.
	// The caller provides required fields (ID, CreatedAt, ...) according to the
	// database schema defaults. Returns the stored document.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, with the uploader projection
	// populated when the uploader still exists.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents, newest first, and the total
	// row count. Each item carries the uploader projection.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Update applies a partial merge of title/description/department and
	// returns the updated row. Returns sql.ErrNoRows when the id is unknown.
	Update(ctx context.Context, id string, patch DocumentPatch) (*model.Document, error)

	// Delete removes a document by ID. Returns sql.ErrNoRows when the id is
	// unknown, so callers can surface a deterministic not-found.
	Delete(ctx context.Context, id string) error
}

// DocumentPatch carries the updatable metadata fields. Nil means "leave
// unchanged"; file-related fields are deliberately absent (no file
// replacement on update).
type DocumentPatch struct {
	Title       *string
	Description *string
	Department  *model.Department
}
