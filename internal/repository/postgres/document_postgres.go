package postgres

import (
	"context"
	"database/sql"

	"cdms/internal/model"
	"cdms/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `d.id, d.title, d.description, d.department, d.file_url, d.filename,
	d.storage_path, d.size, d.content_type, d.uploaded_by, d.created_at`

// scanDocument reads one joined row into a Document, attaching the uploader
// projection when the weak reference still resolves.
func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var (
		d             model.Document
		description   sql.NullString
		filename      sql.NullString
		uploadedBy    sql.NullString
		uploaderEmail sql.NullString
		uploaderDept  sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&description,
		&d.Department,
		&d.FileURL,
		&filename,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&uploadedBy,
		&d.CreatedAt,
		&uploaderEmail,
		&uploaderDept,
	); err != nil {
		return nil, err
	}
	d.Description = description.String
	d.Filename = filename.String
	if uploadedBy.Valid {
		d.UploadedBy = &uploadedBy.String
	}
	if uploaderEmail.Valid {
		d.Uploader = &model.UploaderRef{
			Email:      uploaderEmail.String,
			Department: model.Department(uploaderDept.String),
		}
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, description, department, file_url, filename,
			storage_path, size, content_type, uploaded_by, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11)
		RETURNING id, title, description, department, file_url, filename,
			storage_path, size, content_type, uploaded_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Description,
		doc.Department,
		doc.FileURL,
		doc.Filename,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		doc.UploadedBy,
		doc.CreatedAt,
	)
	var (
		out         model.Document
		description sql.NullString
		filename    sql.NullString
		uploadedBy  sql.NullString
	)
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&description,
		&out.Department,
		&out.FileURL,
		&filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&uploadedBy,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	out.Description = description.String
	out.Filename = filename.String
	if uploadedBy.Valid {
		out.UploadedBy = &uploadedBy.String
	}
	return &out, nil
}

// FindByID fetches a single document with its uploader projection.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q := `
		SELECT ` + documentColumns + `, u.email, u.department
		FROM documents d
		LEFT JOIN users u ON u.id = d.uploaded_by
		WHERE d.id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents newest first using LIMIT/OFFSET pagination and a
// total count. The uploader is joined in a single query.
func (r *DocumentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT ` + documentColumns + `, u.email, u.department
		FROM documents d
		LEFT JOIN users u ON u.id = d.uploaded_by
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// Update merges non-nil patch fields into the row and returns the result.
func (r *DocumentPostgres) Update(ctx context.Context, id string, patch repository.DocumentPatch) (*model.Document, error) {
	const q = `
		UPDATE documents SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			department  = COALESCE($4, department)
		WHERE id = $1
		RETURNING id
	`
	var returnedID string
	if err := r.db.QueryRowContext(ctx, q, id, patch.Title, patch.Description, patch.Department).Scan(&returnedID); err != nil {
		return nil, err
	}
	// Re-read with the uploader projection attached.
	return r.FindByID(ctx, returnedID)
}

// Delete removes a document by ID. Missing rows surface as sql.ErrNoRows so
// the service can report not-found deterministically.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
