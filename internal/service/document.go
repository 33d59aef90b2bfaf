package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cdms/internal/model"
	"cdms/internal/repository"
	"cdms/internal/storage"
)

// downloadURLExpiry bounds presigned download links.
const downloadURLExpiry = 15 * time.Minute

// CreateDocumentInput carries the metadata accompanying an upload.
type CreateDocumentInput struct {
	Title       string
	Description string
	Department  model.Department
	Filename    string
	ContentType string
	Size        int64
	UploadedBy  *string
}

// UpdateDocumentInput is a partial metadata patch. Nil fields are left
// unchanged; file replacement is not supported on update.
type UpdateDocumentInput struct {
	Title       *string
	Description *string
	Department  *model.Department
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Create uploads the content to object storage, then persists metadata.
	// If the metadata write fails the uploaded object is deleted best-effort.
	Create(ctx context.Context, r io.Reader, in CreateDocumentInput) (*model.Document, error)

	// List returns documents newest first using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Update applies a partial metadata merge.
	Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the metadata record, then the stored object best-effort.
	Delete(ctx context.Context, id string) error

	// DownloadURL returns a time-limited presigned URL for the stored file.
	DownloadURL(ctx context.Context, id string) (string, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Create(ctx context.Context, r io.Reader, in CreateDocumentInput) (*model.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Department == "" {
		return nil, fmt.Errorf("%w: department is required", ErrValidation)
	}
	if !in.Department.Valid() {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, in.Department)
	}

	// Stored object name is UUID + original extension; the original filename
	// survives as metadata only.
	ext := filepath.Ext(in.Filename)
	key := filepath.ToSlash(filepath.Join("documents", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Department:  in.Department,
		FileURL:     objInfo.URL,
		Filename:    in.Filename,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		UploadedBy:  in.UploadedBy,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Compensate: remove the just-uploaded object so it doesn't orphan.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns paginated documents without exposing repository types.
func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Update merges the patch into the stored metadata.
func (s *documentService) Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if in.Department != nil && !in.Department.Valid() {
		return nil, fmt.Errorf("%w: unknown department %q", ErrValidation, *in.Department)
	}

	doc, err := s.repo.Update(ctx, id, repository.DocumentPatch{
		Title:       in.Title,
		Description: in.Description,
		Department:  in.Department,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes the metadata record, then cleans up the stored object.
// The metadata delete is authoritative; a failed object cleanup is logged and
// not surfaced to the caller.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		log.Printf("storage cleanup failed for %s (key %s): %v", id, doc.StoragePath, err)
	}
	return nil
}

// DownloadURL returns a presigned GET URL for the document's stored object.
func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, doc.StoragePath, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return u, nil
}
