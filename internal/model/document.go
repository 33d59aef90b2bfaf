package model

import "time"

// Document represents stored file metadata.
// This is a pure domain model with no database-specific dependencies or tags.
// The file bytes themselves live in object storage under StoragePath; FileURL
// is the durable pointer handed to clients.
type Document struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Department  Department   `json:"department"`
	FileURL     string       `json:"file_url"`
	Filename    string       `json:"filename,omitempty"`
	StoragePath string       `json:"-"`
	Size        int64        `json:"size"`
	ContentType string       `json:"content_type"`
	UploadedBy  *string      `json:"uploaded_by,omitempty"`
	Uploader    *UploaderRef `json:"uploader,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
