package services

import (
	"context"

	"docshelf/internal/domain/models"
	"docshelf/internal/httputil"
)

// DocumentService handles document business logic
type DocumentService interface {
	// CreateDocument creates a new document. Omitted content defaults to a
	// placeholder embedding the title as a heading.
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error)

	// GetDocument retrieves a document by id
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// UpdateDocument applies only the supplied fields and refreshes updated_at
	UpdateDocument(ctx context.Context, id string, req *UpdateDocumentRequest) (*models.Document, error)

	// DeleteDocument deletes a document unconditionally
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments lists documents, restricted to a folder when folderID is
	// given, ordered by updated_at descending
	ListDocuments(ctx context.Context, folderID *string) ([]models.Document, error)
}

// CreateDocumentRequest represents a document creation request
type CreateDocumentRequest struct {
	Title    string  `json:"title"`
	Content  *string `json:"content,omitempty"`
	FolderID *string `json:"folder_id,omitempty"` // null/absent for root
}

// UpdateDocumentRequest represents a document update request.
// FolderID is tri-state: absent = unchanged, null = move to root,
// value = move to that folder.
type UpdateDocumentRequest struct {
	Title    *string                 `json:"title,omitempty"`
	Content  *string                 `json:"content,omitempty"`
	FolderID httputil.OptionalString `json:"folder_id"`
}
