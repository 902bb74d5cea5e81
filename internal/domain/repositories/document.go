package repositories

import (
	"context"

	"docshelf/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create persists a new document and assigns its id
	Create(ctx context.Context, doc *models.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id string) (*models.Document, error)

	// Update updates an existing document
	Update(ctx context.Context, doc *models.Document) error

	// Delete deletes a document
	Delete(ctx context.Context, id string) error

	// ListByFolder lists documents in a folder (nil = root level),
	// ordered by updated_at descending, ties in insertion order
	ListByFolder(ctx context.Context, folderID *string) ([]models.Document, error)

	// ListAll lists every document, ordered by updated_at descending
	ListAll(ctx context.Context) ([]models.Document, error)
}
