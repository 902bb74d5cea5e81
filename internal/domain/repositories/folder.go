package repositories

import (
	"context"

	"docshelf/internal/domain/models"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create persists a new folder and assigns its id
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// Update updates a folder
	Update(ctx context.Context, folder *models.Folder) error

	// Delete deletes a folder
	Delete(ctx context.Context, id string) error

	// ListChildren lists immediate child folders (nil = root level)
	ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error)

	// GetAll retrieves every folder as a flat list, creation order
	GetAll(ctx context.Context) ([]models.Folder, error)
}
