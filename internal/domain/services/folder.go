package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder by id
	GetFolder(ctx context.Context, id string) (*models.Folder, error)

	// RenameFolder renames a folder. An omitted name is a no-op success
	// that still refreshes updated_at.
	RenameFolder(ctx context.Context, id string, req *RenameFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder (must be empty)
	DeleteFolder(ctx context.Context, id string) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // null/absent for root
}

// RenameFolderRequest represents a folder rename request
type RenameFolderRequest struct {
	Name *string `json:"name,omitempty"`
}
