package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// TreeService materializes the folder/document hierarchy. Materialization is
// read-only and recomputed on every call so it reflects current state.
type TreeService interface {
	// GetFolderTree returns every root folder with its full recursive subtree
	GetFolderTree(ctx context.Context) ([]*models.FolderNode, error)

	// GetFullTree returns the folder tree plus the flat list of root-level
	// documents
	GetFullTree(ctx context.Context) (*models.Tree, error)
}
