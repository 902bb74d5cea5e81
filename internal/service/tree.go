package service

import (
	"context"
	"log/slog"

	"docshelf/internal/domain/models"
	"docshelf/internal/domain/repositories"
	"docshelf/internal/domain/services"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo repositories.FolderRepository
	docRepo    repositories.DocumentRepository
	logger     *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo repositories.FolderRepository,
	docRepo repositories.DocumentRepository,
	logger *slog.Logger,
) services.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// GetFolderTree returns every root folder with its full recursive subtree
func (s *treeService) GetFolderTree(ctx context.Context) ([]*models.FolderNode, error) {
	tree, err := s.GetFullTree(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Folders, nil
}

// GetFullTree materializes the whole hierarchy: root folders with nested
// subtrees plus root-level documents. The tree is assembled from two flat
// reads with a map, so a corrupted parent link can orphan folders but can
// never cause unbounded recursion.
func (s *treeService) GetFullTree(ctx context.Context) (*models.Tree, error) {
	allFolders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Documents arrive ordered updated_at descending; appending preserves
	// that order within each folder node.
	allDocuments, err := s.docRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// First pass: create all folder nodes
	folderMap := make(map[string]*models.FolderNode)
	var rootFolderIDs []string
	for i := range allFolders {
		folderMap[allFolders[i].ID] = allFolders[i].Node()
	}

	// Second pass: nest folders by connecting children to parents
	for i := range allFolders {
		folder := &allFolders[i]
		node := folderMap[folder.ID]
		if folder.ParentID == nil {
			rootFolderIDs = append(rootFolderIDs, folder.ID)
		} else if parent, exists := folderMap[*folder.ParentID]; exists {
			parent.Children = append(parent.Children, node)
		}
	}

	// Third pass: attach documents to their folders
	rootDocuments := make([]models.DocumentResource, 0)
	for i := range allDocuments {
		doc := &allDocuments[i]
		if doc.FolderID == nil {
			rootDocuments = append(rootDocuments, doc.Resource())
		} else if parent, exists := folderMap[*doc.FolderID]; exists {
			parent.Documents = append(parent.Documents, doc.Resource())
		}
	}

	// Build final tree using root folder pointers
	rootFolders := make([]*models.FolderNode, 0, len(rootFolderIDs))
	for _, folderID := range rootFolderIDs {
		rootFolders = append(rootFolders, folderMap[folderID])
	}

	s.logger.Debug("tree materialized",
		"folder_count", len(allFolders),
		"document_count", len(allDocuments),
	)

	return &models.Tree{
		Folders:   rootFolders,
		Documents: rootDocuments,
	}, nil
}
