package memory

import (
	"context"
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/repositories"
)

// FolderRepository implements repositories.FolderRepository over a Store.
type FolderRepository struct {
	store *Store
}

// NewFolderRepository creates a folder repository backed by the store.
func NewFolderRepository(store *Store) repositories.FolderRepository {
	return &FolderRepository{store: store}
}

// Create persists a new folder and assigns its id
func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	defer r.store.lock(ctx)()

	if folder.ParentID != nil {
		if _, ok := r.store.folders[*folder.ParentID]; !ok {
			return fmt.Errorf("parent folder: %w", domain.ErrNotFound)
		}
	}

	folder.ID = r.store.assignID(folder.ID)
	r.store.folders[folder.ID] = *folder
	return nil
}

// GetByID retrieves a folder by ID
func (r *FolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	defer r.store.lock(ctx)()

	folder, ok := r.store.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return &folder, nil
}

// Update updates a folder
func (r *FolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.folders[folder.ID]; !ok {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	r.store.folders[folder.ID] = *folder
	return nil
}

// Delete deletes a folder
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	for _, f := range r.store.folders {
		if f.ParentID != nil && *f.ParentID == id {
			return fmt.Errorf("folder %s: %w", id, domain.ErrNotEmpty)
		}
	}
	for _, d := range r.store.documents {
		if d.FolderID != nil && *d.FolderID == id {
			return fmt.Errorf("folder %s: %w", id, domain.ErrNotEmpty)
		}
	}
	delete(r.store.folders, id)
	delete(r.store.seq, id)
	return nil
}

// ListChildren lists immediate child folders (nil = root level)
func (r *FolderRepository) ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error) {
	defer r.store.lock(ctx)()

	var folders []models.Folder
	for _, f := range r.store.folders {
		if sameRef(f.ParentID, parentID) {
			folders = append(folders, f)
		}
	}
	r.store.sortFolders(folders)
	return folders, nil
}

// GetAll retrieves every folder in creation order
func (r *FolderRepository) GetAll(ctx context.Context) ([]models.Folder, error) {
	defer r.store.lock(ctx)()

	folders := make([]models.Folder, 0, len(r.store.folders))
	for _, f := range r.store.folders {
		folders = append(folders, f)
	}
	r.store.sortFolders(folders)
	return folders, nil
}

func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
