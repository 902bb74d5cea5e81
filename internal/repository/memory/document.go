package memory

import (
	"context"
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/repositories"
)

// DocumentRepository implements repositories.DocumentRepository over a Store.
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository creates a document repository backed by the store.
func NewDocumentRepository(store *Store) repositories.DocumentRepository {
	return &DocumentRepository{store: store}
}

// Create persists a new document and assigns its id
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	defer r.store.lock(ctx)()

	if doc.FolderID != nil {
		if _, ok := r.store.folders[*doc.FolderID]; !ok {
			return fmt.Errorf("folder: %w", domain.ErrNotFound)
		}
	}

	doc.ID = r.store.assignID(doc.ID)
	r.store.documents[doc.ID] = *doc
	return nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	defer r.store.lock(ctx)()

	doc, ok := r.store.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return &doc, nil
}

// Update updates a document
func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.documents[doc.ID]; !ok {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}
	if doc.FolderID != nil {
		if _, ok := r.store.folders[*doc.FolderID]; !ok {
			return fmt.Errorf("folder: %w", domain.ErrNotFound)
		}
	}
	r.store.documents[doc.ID] = *doc
	return nil
}

// Delete deletes a document
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.documents[id]; !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.documents, id)
	delete(r.store.seq, id)
	return nil
}

// ListByFolder lists documents in a folder (nil = root level), most recently
// modified first, insertion order on ties
func (r *DocumentRepository) ListByFolder(ctx context.Context, folderID *string) ([]models.Document, error) {
	defer r.store.lock(ctx)()

	var docs []models.Document
	for _, d := range r.store.documents {
		if sameRef(d.FolderID, folderID) {
			docs = append(docs, d)
		}
	}
	r.store.sortDocuments(docs)
	return docs, nil
}

// ListAll lists every document, most recently modified first
func (r *DocumentRepository) ListAll(ctx context.Context) ([]models.Document, error) {
	defer r.store.lock(ctx)()

	docs := make([]models.Document, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		docs = append(docs, d)
	}
	r.store.sortDocuments(docs)
	return docs, nil
}
