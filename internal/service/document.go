package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docshelf/internal/config"
	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/repositories"
	"docshelf/internal/domain/services"
)

type documentService struct {
	docRepo    repositories.DocumentRepository
	folderRepo repositories.FolderRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	folderRepo repositories.FolderRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		docRepo:    docRepo,
		folderRepo: folderRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// defaultContent builds the placeholder body used when a document is created
// without content.
func defaultContent(title string) string {
	return fmt.Sprintf("# %s\n\nStart writing your content here...", title)
}

// CreateDocument creates a new document
func (s *documentService) CreateDocument(ctx context.Context, req *services.CreateDocumentRequest) (*models.Document, error) {
	// Normalize empty string to nil for root-level documents
	if req.FolderID != nil && *req.FolderID == "" {
		req.FolderID = nil
	}

	if err := validateDocumentTitle(req.Title); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	content := defaultContent(req.Title)
	if req.Content != nil {
		content = *req.Content
	}

	now := time.Now()
	doc := &models.Document{
		FolderID:  req.FolderID,
		Title:     req.Title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if req.FolderID != nil {
			if _, err := s.folderRepo.GetByID(ctx, *req.FolderID); err != nil {
				return err
			}
		}
		return s.docRepo.Create(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", doc.ID,
		"title", doc.Title,
		"folder_id", doc.FolderID,
	)

	return doc, nil
}

// GetDocument retrieves a document by id
func (s *documentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

// UpdateDocument applies only the supplied fields and refreshes updated_at
func (s *documentService) UpdateDocument(ctx context.Context, id string, req *services.UpdateDocumentRequest) (*models.Document, error) {
	if req.Title != nil {
		if err := validateDocumentTitle(*req.Title); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}

	var doc *models.Document
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.docRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Title != nil {
			doc.Title = *req.Title
		}
		if req.Content != nil {
			doc.Content = *req.Content
		}

		// Tri-state: only move the document if folder_id was present
		if req.FolderID.Present {
			if req.FolderID.Value != nil && *req.FolderID.Value != "" {
				folder, err := s.folderRepo.GetByID(ctx, *req.FolderID.Value)
				if err != nil {
					return err
				}
				doc.FolderID = &folder.ID
			} else {
				// null = move to root
				doc.FolderID = nil
			}
		}

		doc.UpdatedAt = time.Now()

		return s.docRepo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document updated",
		"id", doc.ID,
		"title", doc.Title,
		"folder_id", doc.FolderID,
	)

	return doc, nil
}

// DeleteDocument deletes a document unconditionally
func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		return s.docRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", id)

	return nil
}

// ListDocuments lists documents, restricted to a folder when folderID is
// given, most recently modified first.
func (s *documentService) ListDocuments(ctx context.Context, folderID *string) ([]models.Document, error) {
	if folderID == nil {
		return s.docRepo.ListAll(ctx)
	}
	return s.docRepo.ListByFolder(ctx, folderID)
}

func validateDocumentTitle(title string) error {
	return validation.Validate(title,
		validation.Required,
		validation.Length(1, config.MaxDocumentTitleLength),
	)
}
