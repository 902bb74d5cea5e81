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

type folderService struct {
	folderRepo repositories.FolderRepository
	docRepo    repositories.DocumentRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	docRepo repositories.DocumentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	if err := validateFolderName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	folder := &models.Folder{
		ParentID:  req.ParentID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if req.ParentID != nil {
			if _, err := s.folderRepo.GetByID(ctx, *req.ParentID); err != nil {
				return err
			}
		}
		return s.folderRepo.Create(ctx, folder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// GetFolder retrieves a folder by id
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// RenameFolder renames a folder. An omitted name leaves it unchanged but
// still refreshes updated_at.
func (s *folderService) RenameFolder(ctx context.Context, id string, req *services.RenameFolderRequest) (*models.Folder, error) {
	if req.Name != nil {
		if err := validateFolderName(*req.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}

	var folder *models.Folder
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		var err error
		folder, err = s.folderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			folder.Name = *req.Name
		}
		folder.UpdatedAt = time.Now()

		return s.folderRepo.Update(ctx, folder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder updated", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// DeleteFolder deletes a folder. Deletion is rejected with ErrNotEmpty while
// the folder owns any child folder or document; there is no cascade.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if _, err := s.folderRepo.GetByID(ctx, id); err != nil {
			return err
		}

		children, err := s.folderRepo.ListChildren(ctx, &id)
		if err != nil {
			return err
		}
		docs, err := s.docRepo.ListByFolder(ctx, &id)
		if err != nil {
			return err
		}
		if len(children) > 0 || len(docs) > 0 {
			return &domain.NotEmptyError{
				FolderID:  id,
				Children:  len(children),
				Documents: len(docs),
			}
		}

		return s.folderRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id)

	return nil
}

func validateFolderName(name string) error {
	return validation.Validate(name,
		validation.Required,
		validation.Length(1, config.MaxFolderNameLength),
	)
}
