package service

import (
	"log/slog"
	"os"

	"docshelf/internal/domain/services"
	"docshelf/internal/repository/memory"
)

// testEnv bundles the services wired over an isolated in-memory adapter.
type testEnv struct {
	folders   services.FolderService
	documents services.DocumentService
	tree      services.TreeService
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	folderRepo := memory.NewFolderRepository(store)
	docRepo := memory.NewDocumentRepository(store)
	txManager := memory.NewTransactionManager(store)

	return &testEnv{
		folders:   NewFolderService(folderRepo, docRepo, txManager, logger),
		documents: NewDocumentService(docRepo, folderRepo, txManager, logger),
		tree:      NewTreeService(folderRepo, docRepo, logger),
	}
}

func strPtr(s string) *string {
	return &s
}
