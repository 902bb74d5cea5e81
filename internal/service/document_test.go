package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docshelf/internal/domain"
	"docshelf/internal/domain/services"
	"docshelf/internal/httputil"
)

func TestCreateDocument_DefaultContent(t *testing.T) {
	env := newTestEnv()

	doc, err := env.documents.CreateDocument(context.Background(), &services.CreateDocumentRequest{Title: "Q1"})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if !strings.HasPrefix(doc.Content, "# Q1\n") {
		t.Errorf("expected default content to start with the title heading, got %q", doc.Content)
	}
}

func TestCreateDocument_ExplicitContent(t *testing.T) {
	env := newTestEnv()

	doc, err := env.documents.CreateDocument(context.Background(), &services.CreateDocumentRequest{
		Title:   "Q1",
		Content: strPtr("revenue up"),
	})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if doc.Content != "revenue up" {
		t.Errorf("expected supplied content to be kept, got %q", doc.Content)
	}
}

func TestCreateDocument_EmptyTitle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// Nothing was persisted
	docs, err := env.documents.ListDocuments(ctx, nil)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents after failed create, got %d", len(docs))
	}
}

func TestCreateDocument_MissingFolder(t *testing.T) {
	env := newTestEnv()

	_, err := env.documents.CreateDocument(context.Background(), &services.CreateDocumentRequest{
		Title:    "Q1",
		FolderID: strPtr("no-such-folder"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.documents.GetDocument(context.Background(), "no-such-document")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDocument_PartialFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q1"})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	updated, err := env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{
		Content: strPtr("final numbers"),
	})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated.Title != "Q1" {
		t.Errorf("expected title to be unchanged, got %q", updated.Title)
	}
	if updated.Content != "final numbers" {
		t.Errorf("expected content %q, got %q", "final numbers", updated.Content)
	}
	if updated.UpdatedAt.Before(doc.UpdatedAt) {
		t.Error("expected updated_at to be refreshed")
	}
	if !updated.CreatedAt.Equal(doc.CreatedAt) {
		t.Error("expected created_at to be unchanged")
	}
}

func TestUpdateDocument_NoFieldsStillRefreshesUpdatedAt(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q1"})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	updated, err := env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated.Title != doc.Title || updated.Content != doc.Content {
		t.Error("expected all fields to be unchanged")
	}
	if updated.UpdatedAt.Before(doc.UpdatedAt) {
		t.Error("expected updated_at to be refreshed on a no-op update")
	}
}

func TestUpdateDocument_MoveBetweenFolders(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	folder, err := env.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Reports"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	doc, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q1"})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	// Move into folder
	moved, err := env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{
		FolderID: httputil.OptionalString{Present: true, Value: &folder.ID},
	})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if moved.FolderID == nil || *moved.FolderID != folder.ID {
		t.Fatalf("expected document to be in folder %s, got %v", folder.ID, moved.FolderID)
	}

	// Absent folder_id leaves placement alone
	kept, err := env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{
		Title: strPtr("Q1 report"),
	})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if kept.FolderID == nil || *kept.FolderID != folder.ID {
		t.Error("expected absent folder_id to leave the document in place")
	}

	// null folder_id moves back to root
	root, err := env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{
		FolderID: httputil.OptionalString{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if root.FolderID != nil {
		t.Errorf("expected document at root, got folder %v", *root.FolderID)
	}
}

func TestUpdateDocument_MissingTargetFolder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	doc, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q1"})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	_, err = env.documents.UpdateDocument(ctx, doc.ID, &services.UpdateDocumentRequest{
		FolderID: httputil.OptionalString{Present: true, Value: strPtr("no-such-folder")},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDocument_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.documents.UpdateDocument(context.Background(), "no-such-document", &services.UpdateDocumentRequest{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	env := newTestEnv()

	err := env.documents.DeleteDocument(context.Background(), "no-such-document")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDocuments_FilterAndOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	folder, err := env.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Reports"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	first, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q1", FolderID: &folder.ID})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	second, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Q2", FolderID: &folder.ID})
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	if _, err := env.documents.CreateDocument(ctx, &services.CreateDocumentRequest{Title: "Elsewhere"}); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	// Touch the first document so it becomes most recently modified
	if _, err := env.documents.UpdateDocument(ctx, first.ID, &services.UpdateDocumentRequest{}); err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}

	docs, err := env.documents.ListDocuments(ctx, &folder.ID)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents in folder, got %d", len(docs))
	}
	for _, d := range docs {
		if d.FolderID == nil || *d.FolderID != folder.ID {
			t.Errorf("expected only documents from folder %s, got %v", folder.ID, d.FolderID)
		}
	}
	if docs[0].ID != first.ID || docs[1].ID != second.ID {
		t.Errorf("expected most recently modified first, got [%s %s]", docs[0].Title, docs[1].Title)
	}
	if docs[0].UpdatedAt.Before(docs[1].UpdatedAt) {
		t.Error("expected updated_at to be non-increasing")
	}

	// Without a filter every document is listed
	all, err := env.documents.ListDocuments(ctx, nil)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents in total, got %d", len(all))
	}
}
