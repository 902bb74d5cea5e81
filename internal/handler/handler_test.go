package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"docshelf/internal/repository/memory"
	"docshelf/internal/service"
)

// newTestServer wires the full route table over an in-memory store.
func newTestServer() *httptest.Server {
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	folderRepo := memory.NewFolderRepository(store)
	docRepo := memory.NewDocumentRepository(store)
	txManager := memory.NewTransactionManager(store)

	folderService := service.NewFolderService(folderRepo, docRepo, txManager, logger)
	docService := service.NewDocumentService(docRepo, folderRepo, txManager, logger)
	treeService := service.NewTreeService(folderRepo, docRepo, logger)

	folderHandler := NewFolderHandler(folderService, treeService, logger)
	docHandler := NewDocumentHandler(docService, logger)
	treeHandler := NewTreeHandler(treeService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolderTree)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.RenameFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)

	return httptest.NewServer(mux)
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, decoded
}

func TestCreateFolder_Created(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/folders", `{"name":"Work"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if body["type"] != "folder" {
		t.Errorf("expected type discriminator 'folder', got %v", body["type"])
	}
	if body["name"] != "Work" {
		t.Errorf("expected name Work, got %v", body["name"])
	}
	if body["parent_id"] != nil {
		t.Errorf("expected null parent_id, got %v", body["parent_id"])
	}
	if _, ok := body["createdAt"].(string); !ok {
		t.Errorf("expected createdAt string, got %v", body["createdAt"])
	}
}

func TestCreateFolder_EmptyNameRejected(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/folders", `{"name":""}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["title"] != http.StatusText(http.StatusBadRequest) {
		t.Errorf("expected problem title, got %v", body["title"])
	}
}

func TestDeleteFolder_NonEmptyConflict(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, folder := doJSON(t, http.MethodPost, srv.URL+"/api/folders", `{"name":"Reports"}`)
	folderID := folder["id"].(string)

	_, doc := doJSON(t, http.MethodPost, srv.URL+"/api/documents",
		`{"title":"Q1","folder_id":"`+folderID+`"}`)
	docID := doc["id"].(string)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/folders/"+folderID, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 deleting a non-empty folder, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/documents/"+docID, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 deleting document, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/folders/"+folderID, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 deleting emptied folder, got %d", resp.StatusCode)
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/documents/no-such-id", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["status"] != float64(http.StatusNotFound) {
		t.Errorf("expected problem status 404, got %v", body["status"])
	}
}

func TestFullTree_Endpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, work := doJSON(t, http.MethodPost, srv.URL+"/api/folders", `{"name":"Work"}`)
	workID := work["id"].(string)
	_, reports := doJSON(t, http.MethodPost, srv.URL+"/api/folders",
		`{"name":"Reports","parent_id":"`+workID+`"}`)
	reportsID := reports["id"].(string)
	doJSON(t, http.MethodPost, srv.URL+"/api/documents",
		`{"title":"Q1","folder_id":"`+reportsID+`"}`)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/tree", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	folders := body["folders"].([]interface{})
	if len(folders) != 1 {
		t.Fatalf("expected 1 root folder, got %d", len(folders))
	}
	workNode := folders[0].(map[string]interface{})
	children := workNode["children"].([]interface{})
	if len(children) != 1 {
		t.Fatalf("expected 1 child of Work, got %d", len(children))
	}
	reportsNode := children[0].(map[string]interface{})
	docs := reportsNode["documents"].([]interface{})
	if len(docs) != 1 {
		t.Fatalf("expected 1 document in Reports, got %d", len(docs))
	}
	q1 := docs[0].(map[string]interface{})
	if q1["title"] != "Q1" || q1["type"] != "document" {
		t.Errorf("unexpected document node: %v", q1)
	}

	rootDocs := body["documents"].([]interface{})
	if len(rootDocs) != 0 {
		t.Errorf("expected no root documents, got %d", len(rootDocs))
	}
}

func TestUpdateDocument_MoveToRootViaNull(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, folder := doJSON(t, http.MethodPost, srv.URL+"/api/folders", `{"name":"Reports"}`)
	folderID := folder["id"].(string)
	_, doc := doJSON(t, http.MethodPost, srv.URL+"/api/documents",
		`{"title":"Q1","folder_id":"`+folderID+`"}`)
	docID := doc["id"].(string)

	resp, moved := doJSON(t, http.MethodPatch, srv.URL+"/api/documents/"+docID, `{"folder_id":null}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if moved["folder_id"] != nil {
		t.Errorf("expected document moved to root, got folder_id %v", moved["folder_id"])
	}
}
