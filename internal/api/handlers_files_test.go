// handlers_files_test.go - Tests for file upload handlers
package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/models"
	"github.com/kinetic-notation/backend/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	return store
}

func multipartRequest(t *testing.T, filename, content string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestHandleUploadFile(t *testing.T) {
	store := newTestStore(t)
	h := NewFileHandler(store)

	req, rec := multipartRequest(t, "sequence.json", `[{"word":"AB"}]`)
	c := echo.New().NewContext(req, rec)

	if err := h.HandleUploadFile(c); err != nil {
		t.Fatalf("HandleUploadFile failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	var info models.FileInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("Decoding response failed: %v", err)
	}
	if info.Name != "sequence.json" {
		t.Errorf("Expected name sequence.json, got %s", info.Name)
	}
	if info.ID == "" {
		t.Error("Expected a file ID")
	}
}

func TestHandleUploadFileWithoutFile(t *testing.T) {
	h := NewFileHandler(newTestStore(t))

	c, _ := newTestContext(t, http.MethodPost, "/api/files/upload", "")

	err := h.HandleUploadFile(c)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", apiErr.Status)
	}
}

func TestHandleGetFile(t *testing.T) {
	store := newTestStore(t)
	info, err := store.SaveBytes("seq.json", []byte("[]"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewFileHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/api/files/"+info.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(info.ID)

	if err := h.HandleGetFile(c); err != nil {
		t.Fatalf("HandleGetFile failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestHandleGetFileNotFound(t *testing.T) {
	h := NewFileHandler(newTestStore(t))

	c, _ := newTestContext(t, http.MethodGet, "/api/files/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.HandleGetFile(c)
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404 APIError, got %v", err)
	}
}

func TestHandleDeleteFile(t *testing.T) {
	store := newTestStore(t)
	info, err := store.SaveBytes("seq.json", []byte("[]"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewFileHandler(store)

	c, rec := newTestContext(t, http.MethodDelete, "/api/files/"+info.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(info.ID)

	if err := h.HandleDeleteFile(c); err != nil {
		t.Fatalf("HandleDeleteFile failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
	if _, err := store.Get(info.ID); err == nil {
		t.Error("Expected file to be gone after delete")
	}
}

func TestHandleGetRecentFilesExcludesTables(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"seq.json", "placements.yaml"} {
		if _, err := store.SaveBytes(name, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	h := NewFileHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/api/files/recent", "")
	if err := h.HandleGetRecentFiles(c); err != nil {
		t.Fatalf("HandleGetRecentFiles failed: %v", err)
	}

	var files []*models.FileInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &files); err != nil {
		t.Fatalf("Decoding response failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != "seq.json" {
		t.Errorf("Expected only seq.json, got %+v", files)
	}
}
