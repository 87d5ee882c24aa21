// handlers_files.go - Legacy sequence file upload and management
package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/models"
	"github.com/kinetic-notation/backend/internal/storage"
)

// FileHandler manages uploaded legacy sequence files.
type FileHandler struct {
	store storage.Store
}

// NewFileHandler creates a new file handler instance.
func NewFileHandler(store storage.Store) *FileHandler {
	return &FileHandler{store: store}
}

// HandleUploadFile accepts a legacy sequence file as multipart/form-data
// and saves it to storage.
func (h *FileHandler) HandleUploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	info, err := h.store.Save(file.Filename, src)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}

	return c.JSON(http.StatusCreated, info)
}

// HandleGetRecentFiles returns recently uploaded sequence files.
func (h *FileHandler) HandleGetRecentFiles(c echo.Context) error {
	files, err := h.store.List(50)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}

	sequenceFiles := filterSequenceFiles(files)
	if len(sequenceFiles) > 20 {
		sequenceFiles = sequenceFiles[:20]
	}

	return c.JSON(http.StatusOK, sequenceFiles)
}

// HandleGetFile returns metadata for a specific file.
func (h *FileHandler) HandleGetFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("file", id)
	}

	return c.JSON(http.StatusOK, info)
}

// HandleDeleteFile deletes an uploaded file.
func (h *FileHandler) HandleDeleteFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("file", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// filterSequenceFiles keeps only files that can hold a legacy sequence.
// Placement tables and other YAML artifacts are excluded.
func filterSequenceFiles(files []*models.FileInfo) []*models.FileInfo {
	var out []*models.FileInfo
	for _, f := range files {
		nameLower := strings.ToLower(f.Name)
		if strings.HasSuffix(nameLower, ".yaml") || strings.HasSuffix(nameLower, ".yml") {
			continue
		}
		out = append(out, f)
	}
	return out
}
