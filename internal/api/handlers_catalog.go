// handlers_catalog.go - Sequence library catalog handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/catalog"
	"github.com/kinetic-notation/backend/internal/models"
)

// CatalogHandler exposes the searchable sequence catalog.
type CatalogHandler struct {
	catalog    SequenceCatalog
	sessionMgr SessionManager
}

// NewCatalogHandler creates a new catalog handler instance.
func NewCatalogHandler(cat SequenceCatalog, sessionMgr SessionManager) *CatalogHandler {
	return &CatalogHandler{catalog: cat, sessionMgr: sessionMgr}
}

// HandleIngest adds a completed session's sequence to the catalog.
func (h *CatalogHandler) HandleIngest(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	sess, ok := h.sessionMgr.GetSession(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	if sess.Status != models.SessionStatusComplete {
		return NewConflictError("session conversion has not completed")
	}

	seq, ok := h.sessionMgr.GetSequence(id)
	if !ok {
		return NewNotFoundError("sequence for session", id)
	}

	if err := h.catalog.Ingest(id, seq); err != nil {
		return NewInternalError("failed to ingest sequence", err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":        id,
		"word":      seq.Metadata.Word,
		"beatCount": seq.BeatCount(),
	})
}

// HandleSearch searches the catalog by word, letter, and minimum beat
// count. All filters are optional.
func (h *CatalogHandler) HandleSearch(c echo.Context) error {
	q := catalog.Query{
		Word:   c.QueryParam("word"),
		Letter: c.QueryParam("letter"),
	}
	if raw := c.QueryParam("minBeats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return NewBadRequestError("minBeats must be a non-negative integer", err)
		}
		q.MinBeats = n
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return NewBadRequestError("limit must be an integer", err)
		}
		q.Limit = n
	}

	entries, err := h.catalog.Search(c.Request().Context(), q)
	if err != nil {
		return NewInternalError("catalog search failed", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sequences": entries,
		"count":     len(entries),
	})
}
