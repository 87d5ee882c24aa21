// handlers_placements.go - Placement key resolution over loaded tables
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/models"
	"github.com/kinetic-notation/backend/internal/placement"
)

// PlacementHandler resolves placement keys against the tables loaded at
// startup.
type PlacementHandler struct {
	tables     *placement.TableSet
	classifier placement.Classifier
}

// NewPlacementHandler creates a new placement handler instance.
func NewPlacementHandler(tables *placement.TableSet, classifier placement.Classifier) *PlacementHandler {
	return &PlacementHandler{tables: tables, classifier: classifier}
}

type resolveRequest struct {
	Table      string                 `json:"table"`
	Arrow      *models.ArrowData      `json:"arrow"`
	Pictograph *models.PictographData `json:"pictograph"`
}

type resolveResponse struct {
	Key    string         `json:"key"`
	Offset *models.Offset `json:"offset,omitempty"`
	Hit    bool           `json:"hit"`
}

// HandleResolve computes the placement key for an arrow and looks it up
// in the named table. Resolution itself never fails; a miss on the
// terminal key is reported with hit=false.
func (h *PlacementHandler) HandleResolve(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Table == "" {
		return NewValidationError("table")
	}

	table, ok := h.tables.Get(req.Table)
	if !ok {
		return NewNotFoundError("placement table", req.Table)
	}

	key := placement.ResolveKey(req.Arrow, req.Pictograph, table, h.classifier)

	resp := resolveResponse{Key: key}
	if offset, ok := table[key]; ok {
		resp.Offset = &offset
		resp.Hit = true
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleListTables returns the names of the loaded placement tables.
func (h *PlacementHandler) HandleListTables(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tables": h.tables.Names(),
	})
}
