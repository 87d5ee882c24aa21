// handlers.go - Handler construction and route registration
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/placement"
	"github.com/kinetic-notation/backend/internal/storage"
)

// Dependencies holds everything the handlers need.
type Dependencies struct {
	Store      storage.Store
	SessionMgr SessionManager
	Tables     *placement.TableSet
	Classifier placement.Classifier
	Catalog    SequenceCatalog
	Version    string
}

// Handlers holds all handler instances.
type Handlers struct {
	Health     *HealthHandler
	Files      *FileHandler
	Sequences  *SequenceHandler
	Placements *PlacementHandler
	Catalog    *CatalogHandler
}

// NewHandlers creates all handler instances.
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(deps.Version),
		Files:      NewFileHandler(deps.Store),
		Sequences:  NewSequenceHandler(deps.Store, deps.SessionMgr),
		Placements: NewPlacementHandler(deps.Tables, deps.Classifier),
		Catalog:    NewCatalogHandler(deps.Catalog, deps.SessionMgr),
	}
}

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.HTTPErrorHandler = ErrorHandler

	api := e.Group("/api")

	api.GET("/health", h.Health.HandleHealth)

	files := api.Group("/files")
	files.POST("/upload", h.Files.HandleUploadFile)
	files.GET("/recent", h.Files.HandleGetRecentFiles)
	files.GET("/:id", h.Files.HandleGetFile)
	files.DELETE("/:id", h.Files.HandleDeleteFile)

	sequences := api.Group("/sequences")
	sequences.POST("/load", h.Sequences.HandleLoadSequence)
	sequences.GET("/:sessionId", h.Sequences.HandleSessionStatus)
	sequences.POST("/:sessionId/keepalive", h.Sequences.HandleSessionKeepAlive)
	sequences.GET("/:sessionId/beats", h.Sequences.HandleGetBeats)
	sequences.GET("/:sessionId/beats/msgpack", h.Sequences.HandleGetBeatsMsgpack)
	sequences.GET("/:sessionId/diagnostics", h.Sequences.HandleGetDiagnostics)
	sequences.GET("/:sessionId/export", h.Sequences.HandleExportSequence)

	placements := api.Group("/placements")
	placements.POST("/resolve", h.Placements.HandleResolve)
	placements.GET("/tables", h.Placements.HandleListTables)

	catalogGroup := api.Group("/catalog")
	catalogGroup.POST("/ingest/:sessionId", h.Catalog.HandleIngest)
	catalogGroup.GET("/sequences", h.Catalog.HandleSearch)
}
