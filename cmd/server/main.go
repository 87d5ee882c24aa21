package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kinetic-notation/backend/internal/api"
	"github.com/kinetic-notation/backend/internal/catalog"
	"github.com/kinetic-notation/backend/internal/config"
	"github.com/kinetic-notation/backend/internal/logger"
	"github.com/kinetic-notation/backend/internal/placement"
	"github.com/kinetic-notation/backend/internal/session"
	"github.com/kinetic-notation/backend/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	configPath := filepath.Join(exeDir, "kinetic-notation.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Advanced.LogLevel, cfg.Advanced.LogJSON); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	fileStore, err := storage.NewLocalStore(cfg.Storage.UploadsDirectory)
	if err != nil {
		logger.Errorw("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	sessionMgr := session.NewManager()

	// Background session cleanup
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Sessions.CleanupIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sessionMgr.CleanupOldSessions(time.Duration(cfg.Sessions.SessionTimeoutMinutes) * time.Minute)
		}
	}()

	tables, err := placement.LoadTables(cfg.Placements.TablesDirectory)
	if err != nil {
		logger.Errorw("failed to load placement tables", "error", err)
		os.Exit(1)
	}
	logger.Infow("placement tables loaded",
		"dir", cfg.Placements.TablesDirectory,
		"tables", len(tables.Names()))

	cat, err := catalog.NewStore(cfg.Storage.CatalogDirectory)
	if err != nil {
		logger.Errorw("failed to open sequence catalog", "error", err)
		os.Exit(1)
	}
	defer cat.Close()

	handlers := api.NewHandlers(&api.Dependencies{
		Store:      fileStore,
		SessionMgr: sessionMgr,
		Tables:     tables,
		Classifier: placement.NewGridClassifier(),
		Catalog:    cat,
		Version:    Version,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/keepalive") ||
				path == "/api/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, handlers)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	logger.Infow("server starting",
		"version", Version,
		"build_time", BuildTime,
		"addr", cfg.GetServerAddr(),
		"config", configPath,
		"data_dir", cfg.Storage.DataDirectory)

	e.Logger.Fatal(e.StartServer(s))
}
