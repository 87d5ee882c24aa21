// interfaces.go - Handler dependency interfaces, narrow enough to mock in tests
package api

import (
	"context"

	"github.com/kinetic-notation/backend/internal/catalog"
	"github.com/kinetic-notation/backend/internal/models"
)

// SessionManager is the slice of the session manager the handlers use.
type SessionManager interface {
	StartSession(fileID, filePath string) (*models.LoadSession, error)
	GetSession(id string) (*models.LoadSession, bool)
	GetSequence(id string) (*models.SequenceFile, bool)
	GetIssues(id string) ([]models.ConversionIssue, bool)
	TouchSession(id string) bool
}

// SequenceCatalog indexes converted sequences for library search.
type SequenceCatalog interface {
	Ingest(id string, seq *models.SequenceFile) error
	Search(ctx context.Context, q catalog.Query) ([]catalog.Entry, error)
	Count(ctx context.Context) (int, error)
}
