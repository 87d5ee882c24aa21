// handlers_test.go - Shared test fixtures for the API handlers
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kinetic-notation/backend/internal/catalog"
	"github.com/kinetic-notation/backend/internal/codec"
	"github.com/kinetic-notation/backend/internal/models"
)

// mockSessionManager is an in-memory SessionManager for handler tests.
type mockSessionManager struct {
	sessions  map[string]*models.LoadSession
	sequences map[string]*models.SequenceFile
	touched   []string
}

func newMockSessionManager() *mockSessionManager {
	return &mockSessionManager{
		sessions:  make(map[string]*models.LoadSession),
		sequences: make(map[string]*models.SequenceFile),
	}
}

func (m *mockSessionManager) StartSession(fileID, filePath string) (*models.LoadSession, error) {
	sess := models.NewLoadSession("session-new", fileID)
	sess.Status = models.SessionStatusConverting
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionManager) GetSession(id string) (*models.LoadSession, bool) {
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *mockSessionManager) GetSequence(id string) (*models.SequenceFile, bool) {
	seq, ok := m.sequences[id]
	return seq, ok
}

func (m *mockSessionManager) GetIssues(id string) ([]models.ConversionIssue, bool) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return sess.Issues, true
}

func (m *mockSessionManager) TouchSession(id string) bool {
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	m.touched = append(m.touched, id)
	return true
}

// addCompletedSession registers a finished session holding a small
// converted sequence.
func (m *mockSessionManager) addCompletedSession(id, word string, letters ...string) *models.SequenceFile {
	seq := &models.SequenceFile{
		Metadata: models.SequenceMetadata{Word: word, Author: "tester"},
	}
	for i, letter := range letters {
		beat := codec.NewBeatBuilder().
			BeatNumber(i + 1).
			Letter(letter).
			Glyph("alpha1", "alpha3").
			Build()
		seq.Beats = append(seq.Beats, &beat)
	}

	sess := models.NewLoadSession(id, "file-"+id)
	sess.Status = models.SessionStatusComplete
	sess.Progress = 100
	sess.BeatCount = len(letters)
	sess.Word = word

	m.sessions[id] = sess
	m.sequences[id] = seq
	return seq
}

// mockCatalog is an in-memory SequenceCatalog for handler tests.
type mockCatalog struct {
	ingested map[string]*models.SequenceFile
	entries  []catalog.Entry
	err      error
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{ingested: make(map[string]*models.SequenceFile)}
}

func (m *mockCatalog) Ingest(id string, seq *models.SequenceFile) error {
	if m.err != nil {
		return m.err
	}
	m.ingested[id] = seq
	return nil
}

func (m *mockCatalog) Search(ctx context.Context, q catalog.Query) ([]catalog.Entry, error) {
	return m.entries, m.err
}

func (m *mockCatalog) Count(ctx context.Context) (int, error) {
	return len(m.ingested), m.err
}

// newTestContext builds an echo context around a request with an
// optional JSON body.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}
