// Package session manages sequence load sessions: each session is one
// legacy file converted into the domain model, held in memory together
// with the conversion diagnostics.
package session

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kinetic-notation/backend/internal/codec"
	"github.com/kinetic-notation/backend/internal/logger"
	"github.com/kinetic-notation/backend/internal/models"
)

// MaxSessions limits concurrent sessions to prevent memory exhaustion.
const MaxSessions = 50

// SessionMaxAge is how long to keep completed sessions before cleanup.
const SessionMaxAge = 30 * time.Minute

// SessionKeepAliveWindow is how long to keep sessions that are actively
// being used.
const SessionKeepAliveWindow = 5 * time.Minute

// Manager handles active sequence load sessions.
type Manager struct {
	sessions map[string]*sessionState
	mu       sync.RWMutex
}

type sessionState struct {
	Session      *models.LoadSession
	Sequence     *models.SequenceFile
	LastAccessed time.Time
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*sessionState),
	}
}

// StartSession begins converting a legacy file in the background.
func (m *Manager) StartSession(fileID, filePath string) (*models.LoadSession, error) {
	m.cleanupOldSessionsIfNeeded()

	sessionID := uuid.New().String()

	sess := models.NewLoadSession(sessionID, fileID)
	sess.Status = models.SessionStatusConverting

	state := &sessionState{
		Session:      sess,
		LastAccessed: time.Now(),
	}

	m.mu.Lock()
	m.sessions[sessionID] = state
	m.mu.Unlock()

	go m.runConvert(sessionID, filePath)

	return sess, nil
}

func (m *Manager) runConvert(sessionID, filePath string) {
	// Recover from panics to prevent backend crash.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("conversion panicked", "session", sessionID, "panic", r)
			m.updateSessionError(sessionID, fmt.Sprintf("conversion panicked: %v", r))
		}
	}()

	start := time.Now()
	logger.Infow("starting conversion", "session", sessionID, "file", filePath)

	f, err := os.Open(filePath)
	if err != nil {
		m.updateSessionError(sessionID, fmt.Sprintf("opening sequence file: %v", err))
		return
	}
	defer f.Close()

	m.setProgress(sessionID, 10)

	seq, issues, err := codec.DecodeSequence(f)
	if err != nil {
		logger.Errorw("conversion failed", "session", sessionID, "error", err)
		m.updateSessionError(sessionID, fmt.Sprintf("conversion failed: %v", err))
		return
	}

	elapsed := time.Since(start).Milliseconds()
	logger.Infow("conversion complete",
		"session", sessionID,
		"beats", seq.BeatCount(),
		"issues", len(issues),
		"elapsed_ms", elapsed)

	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return
	}

	state.Sequence = seq
	state.Session.Status = models.SessionStatusComplete
	state.Session.Progress = 100
	state.Session.BeatCount = seq.BeatCount()
	state.Session.Word = seq.Metadata.Word
	state.Session.ProcessingTimeMs = elapsed
	state.Session.Issues = issues
}

func (m *Manager) setProgress(sessionID string, progress float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[sessionID]; ok {
		state.Session.Progress = progress
	}
}

func (m *Manager) updateSessionError(sessionID, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return
	}

	state.Session.Status = models.SessionStatusError
	state.Session.Error = reason
}

// cleanupOldSessionsIfNeeded removes completed sessions when at
// capacity.
func (m *Manager) cleanupOldSessionsIfNeeded() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) < MaxSessions {
		return
	}

	toFree := len(m.sessions) - MaxSessions + 1
	freed := 0
	for id, state := range m.sessions {
		if freed >= toFree {
			break
		}
		if state.Session.Status == models.SessionStatusComplete ||
			state.Session.Status == models.SessionStatusError {
			delete(m.sessions, id)
			freed++
			logger.Infow("cleaned up session to free memory", "session", id)
		}
	}
}

// CleanupOldSessions removes completed sessions older than maxAge,
// keeping sessions accessed within SessionKeepAliveWindow.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	keepAliveCutoff := time.Now().Add(-SessionKeepAliveWindow)

	for id, state := range m.sessions {
		if state.Session.Status != models.SessionStatusComplete &&
			state.Session.Status != models.SessionStatusError {
			continue
		}
		if state.LastAccessed.After(keepAliveCutoff) {
			continue
		}
		if state.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			logger.Infow("cleaned up aged session", "session", id)
		}
	}
}

// GetSession returns a session by ID.
func (m *Manager) GetSession(id string) (*models.LoadSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return state.Session, true
}

// GetSequence returns the converted sequence for a completed session.
func (m *Manager) GetSequence(id string) (*models.SequenceFile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok || state.Sequence == nil {
		return nil, false
	}
	return state.Sequence, true
}

// GetIssues returns the conversion diagnostics for a session.
func (m *Manager) GetIssues(id string) ([]models.ConversionIssue, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return state.Session.Issues, true
}

// TouchSession updates the LastAccessed timestamp for a session so the
// cleanup pass keeps it alive.
func (m *Manager) TouchSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return false
	}
	state.LastAccessed = time.Now()
	return true
}
