// handlers_sequences.go - Sequence load session handlers
package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kinetic-notation/backend/internal/codec"
	"github.com/kinetic-notation/backend/internal/models"
	"github.com/kinetic-notation/backend/internal/storage"
)

// SequenceHandler drives the legacy-to-domain conversion sessions.
type SequenceHandler struct {
	store      storage.Store
	sessionMgr SessionManager
}

// NewSequenceHandler creates a new sequence handler instance.
func NewSequenceHandler(store storage.Store, sessionMgr SessionManager) *SequenceHandler {
	return &SequenceHandler{store: store, sessionMgr: sessionMgr}
}

type loadSequenceRequest struct {
	FileID string `json:"fileId"`
}

// beatsResponse is the converted sequence as served to clients, in both
// JSON and MessagePack encodings.
type beatsResponse struct {
	Metadata      models.SequenceMetadata `json:"metadata" msgpack:"metadata"`
	StartPosition *models.BeatData        `json:"startPosition,omitempty" msgpack:"startPosition,omitempty"`
	Beats         []*models.BeatData      `json:"beats" msgpack:"beats"`
	BeatCount     int                     `json:"beatCount" msgpack:"beatCount"`
}

// HandleLoadSequence starts converting an uploaded legacy file in the
// background and returns the session to poll.
func (h *SequenceHandler) HandleLoadSequence(c echo.Context) error {
	var req loadSequenceRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.FileID == "" {
		return NewValidationError("fileId")
	}

	path, err := h.store.GetFilePath(req.FileID)
	if err != nil {
		return NewNotFoundError("file", req.FileID)
	}

	sess, err := h.sessionMgr.StartSession(req.FileID, path)
	if err != nil {
		return NewInternalError("failed to start session", err)
	}

	return c.JSON(http.StatusAccepted, sess)
}

// HandleSessionStatus returns the session state including progress and
// diagnostics count.
func (h *SequenceHandler) HandleSessionStatus(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	sess, ok := h.sessionMgr.GetSession(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	h.sessionMgr.TouchSession(id)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session":          sess,
		"diagnosticsCount": len(sess.Issues),
	})
}

// HandleSessionKeepAlive refreshes a session's last-accessed timestamp.
func (h *SequenceHandler) HandleSessionKeepAlive(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	if !h.sessionMgr.TouchSession(id) {
		return NewNotFoundError("session", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleGetBeats returns the converted sequence as JSON.
func (h *SequenceHandler) HandleGetBeats(c echo.Context) error {
	resp, apiErr := h.sequenceResponse(c.Param("sessionId"))
	if apiErr != nil {
		return apiErr
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleGetBeatsMsgpack returns the converted sequence as a MessagePack
// blob for clients that want the compact encoding.
func (h *SequenceHandler) HandleGetBeatsMsgpack(c echo.Context) error {
	resp, apiErr := h.sequenceResponse(c.Param("sessionId"))
	if apiErr != nil {
		return apiErr
	}

	data, err := msgpack.Marshal(resp)
	if err != nil {
		return NewInternalError("failed to encode beats", err)
	}
	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleGetDiagnostics returns the conversion issues recorded for a
// session.
func (h *SequenceHandler) HandleGetDiagnostics(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	issues, ok := h.sessionMgr.GetIssues(id)
	if !ok {
		return NewNotFoundError("session", id)
	}
	h.sessionMgr.TouchSession(id)

	if issues == nil {
		issues = []models.ConversionIssue{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"issues": issues,
		"count":  len(issues),
	})
}

// HandleExportSequence serializes the session's sequence back to the
// legacy flat JSON format as a download.
func (h *SequenceHandler) HandleExportSequence(c echo.Context) error {
	id := c.Param("sessionId")
	resp, apiErr := h.sequenceResponse(id)
	if apiErr != nil {
		return apiErr
	}

	seq := &models.SequenceFile{
		Metadata:      resp.Metadata,
		StartPosition: resp.StartPosition,
		Beats:         resp.Beats,
	}

	var buf bytes.Buffer
	if err := codec.EncodeSequence(seq, &buf); err != nil {
		return NewInternalError("failed to encode sequence", err)
	}

	filename := seq.Metadata.Word
	if filename == "" {
		filename = id
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.json"`, filename))
	return c.Blob(http.StatusOK, "application/json", buf.Bytes())
}

// sequenceResponse fetches a completed session's sequence, mapping the
// not-found and not-ready cases to API errors.
func (h *SequenceHandler) sequenceResponse(id string) (*beatsResponse, *APIError) {
	if id == "" {
		return nil, NewValidationError("sessionId")
	}

	sess, ok := h.sessionMgr.GetSession(id)
	if !ok {
		return nil, NewNotFoundError("session", id)
	}
	if sess.Status != models.SessionStatusComplete {
		return nil, NewConflictError(fmt.Sprintf("session is %s, not complete", sess.Status))
	}

	seq, ok := h.sessionMgr.GetSequence(id)
	if !ok {
		return nil, NewNotFoundError("sequence for session", id)
	}
	h.sessionMgr.TouchSession(id)

	beats := seq.Beats
	if beats == nil {
		beats = []*models.BeatData{}
	}
	return &beatsResponse{
		Metadata:      seq.Metadata,
		StartPosition: seq.StartPosition,
		Beats:         beats,
		BeatCount:     seq.BeatCount(),
	}, nil
}
