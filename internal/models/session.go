package models

// SessionStatus represents the status of a sequence load session.
type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusConverting SessionStatus = "converting"
	SessionStatusComplete   SessionStatus = "complete"
	SessionStatusError      SessionStatus = "error"
)

// LoadSession represents one legacy-file-to-domain-model conversion.
type LoadSession struct {
	ID               string            `json:"id"`
	FileID           string            `json:"fileId"`
	Status           SessionStatus     `json:"status"`
	Progress         float64           `json:"progress"` // 0-100
	BeatCount        int               `json:"beatCount,omitempty"`
	Word             string            `json:"word,omitempty"`
	ProcessingTimeMs int64             `json:"processingTimeMs,omitempty"`
	Issues           []ConversionIssue `json:"issues,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// NewLoadSession creates a new LoadSession in pending status.
func NewLoadSession(id, fileID string) *LoadSession {
	return &LoadSession{
		ID:       id,
		FileID:   fileID,
		Status:   SessionStatusPending,
		Progress: 0,
		Issues:   make([]ConversionIssue, 0),
	}
}
