package models

// SequenceMetadata is the first element of a legacy sequence file.
// Unknown keys are preserved so a decode/encode round trip does not
// drop editor-specific metadata.
type SequenceMetadata struct {
	Word   string         `json:"word,omitempty"`
	Author string         `json:"author,omitempty"`
	Level  int            `json:"level,omitempty"`
	Extra  map[string]any `json:"-"`
}

// SequenceFile is a fully converted legacy sequence: metadata, an
// optional beat-zero start position, and the ordinary beats in file
// order.
type SequenceFile struct {
	Metadata      SequenceMetadata `json:"metadata"`
	StartPosition *BeatData        `json:"startPosition,omitempty"`
	Beats         []*BeatData      `json:"beats"`
}

// BeatCount returns the number of ordinary beats (the start position is
// not counted).
func (s *SequenceFile) BeatCount() int {
	if s == nil {
		return 0
	}
	return len(s.Beats)
}
