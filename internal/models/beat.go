package models

// BeatData is one time-step of a sequence. A start-position beat always
// has BeatNumber 0; ordinary beats are numbered from 1, strictly
// increasing across a sequence. Beat ordering is owned by the enclosing
// sequence, never by the codec.
type BeatData struct {
	BeatNumber int               `json:"beat_number"`
	Letter     string            `json:"letter"`
	Duration   float64           `json:"duration"`
	Pictograph *PictographData   `json:"pictograph,omitempty"`
	Glyph      *GlyphData        `json:"glyph,omitempty"`
	IsBlank    bool              `json:"is_blank"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// IsStartPosition reports whether the beat is the distinguished
// beat-zero start-position variant.
func (b *BeatData) IsStartPosition() bool {
	return b != nil && b.BeatNumber == 0 && b.Metadata["is_start_position"] == "true"
}

// Meta returns a metadata value, or "" when absent.
func (b *BeatData) Meta(key string) string {
	if b == nil || b.Metadata == nil {
		return ""
	}
	return b.Metadata[key]
}
