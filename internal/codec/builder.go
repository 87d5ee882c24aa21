package codec

import (
	"github.com/kinetic-notation/backend/internal/models"
)

// BeatBuilder assembles a BeatData from looser, field-by-field inputs.
// Zero value is not usable; construct with NewBeatBuilder. All setters
// return the builder for chaining.
type BeatBuilder struct {
	beatNumber int
	letter     string
	duration   float64
	motions    map[models.Color]*models.MotionData
	glyph      *models.GlyphData
	metadata   map[string]string
	startPos   bool
}

// NewBeatBuilder creates a builder with an ordinary-beat default
// duration of 1.0.
func NewBeatBuilder() *BeatBuilder {
	return &BeatBuilder{
		duration: 1.0,
		motions:  make(map[models.Color]*models.MotionData),
		metadata: make(map[string]string),
	}
}

// BeatNumber sets the beat number.
func (b *BeatBuilder) BeatNumber(n int) *BeatBuilder {
	b.beatNumber = n
	return b
}

// Letter sets the notation letter.
func (b *BeatBuilder) Letter(letter string) *BeatBuilder {
	b.letter = letter
	return b
}

// Duration sets the beat duration.
func (b *BeatBuilder) Duration(d float64) *BeatBuilder {
	b.duration = d
	return b
}

// Motion sets one color's motion. A nil motion leaves the color absent.
func (b *BeatBuilder) Motion(color models.Color, motion *models.MotionData) *BeatBuilder {
	if motion != nil {
		b.motions[color] = motion
	}
	return b
}

// Glyph sets the display labels for the start and end positions.
func (b *BeatBuilder) Glyph(startPos, endPos string) *BeatBuilder {
	b.glyph = &models.GlyphData{StartPos: startPos, EndPos: endPos}
	return b
}

// Metadata adds one metadata entry.
func (b *BeatBuilder) Metadata(key, value string) *BeatBuilder {
	b.metadata[key] = value
	return b
}

// AsStartPosition marks the beat as the beat-zero start position.
func (b *BeatBuilder) AsStartPosition() *BeatBuilder {
	b.startPos = true
	return b
}

// Build produces the BeatData. A pictograph is present iff at least one
// motion was set; IsBlank tracks the same condition.
func (b *BeatBuilder) Build() models.BeatData {
	beat := models.BeatData{
		BeatNumber: b.beatNumber,
		Letter:     b.letter,
		Duration:   b.duration,
		Glyph:      b.glyph,
		IsBlank:    len(b.motions) == 0,
	}

	if b.startPos {
		beat.BeatNumber = 0
		b.metadata["is_start_position"] = "true"
	}
	if len(b.metadata) > 0 {
		beat.Metadata = b.metadata
	}

	if len(b.motions) > 0 {
		picto := &models.PictographData{
			Letter: b.letter,
			Arrows: make(map[models.Color]*models.ArrowData, len(b.motions)),
		}
		if b.glyph != nil {
			picto.StartPos = b.glyph.StartPos
			picto.EndPos = b.glyph.EndPos
		}
		for color, motion := range b.motions {
			picto.Arrows[color] = &models.ArrowData{Color: color, Motion: motion}
		}
		beat.Pictograph = picto
	}

	return beat
}
