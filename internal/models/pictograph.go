package models

// Color identifies one of the two simultaneous motions in a pictograph.
type Color string

const (
	ColorBlue Color = "blue"
	ColorRed  Color = "red"
)

// ArrowData is the rendered glyph for one color's motion. Each color
// appears at most once per pictograph.
type ArrowData struct {
	Color  Color       `json:"color"`
	Motion *MotionData `json:"motion,omitempty"`
}

// PictographData is the two-motion visual unit rendered for a beat or
// start position.
type PictographData struct {
	Letter   string               `json:"letter"`
	Arrows   map[Color]*ArrowData `json:"arrows"`
	StartPos string               `json:"start_pos"`
	EndPos   string               `json:"end_pos"`
	IsBlank  bool                 `json:"is_blank"`
}

// Arrow returns the arrow for a color, or nil when absent.
func (p *PictographData) Arrow(c Color) *ArrowData {
	if p == nil || p.Arrows == nil {
		return nil
	}
	return p.Arrows[c]
}

// GlyphData carries the display labels for a beat's start and end
// positions. It is independent of motion data and is used even when a
// beat carries no pictograph.
type GlyphData struct {
	StartPos string `json:"start_pos"`
	EndPos   string `json:"end_pos"`
}

// Offset is a pre-computed 2D placement offset for a rendered arrow.
type Offset struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
