// Package codec converts between the legacy flat sequence format and
// the strict domain model in internal/models.
//
// The legacy format is a loosely-typed, string-keyed JSON shape that
// predates the structured model. Conversion is deliberately lenient:
// structural problems are fatal, but a single bad attribute never fails
// a whole-sequence load. Bad fields are replaced by a deterministic
// static fallback and reported as ConversionIssues for the caller to
// surface. Untyped legacy dictionaries never travel past this package.
package codec

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Sentinel errors. Wrap these to add context; check with errors.Is.
var (
	// ErrInvalidInput indicates the caller passed an absent or empty
	// required argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidBeat indicates a legacy dictionary failed structural
	// validation and was rejected before conversion.
	ErrInvalidBeat = errors.New("invalid legacy beat")
)

// Legacy dictionary keys.
const (
	keyBeat        = "beat"
	keyLetter      = "letter"
	keyStartPos    = "start_pos"
	keyEndPos      = "end_pos"
	keyTiming      = "timing"
	keyDirection   = "direction"
	keyBlueAttrs   = "blue_attributes"
	keyRedAttrs    = "red_attributes"
	keySeqStartPos = "sequence_start_position"
	keyMotionType  = "motion_type"
	keyStartLoc    = "start_loc"
	keyEndLoc      = "end_loc"
	keyStartOri    = "start_ori"
	keyEndOri      = "end_ori"
	keyPropRotDir  = "prop_rot_dir"
	keyTurns       = "turns"
)

// dictString reads a string value from a legacy dictionary.
func dictString(dict map[string]any, key string) (string, bool) {
	v, ok := dict[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// dictMap reads a nested mapping from a legacy dictionary.
func dictMap(dict map[string]any, key string) (map[string]any, bool) {
	v, ok := dict[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// asNumber coerces the numeric representations that show up in legacy
// files: JSON decodes turns as float64, but hand-built dictionaries and
// json.Number decoders also occur.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
