package codec

import (
	"github.com/kinetic-notation/backend/internal/models"
)

// FallbackMotion returns the deterministic motion used when any legacy
// attribute fails to parse: a static south-to-south, in-to-in motion
// with no rotation and zero turns. Callers always receive this exact
// record, never a partially-parsed hybrid.
func FallbackMotion() models.MotionData {
	return models.MotionData{
		MotionType: models.MotionStatic,
		StartLoc:   models.LocationSouth,
		EndLoc:     models.LocationSouth,
		StartOri:   models.OrientationIn,
		EndOri:     models.OrientationIn,
		PropRotDir: models.RotationNone,
		Turns:      0,
	}
}

// ExtractMotion looks up a color's motion in a pictograph. Returns nil
// when the pictograph is absent or blank, or the color has no arrow.
func ExtractMotion(color models.Color, picto *models.PictographData) *models.MotionData {
	if picto == nil || picto.IsBlank {
		return nil
	}
	arrow := picto.Arrow(color)
	if arrow == nil {
		return nil
	}
	return arrow.Motion
}

// ToLegacyAttributes converts a motion to its flat legacy attribute
// representation. A nil motion yields the canonical static default.
func ToLegacyAttributes(motion *models.MotionData) map[string]any {
	if motion == nil {
		fb := FallbackMotion()
		motion = &fb
	}
	return map[string]any{
		keyMotionType: string(motion.MotionType),
		keyStartLoc:   string(motion.StartLoc),
		keyEndLoc:     string(motion.EndLoc),
		keyStartOri:   string(motion.StartOri),
		keyEndOri:     string(motion.EndOri),
		keyPropRotDir: string(motion.PropRotDir),
		keyTurns:      motion.Turns,
	}
}

// FromLegacyAttributes parses a legacy attribute mapping into a
// MotionData. Parsing never fails hard: if any field is missing or
// unrecognized the whole record collapses to FallbackMotion and each
// bad field is reported as a ConversionIssue. This is deliberate
// legacy-compatibility behavior, not an error to propagate.
func FromLegacyAttributes(attrs map[string]any) (models.MotionData, []models.ConversionIssue) {
	var issues []models.ConversionIssue
	bad := func(field, reason string) {
		issues = append(issues, models.ConversionIssue{Field: field, Reason: reason})
	}

	motion := models.MotionData{}

	if s, ok := dictString(attrs, keyMotionType); !ok {
		bad(keyMotionType, "missing")
	} else if mt, known := models.ParseMotionType(s); !known {
		bad(keyMotionType, "unknown value "+s)
	} else {
		motion.MotionType = mt
	}

	if s, ok := dictString(attrs, keyStartLoc); !ok {
		bad(keyStartLoc, "missing")
	} else if loc, known := models.ParseLocation(s); !known {
		bad(keyStartLoc, "unknown value "+s)
	} else {
		motion.StartLoc = loc
	}

	if s, ok := dictString(attrs, keyEndLoc); !ok {
		bad(keyEndLoc, "missing")
	} else if loc, known := models.ParseLocation(s); !known {
		bad(keyEndLoc, "unknown value "+s)
	} else {
		motion.EndLoc = loc
	}

	if s, ok := dictString(attrs, keyStartOri); !ok {
		bad(keyStartOri, "missing")
	} else if ori, known := models.ParseOrientation(s); !known {
		bad(keyStartOri, "unknown value "+s)
	} else {
		motion.StartOri = ori
	}

	if s, ok := dictString(attrs, keyEndOri); !ok {
		bad(keyEndOri, "missing")
	} else if ori, known := models.ParseOrientation(s); !known {
		bad(keyEndOri, "unknown value "+s)
	} else {
		motion.EndOri = ori
	}

	if s, ok := dictString(attrs, keyPropRotDir); !ok {
		bad(keyPropRotDir, "missing")
	} else if rd, known := models.ParseRotationDirection(s); !known {
		bad(keyPropRotDir, "unknown value "+s)
	} else {
		motion.PropRotDir = rd
	}

	if raw, present := attrs[keyTurns]; !present {
		bad(keyTurns, "missing")
	} else if turns, ok := asNumber(raw); !ok {
		bad(keyTurns, "not numeric")
	} else {
		motion.Turns = turns
	}

	if len(issues) > 0 {
		return FallbackMotion(), issues
	}
	return motion, nil
}

// DetermineTimingAndDirection derives the aggregate legacy timing and
// direction fields from a pair of motions. Direction is "same" when
// both motions share a motion type and rotation direction, "opp"
// otherwise. Timing is always "tog"; split-timing detection needs
// richer data than the legacy format carries, so this is a documented
// limitation rather than a bug.
func DetermineTimingAndDirection(blue, red *models.MotionData) (timing, direction string) {
	timing, direction = "tog", "same"
	if blue == nil || red == nil {
		return timing, direction
	}
	if blue.MotionType != red.MotionType || blue.PropRotDir != red.PropRotDir {
		direction = "opp"
	}
	return timing, direction
}
