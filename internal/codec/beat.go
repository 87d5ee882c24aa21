package codec

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kinetic-notation/backend/internal/models"
)

// StartPositionDuration is the canonical duration for beat-zero start
// positions. Two diverging legacy converter copies used 1.0 and 0.0;
// 1.0 is the documented choice here, matching ordinary beats.
const StartPositionDuration = 1.0

// DefaultStartPosition is the grid position used when a start-position
// beat carries no glyph data.
const DefaultStartPosition = "alpha1"

// BeatToLegacy converts an ordinary beat to its legacy dictionary
// shape. Fails only when beat is nil.
func BeatToLegacy(beat *models.BeatData, beatNumber int) (map[string]any, error) {
	if beat == nil {
		return nil, errors.Wrap(ErrInvalidInput, "no beat to convert")
	}

	startPos, endPos := "", ""
	if beat.Glyph != nil {
		startPos, endPos = beat.Glyph.StartPos, beat.Glyph.EndPos
	}

	blue := ExtractMotion(models.ColorBlue, beat.Pictograph)
	red := ExtractMotion(models.ColorRed, beat.Pictograph)
	timing, direction := DetermineTimingAndDirection(blue, red)

	return map[string]any{
		keyBeat:      beatNumber,
		keyLetter:    beat.Letter,
		keyStartPos:  startPos,
		keyEndPos:    endPos,
		keyTiming:    timing,
		keyDirection: direction,
		keyBlueAttrs: ToLegacyAttributes(blue),
		keyRedAttrs:  ToLegacyAttributes(red),
	}, nil
}

// StartPositionToLegacy converts a beat-zero start position to its
// legacy dictionary shape. When glyph data is absent both position
// fields default to "alpha1".
func StartPositionToLegacy(beat *models.BeatData) (map[string]any, error) {
	if beat == nil {
		return nil, errors.Wrap(ErrInvalidInput, "no start position to convert")
	}

	startPos, endPos := DefaultStartPosition, DefaultStartPosition
	if beat.Glyph != nil {
		if beat.Glyph.StartPos != "" {
			startPos = beat.Glyph.StartPos
		}
		if beat.Glyph.EndPos != "" {
			endPos = beat.Glyph.EndPos
		}
	}

	blue := ExtractMotion(models.ColorBlue, beat.Pictograph)
	red := ExtractMotion(models.ColorRed, beat.Pictograph)

	return map[string]any{
		keyBeat:        0,
		keySeqStartPos: startPos,
		keyEndPos:      endPos,
		keyBlueAttrs:   ToLegacyAttributes(blue),
		keyRedAttrs:    ToLegacyAttributes(red),
	}, nil
}

// LegacyToBeat converts an ordinary legacy beat dictionary into a
// BeatData. Structural validation failures are fatal and return
// ErrInvalidBeat carrying the joined error list. Everything else is
// recoverable: validator warnings and per-field parse failures become
// ConversionIssues and the conversion still produces a best-effort
// beat. The caller owns beat numbering; beatNumber is recorded as-is.
func LegacyToBeat(dict map[string]any, beatNumber int) (*models.BeatData, []models.ConversionIssue, error) {
	result := ValidateBeat(dict)
	if !result.IsValid {
		return nil, nil, errors.Wrap(ErrInvalidBeat, strings.Join(result.Errors, "; "))
	}

	issues := warningIssues(result.Warnings, beatNumber)

	blueAttrs, _ := dictMap(dict, keyBlueAttrs)
	redAttrs, _ := dictMap(dict, keyRedAttrs)
	blue, blueIssues := FromLegacyAttributes(blueAttrs)
	red, redIssues := FromLegacyAttributes(redAttrs)
	issues = append(issues, colorIssues(blueIssues, keyBlueAttrs, beatNumber)...)
	issues = append(issues, colorIssues(redIssues, keyRedAttrs, beatNumber)...)

	letter, _ := dictString(dict, keyLetter)
	startPos, _ := dictString(dict, keyStartPos)
	endPos, _ := dictString(dict, keyEndPos)

	timing, ok := dictString(dict, keyTiming)
	direction, okDir := dictString(dict, keyDirection)
	if !ok || !okDir {
		timing, direction = DetermineTimingAndDirection(&blue, &red)
	}

	beat := NewBeatBuilder().
		BeatNumber(beatNumber).
		Letter(letter).
		Duration(1.0).
		Motion(models.ColorBlue, &blue).
		Motion(models.ColorRed, &red).
		Glyph(startPos, endPos).
		Metadata(keyTiming, timing).
		Metadata(keyDirection, direction).
		Build()

	return &beat, issues, nil
}

// LegacyStartPositionToBeat converts a legacy start-position dictionary
// into the beat-zero BeatData, with metadata tagged is_start_position
// and the glyph populated from sequence_start_position/end_pos.
func LegacyStartPositionToBeat(dict map[string]any) (*models.BeatData, []models.ConversionIssue, error) {
	result := ValidateStartPosition(dict)
	if !result.IsValid {
		return nil, nil, errors.Wrap(ErrInvalidBeat, strings.Join(result.Errors, "; "))
	}

	issues := warningIssues(result.Warnings, 0)

	blueAttrs, _ := dictMap(dict, keyBlueAttrs)
	redAttrs, _ := dictMap(dict, keyRedAttrs)
	blue, blueIssues := FromLegacyAttributes(blueAttrs)
	red, redIssues := FromLegacyAttributes(redAttrs)
	issues = append(issues, colorIssues(blueIssues, keyBlueAttrs, 0)...)
	issues = append(issues, colorIssues(redIssues, keyRedAttrs, 0)...)

	startPos, _ := dictString(dict, keySeqStartPos)
	endPos, _ := dictString(dict, keyEndPos)

	beat := NewBeatBuilder().
		AsStartPosition().
		Duration(StartPositionDuration).
		Motion(models.ColorBlue, &blue).
		Motion(models.ColorRed, &red).
		Glyph(startPos, endPos).
		Build()

	return &beat, issues, nil
}

func warningIssues(warnings []string, beatNumber int) []models.ConversionIssue {
	issues := make([]models.ConversionIssue, 0, len(warnings))
	for _, w := range warnings {
		issues = append(issues, models.ConversionIssue{Beat: beatNumber, Reason: w})
	}
	return issues
}

func colorIssues(issues []models.ConversionIssue, attrsKey string, beatNumber int) []models.ConversionIssue {
	tagged := make([]models.ConversionIssue, 0, len(issues))
	for _, issue := range issues {
		issue.Beat = beatNumber
		issue.Field = attrsKey + "." + issue.Field
		tagged = append(tagged, issue)
	}
	return tagged
}
