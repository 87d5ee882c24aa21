package codec

import (
	"github.com/kinetic-notation/backend/internal/models"
)

// Sanity range for the turns attribute. Values outside it are almost
// certainly corrupt, but legacy files are not rejected over them.
const (
	minTurns = 0
	maxTurns = 10
)

// ValidateBeat checks the structural soundness of an ordinary legacy
// beat dictionary. Missing or malformed *_attributes mappings are
// fatal; a missing or empty letter is only a warning, matching legacy
// leniency (the letter defaults to "" downstream). Pure function.
func ValidateBeat(dict map[string]any) models.ValidationResult {
	result := models.ValidationResult{IsValid: true}

	if len(dict) == 0 {
		result.AddError("beat dictionary is empty")
		return result
	}

	if letter, ok := dictString(dict, keyLetter); !ok || letter == "" {
		result.AddWarning("letter is missing or empty")
	}
	for _, key := range []string{keyStartPos, keyEndPos} {
		if _, ok := dictString(dict, key); !ok {
			result.AddWarning("%s is missing", key)
		}
	}

	validateAttributes(dict, keyBlueAttrs, &result)
	validateAttributes(dict, keyRedAttrs, &result)

	return result
}

// ValidateStartPosition checks a legacy start-position dictionary
// (the distinguished beat-zero variant). Pure function.
func ValidateStartPosition(dict map[string]any) models.ValidationResult {
	result := models.ValidationResult{IsValid: true}

	if len(dict) == 0 {
		result.AddError("start position dictionary is empty")
		return result
	}

	if _, ok := dictString(dict, keySeqStartPos); !ok {
		result.AddWarning("%s is missing", keySeqStartPos)
	}
	if _, ok := dictString(dict, keyEndPos); !ok {
		result.AddWarning("%s is missing", keyEndPos)
	}

	validateAttributes(dict, keyBlueAttrs, &result)
	validateAttributes(dict, keyRedAttrs, &result)

	return result
}

// validateAttributes checks one color's attribute mapping. Absence or a
// non-mapping shape is fatal; unknown enum strings and out-of-range
// turns are warnings handled by the converter's fallback.
func validateAttributes(dict map[string]any, key string, result *models.ValidationResult) {
	raw, present := dict[key]
	if !present {
		result.AddError("%s is missing", key)
		return
	}

	attrs, ok := raw.(map[string]any)
	if !ok {
		result.AddError("%s is not a mapping", key)
		return
	}

	if s, ok := dictString(attrs, keyMotionType); ok {
		if _, known := models.ParseMotionType(s); !known {
			result.AddWarning("%s: unknown motion_type %q", key, s)
		}
	}
	for _, oriKey := range []string{keyStartOri, keyEndOri} {
		if s, ok := dictString(attrs, oriKey); ok {
			if _, known := models.ParseOrientation(s); !known {
				result.AddWarning("%s: unknown %s %q", key, oriKey, s)
			}
		}
	}
	for _, locKey := range []string{keyStartLoc, keyEndLoc} {
		if s, ok := dictString(attrs, locKey); ok {
			if _, known := models.ParseLocation(s); !known {
				result.AddWarning("%s: unknown %s %q", key, locKey, s)
			}
		}
	}
	if s, ok := dictString(attrs, keyPropRotDir); ok {
		if _, known := models.ParseRotationDirection(s); !known {
			result.AddWarning("%s: unknown prop_rot_dir %q", key, s)
		}
	}

	if raw, present := attrs[keyTurns]; present {
		if turns, ok := asNumber(raw); !ok {
			result.AddWarning("%s: turns is not numeric", key)
		} else if turns < minTurns || turns > maxTurns {
			result.AddWarning("%s: turns %.2f outside sanity range [%d, %d]", key, turns, minTurns, maxTurns)
		}
	}
}
