package codec

import (
	"testing"

	"github.com/kinetic-notation/backend/internal/models"
)

func proMotion() *models.MotionData {
	return &models.MotionData{
		MotionType: models.MotionPro,
		StartLoc:   models.LocationNorth,
		EndLoc:     models.LocationEast,
		StartOri:   models.OrientationIn,
		EndOri:     models.OrientationOut,
		PropRotDir: models.RotationClockwise,
		Turns:      1.5,
	}
}

func TestToLegacyAttributes(t *testing.T) {
	attrs := ToLegacyAttributes(proMotion())

	if attrs["motion_type"] != "pro" {
		t.Errorf("Expected motion_type pro, got %v", attrs["motion_type"])
	}
	if attrs["start_loc"] != "n" || attrs["end_loc"] != "e" {
		t.Errorf("Expected locs n/e, got %v/%v", attrs["start_loc"], attrs["end_loc"])
	}
	if attrs["prop_rot_dir"] != "cw" {
		t.Errorf("Expected prop_rot_dir cw, got %v", attrs["prop_rot_dir"])
	}
	if attrs["turns"] != 1.5 {
		t.Errorf("Expected turns 1.5, got %v", attrs["turns"])
	}
}

func TestToLegacyAttributesNilMotionIsCanonicalDefault(t *testing.T) {
	attrs := ToLegacyAttributes(nil)

	want := map[string]any{
		"motion_type": "static", "start_ori": "in", "end_ori": "in",
		"prop_rot_dir": "no_rot", "start_loc": "s", "end_loc": "s",
	}
	for key, expected := range want {
		if attrs[key] != expected {
			t.Errorf("Expected %s=%v, got %v", key, expected, attrs[key])
		}
	}
	if turns, ok := asNumber(attrs["turns"]); !ok || turns != 0 {
		t.Errorf("Expected turns 0, got %v", attrs["turns"])
	}
}

func TestFromLegacyAttributesRoundTrip(t *testing.T) {
	motion, issues := FromLegacyAttributes(ToLegacyAttributes(proMotion()))
	if len(issues) != 0 {
		t.Fatalf("Expected no issues, got: %v", issues)
	}
	if motion != *proMotion() {
		t.Errorf("Round trip mismatch: got %+v", motion)
	}
}

func TestFromLegacyAttributesIntegerTurns(t *testing.T) {
	attrs := ToLegacyAttributes(proMotion())
	attrs["turns"] = 2 // legacy files carry both int and float turns

	motion, issues := FromLegacyAttributes(attrs)
	if len(issues) != 0 {
		t.Fatalf("Expected no issues, got: %v", issues)
	}
	if motion.Turns != 2.0 {
		t.Errorf("Expected turns 2.0, got %v", motion.Turns)
	}
}

func TestFromLegacyAttributesFallbackIsDeterministic(t *testing.T) {
	attrs := ToLegacyAttributes(proMotion())
	attrs["motion_type"] = "wiggle"

	motion, issues := FromLegacyAttributes(attrs)
	if len(issues) != 1 {
		t.Fatalf("Expected one issue, got: %v", issues)
	}
	// Never a partially-parsed hybrid: the other valid fields must not
	// leak through.
	if motion != FallbackMotion() {
		t.Errorf("Expected exact fallback record, got %+v", motion)
	}
}

func TestFromLegacyAttributesShiftIsNotAMotionType(t *testing.T) {
	attrs := ToLegacyAttributes(proMotion())
	attrs["motion_type"] = "shift" // category label, never wire data

	motion, issues := FromLegacyAttributes(attrs)
	if len(issues) != 1 {
		t.Fatalf("Expected one issue, got: %v", issues)
	}
	if motion != FallbackMotion() {
		t.Errorf("Expected fallback, got %+v", motion)
	}
}

func TestFromLegacyAttributesMissingFieldFallsBack(t *testing.T) {
	attrs := ToLegacyAttributes(proMotion())
	delete(attrs, "start_ori")

	motion, issues := FromLegacyAttributes(attrs)
	if len(issues) != 1 {
		t.Fatalf("Expected one issue, got: %v", issues)
	}
	if motion != FallbackMotion() {
		t.Errorf("Expected fallback, got %+v", motion)
	}
}

func TestExtractMotion(t *testing.T) {
	blue := proMotion()
	picto := &models.PictographData{
		Letter: "A",
		Arrows: map[models.Color]*models.ArrowData{
			models.ColorBlue: {Color: models.ColorBlue, Motion: blue},
		},
	}

	if got := ExtractMotion(models.ColorBlue, picto); got != blue {
		t.Errorf("Expected blue motion, got %+v", got)
	}
	if got := ExtractMotion(models.ColorRed, picto); got != nil {
		t.Errorf("Expected nil for absent red arrow, got %+v", got)
	}
	if got := ExtractMotion(models.ColorBlue, nil); got != nil {
		t.Errorf("Expected nil for nil pictograph, got %+v", got)
	}

	picto.IsBlank = true
	if got := ExtractMotion(models.ColorBlue, picto); got != nil {
		t.Errorf("Expected nil for blank pictograph, got %+v", got)
	}
}

func TestDetermineTimingAndDirection(t *testing.T) {
	same := proMotion()
	opposite := proMotion()
	opposite.PropRotDir = models.RotationCounterClockwise

	tests := []struct {
		name          string
		blue, red     *models.MotionData
		wantTiming    string
		wantDirection string
	}{
		{"both nil", nil, nil, "tog", "same"},
		{"blue only", same, nil, "tog", "same"},
		{"matching pair", same, proMotion(), "tog", "same"},
		{"rotation differs", same, opposite, "tog", "opp"},
		{"motion type differs", same, &models.MotionData{MotionType: models.MotionAnti, PropRotDir: models.RotationClockwise}, "tog", "opp"},
	}

	for _, tt := range tests {
		timing, direction := DetermineTimingAndDirection(tt.blue, tt.red)
		if timing != tt.wantTiming || direction != tt.wantDirection {
			t.Errorf("%s: expected (%s, %s), got (%s, %s)",
				tt.name, tt.wantTiming, tt.wantDirection, timing, direction)
		}
	}
}
