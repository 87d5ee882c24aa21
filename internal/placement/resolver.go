package placement

import (
	"strings"

	"github.com/kinetic-notation/backend/internal/models"
)

// ResolveKey computes the placement key for an arrow and selects the
// most specific key actually present in the table.
//
// Candidate keys, most to least specific:
//
//	<motion>_to_<middle><letterSuffix>
//	<motion>_to_<middle>
//	<motion>
//
// where middle is "layer{1|2|3}_<ending>" from the classifier and the
// letter suffix marks dash letters ("W-" -> "_W_dash"). Resolution
// never fails: with no classification signal or table entry it
// degrades to the bare motion-type string, which is returned whether or
// not the table contains it. Callers must tolerate a miss on that
// terminal key. Pure function; the table is only read.
func ResolveKey(arrow *models.ArrowData, picto *models.PictographData, table map[string]models.Offset, cls Classifier) string {
	motionType := "static"
	if arrow != nil && arrow.Motion != nil {
		motionType = string(arrow.Motion.MotionType)
	}

	middle := middleKey(arrow, picto, cls)
	if middle == "" {
		return motionType
	}

	key := motionType + "_to_" + middle
	keyWithLetter := key + letterSuffix(picto)

	if _, ok := table[keyWithLetter]; ok {
		return keyWithLetter
	}
	if _, ok := table[key]; ok {
		return key
	}
	return motionType
}

// middleKey builds the layer/ending-category middle component in
// strict priority order: radial props, then non-radial, then the
// hybrid third layer. An unclassifiable ending position collapses the
// whole middle, and with it the specific candidates.
func middleKey(arrow *models.ArrowData, picto *models.PictographData, cls Classifier) string {
	ending := endingCategory(picto, cls)
	if ending == "" {
		return ""
	}

	switch {
	case cls.EndsWithRadialOri(picto):
		return "layer1_" + ending
	case cls.EndsWithNonRadialOri(picto):
		return "layer2_" + ending
	case cls.EndsWithLayer3(picto):
		// In the hybrid state the arrow's own end-orientation qualifies
		// the ending category before the layer prefix is applied.
		return "layer3_" + MotionEndOriKey(arrow, picto, cls) + ending
	default:
		return ""
	}
}

// endingCategory returns whichever of alpha/beta/gamma the classifier
// reports for the pictograph's ending position. First match wins.
func endingCategory(picto *models.PictographData, cls Classifier) string {
	switch {
	case cls.EndsWithAlpha(picto):
		return "alpha"
	case cls.EndsWithBeta(picto):
		return "beta"
	case cls.EndsWithGamma(picto):
		return "gamma"
	default:
		return ""
	}
}

// MotionEndOriKey returns the orientation-layer qualifier for an arrow
// in a hybrid pictograph: "radial_" for an in/out end orientation,
// "nonradial_" for clock/counter, and "" when the pictograph is not in
// the hybrid state. The token is only ever incorporated into the
// ending category, never combined independently.
func MotionEndOriKey(arrow *models.ArrowData, picto *models.PictographData, cls Classifier) string {
	if !cls.EndsWithLayer3(picto) {
		return ""
	}
	if arrow == nil || arrow.Motion == nil {
		return ""
	}
	if arrow.Motion.EndOri.IsRadial() {
		return "radial_"
	}
	return "nonradial_"
}

// letterSuffix renders the pictograph letter for key building. A
// trailing dash marks a distinguished letter category used by part of
// the notation alphabet and becomes an explicit "_dash" marker.
func letterSuffix(picto *models.PictographData) string {
	if picto == nil || picto.Letter == "" {
		return ""
	}
	if strings.HasSuffix(picto.Letter, "-") {
		return "_" + strings.TrimSuffix(picto.Letter, "-") + "_dash"
	}
	return "_" + picto.Letter
}
