package placement

import (
	"testing"

	"github.com/kinetic-notation/backend/internal/models"
)

// stubClassifier gives tests full control over every predicate.
type stubClassifier struct {
	alpha, beta, gamma        bool
	layer3, radial, nonRadial bool
}

func (s stubClassifier) EndsWithAlpha(*models.PictographData) bool        { return s.alpha }
func (s stubClassifier) EndsWithBeta(*models.PictographData) bool         { return s.beta }
func (s stubClassifier) EndsWithGamma(*models.PictographData) bool        { return s.gamma }
func (s stubClassifier) EndsWithLayer3(*models.PictographData) bool       { return s.layer3 }
func (s stubClassifier) EndsWithRadialOri(*models.PictographData) bool    { return s.radial }
func (s stubClassifier) EndsWithNonRadialOri(*models.PictographData) bool { return s.nonRadial }

func proArrow() *models.ArrowData {
	return &models.ArrowData{
		Color: models.ColorBlue,
		Motion: &models.MotionData{
			MotionType: models.MotionPro,
			EndOri:     models.OrientationIn,
		},
	}
}

func TestResolveKeyPriorityOrdering(t *testing.T) {
	// Table contains only the middle candidate: neither the
	// letter-suffixed key nor the bare motion type may win.
	table := map[string]models.Offset{
		"pro_to_layer1_alpha": {X: 10, Y: -5},
	}
	picto := &models.PictographData{Letter: "A"}
	cls := stubClassifier{alpha: true, radial: true}

	key := ResolveKey(proArrow(), picto, table, cls)
	if key != "pro_to_layer1_alpha" {
		t.Errorf("Expected pro_to_layer1_alpha, got %s", key)
	}
}

func TestResolveKeyPrefersLetterSuffixedKey(t *testing.T) {
	table := map[string]models.Offset{
		"pro_to_layer1_alpha_A": {X: 1, Y: 1},
		"pro_to_layer1_alpha":   {X: 2, Y: 2},
		"pro":                   {X: 3, Y: 3},
	}
	picto := &models.PictographData{Letter: "A"}
	cls := stubClassifier{alpha: true, radial: true}

	key := ResolveKey(proArrow(), picto, table, cls)
	if key != "pro_to_layer1_alpha_A" {
		t.Errorf("Expected the letter-suffixed key, got %s", key)
	}
}

func TestResolveKeyEmptyTableTerminatesAtMotionType(t *testing.T) {
	picto := &models.PictographData{Letter: "A"}
	cls := stubClassifier{alpha: true, radial: true}

	key := ResolveKey(proArrow(), picto, map[string]models.Offset{}, cls)
	if key != "pro" {
		t.Errorf("Expected bare motion type pro, got %s", key)
	}
}

func TestResolveKeyDashLetterSuffix(t *testing.T) {
	table := map[string]models.Offset{
		"pro_to_layer1_alpha_W_dash": {X: 4, Y: 4},
		"pro_to_layer1_alpha_W":      {X: 5, Y: 5},
	}
	picto := &models.PictographData{Letter: "W-"}
	cls := stubClassifier{alpha: true, radial: true}

	key := ResolveKey(proArrow(), picto, table, cls)
	if key != "pro_to_layer1_alpha_W_dash" {
		t.Errorf("Expected the dash-marked key, got %s", key)
	}
}

func TestResolveKeyNoMotionIsStatic(t *testing.T) {
	key := ResolveKey(&models.ArrowData{Color: models.ColorRed}, nil, nil, stubClassifier{})
	if key != "static" {
		t.Errorf("Expected static, got %s", key)
	}

	key = ResolveKey(nil, nil, nil, stubClassifier{})
	if key != "static" {
		t.Errorf("Expected static for nil arrow, got %s", key)
	}
}

func TestResolveKeyNoEndingCategoryCollapsesMiddle(t *testing.T) {
	// Radial layer but no alpha/beta/gamma match: the middle collapses
	// and only the bare motion type remains, even though the table has
	// more specific keys.
	table := map[string]models.Offset{
		"pro_to_layer1_alpha": {X: 1, Y: 1},
	}
	cls := stubClassifier{radial: true}

	key := ResolveKey(proArrow(), &models.PictographData{Letter: "A"}, table, cls)
	if key != "pro" {
		t.Errorf("Expected pro, got %s", key)
	}
}

func TestResolveKeyLayerPriority(t *testing.T) {
	tests := []struct {
		name string
		cls  stubClassifier
		want string
	}{
		{"radial wins", stubClassifier{alpha: true, radial: true, nonRadial: true, layer3: true}, "pro_to_layer1_alpha"},
		{"nonradial next", stubClassifier{alpha: true, nonRadial: true, layer3: true}, "pro_to_layer2_alpha"},
		{"layer3 last", stubClassifier{alpha: true, layer3: true}, "pro_to_layer3_radial_alpha"},
	}

	for _, tt := range tests {
		table := map[string]models.Offset{tt.want: {}}
		key := ResolveKey(proArrow(), &models.PictographData{}, table, tt.cls)
		if key != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, key)
		}
	}
}

func TestMotionEndOriKey(t *testing.T) {
	arrow := proArrow() // ends in, radial

	if got := MotionEndOriKey(arrow, nil, stubClassifier{layer3: true}); got != "radial_" {
		t.Errorf("Expected radial_, got %q", got)
	}

	arrow.Motion.EndOri = models.OrientationClock
	if got := MotionEndOriKey(arrow, nil, stubClassifier{layer3: true}); got != "nonradial_" {
		t.Errorf("Expected nonradial_, got %q", got)
	}

	// Not hybrid: no qualifier at all.
	if got := MotionEndOriKey(arrow, nil, stubClassifier{}); got != "" {
		t.Errorf("Expected empty qualifier, got %q", got)
	}
}
