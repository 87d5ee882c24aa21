// Package placement derives the lookup keys used to fetch pre-computed
// visual placement offsets for rendered arrows.
package placement

import (
	"strings"

	"github.com/kinetic-notation/backend/internal/models"
)

// Classifier answers boolean questions about a completed pictograph.
// The rendering engine supplies its own implementation; GridClassifier
// is a default good enough for the grid-position naming scheme used by
// legacy files.
type Classifier interface {
	EndsWithAlpha(p *models.PictographData) bool
	EndsWithBeta(p *models.PictographData) bool
	EndsWithGamma(p *models.PictographData) bool
	EndsWithLayer3(p *models.PictographData) bool
	EndsWithRadialOri(p *models.PictographData) bool
	EndsWithNonRadialOri(p *models.PictographData) bool
}

// GridClassifier classifies pictographs from their end-position names
// ("alpha1".."gamma8") and arrow end orientations. Stateless.
type GridClassifier struct{}

// NewGridClassifier returns the default classifier.
func NewGridClassifier() *GridClassifier {
	return &GridClassifier{}
}

func (GridClassifier) EndsWithAlpha(p *models.PictographData) bool {
	return p != nil && strings.HasPrefix(p.EndPos, "alpha")
}

func (GridClassifier) EndsWithBeta(p *models.PictographData) bool {
	return p != nil && strings.HasPrefix(p.EndPos, "beta")
}

func (GridClassifier) EndsWithGamma(p *models.PictographData) bool {
	return p != nil && strings.HasPrefix(p.EndPos, "gamma")
}

// EndsWithLayer3 reports the hybrid state: one arrow ends radial and
// the other non-radial.
func (c GridClassifier) EndsWithLayer3(p *models.PictographData) bool {
	radial, nonRadial := c.countEndOrientations(p)
	return radial > 0 && nonRadial > 0
}

// EndsWithRadialOri reports whether every arrow ends with a radial
// (in/out) orientation.
func (c GridClassifier) EndsWithRadialOri(p *models.PictographData) bool {
	radial, nonRadial := c.countEndOrientations(p)
	return radial > 0 && nonRadial == 0
}

// EndsWithNonRadialOri reports whether every arrow ends with a
// non-radial (clock/counter) orientation.
func (c GridClassifier) EndsWithNonRadialOri(p *models.PictographData) bool {
	radial, nonRadial := c.countEndOrientations(p)
	return nonRadial > 0 && radial == 0
}

func (GridClassifier) countEndOrientations(p *models.PictographData) (radial, nonRadial int) {
	if p == nil {
		return 0, 0
	}
	for _, arrow := range p.Arrows {
		if arrow == nil || arrow.Motion == nil {
			continue
		}
		if arrow.Motion.EndOri.IsRadial() {
			radial++
		} else {
			nonRadial++
		}
	}
	return radial, nonRadial
}
