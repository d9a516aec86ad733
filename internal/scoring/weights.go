// Package scoring combines section results into an overall score and computes the
// document-wide keyword and metric analyses.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-ats/internal/types"
)

// Section importance weights. They sum to 1.
const (
	personalInfoWeight   = 0.25
	experienceWeight     = 0.35
	skillsWeight         = 0.25
	educationWeight      = 0.10
	certificationsWeight = 0.05
)

// Weights maps each section to its share of the overall score.
type Weights map[types.Section]float64

// DefaultWeights returns the canonical weighting.
func DefaultWeights() Weights {
	return Weights{
		types.SectionPersonalInfo:   personalInfoWeight,
		types.SectionExperience:     experienceWeight,
		types.SectionSkills:         skillsWeight,
		types.SectionEducation:      educationWeight,
		types.SectionCertifications: certificationsWeight,
	}
}

// WeightsError reports an unusable weighting.
type WeightsError struct {
	Message string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

// Validate checks that every section has a non-negative weight and that the weights sum to 1.
func (w Weights) Validate() error {
	sum := 0.0
	for _, s := range types.Sections() {
		v, ok := w[s]
		if !ok {
			return &WeightsError{Message: fmt.Sprintf("no weight for section %s", s)}
		}
		if v < 0 || math.IsNaN(v) {
			return &WeightsError{Message: fmt.Sprintf("weight for %s must be non-negative", s)}
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		return &WeightsError{Message: fmt.Sprintf("weights sum to %.4f, want 1", sum)}
	}
	return nil
}

// The canonical table is checked once at startup.
func init() {
	if err := DefaultWeights().Validate(); err != nil {
		panic(err)
	}
}

// Overall returns round(clamp(sum(score * weight), 0, 100)). Sections absent from results
// contribute nothing.
func Overall(results map[types.Section]types.SectionAnalysis, w Weights) int {
	total := 0.0
	for _, s := range types.Sections() {
		res, ok := results[s]
		if !ok {
			continue
		}
		total += float64(res.Score) * w[s]
	}
	if math.IsNaN(total) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, total))))
}
