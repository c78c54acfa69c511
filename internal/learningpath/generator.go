// Package learningpath turns free-text learning goals into a multi-phase
// learning path.
//
// The pipeline is classify → compose → aggregate → render. Every step is a
// pure function over immutable package data, so Generate is deterministic and
// safe to call from any number of goroutines without locking.
package learningpath

import (
	"fmt"
	"strings"

	"github.com/Sugamrai0/AIML/internal/models"
)

// Request carries the caller inputs. Empty optional fields take the package
// defaults.
type Request struct {
	Goals           string
	ExperienceLevel models.ExperienceLevel
	TimeCommitment  string
}

// Generate runs the full pipeline. The only error a validated request can
// produce is a catalog duration that fails to parse, which is an internal
// defect wrapping models.ErrMalformedDuration.
func Generate(req Request) (*models.LearningPath, error) {
	if strings.TrimSpace(req.Goals) == "" {
		return nil, fmt.Errorf("%w: learning goals cannot be empty", models.ErrValidation)
	}
	level := req.ExperienceLevel
	if level == "" {
		level = models.DefaultExperienceLevel
	}
	commitment := req.TimeCommitment
	if commitment == "" {
		commitment = models.DefaultTimeCommitment
	}

	tags := Classify(req.Goals)
	phases := Compose(level, tags)
	total, err := TotalDuration(phases)
	if err != nil {
		return nil, fmt.Errorf("aggregate durations: %w", err)
	}

	return &models.LearningPath{
		LearningPath:  Render(tags, level, commitment, phases, total),
		Phases:        phases,
		TotalDuration: total,
		Difficulty:    string(level),
		FocusAreas:    tags,
	}, nil
}
