package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Sugamrai0/AIML/internal/learningpath"
	"github.com/Sugamrai0/AIML/internal/models"
)

// LearningPathService validates requests and runs the generation pipeline.
type LearningPathService struct {
	defaultLevel      string
	defaultCommitment string
	log               logrus.FieldLogger
}

func NewLearningPathService(defaultLevel, defaultCommitment string, logger logrus.FieldLogger) *LearningPathService {
	if defaultLevel == "" {
		defaultLevel = string(models.DefaultExperienceLevel)
	}
	if defaultCommitment == "" {
		defaultCommitment = models.DefaultTimeCommitment
	}
	return &LearningPathService{
		defaultLevel:      defaultLevel,
		defaultCommitment: defaultCommitment,
		log:               logger,
	}
}

func (s *LearningPathService) Suggest(ctx context.Context, params SuggestParams) (*models.LearningPath, error) {
	if strings.TrimSpace(params.Goals) == "" {
		return nil, fmt.Errorf("%w: learning goals cannot be empty", models.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	level := params.ExperienceLevel
	if level == "" {
		level = s.defaultLevel
	}
	commitment := params.TimeCommitment
	if commitment == "" {
		commitment = s.defaultCommitment
	}

	path, err := learningpath.Generate(learningpath.Request{
		Goals:           params.Goals,
		ExperienceLevel: models.ExperienceLevel(level),
		TimeCommitment:  commitment,
	})
	if err != nil {
		return nil, fmt.Errorf("generate learning path: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"focus_areas":    path.FocusAreas,
		"difficulty":     path.Difficulty,
		"phases":         len(path.Phases),
		"total_duration": path.TotalDuration,
	}).Info("learning path generated")
	return path, nil
}

var _ LearningPathSuggester = (*LearningPathService)(nil)
