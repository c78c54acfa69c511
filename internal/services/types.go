package services

import (
	"context"

	"github.com/Sugamrai0/AIML/internal/models"
)

// SuggestParams are the caller inputs for a learning path. Empty optional
// fields take the configured defaults.
type SuggestParams struct {
	Goals                  string
	ExperienceLevel        string
	TimeCommitment         string
	PreferredLearningStyle string
}

// LearningPathSuggester generates learning paths.
type LearningPathSuggester interface {
	Suggest(ctx context.Context, params SuggestParams) (*models.LearningPath, error)
}

// QuestionAnswerer answers questions about the current document.
type QuestionAnswerer interface {
	Ask(ctx context.Context, question string) (*models.QAResponse, error)
	Documents() []models.Document
}

type SummaryService interface {
	Summarize(ctx context.Context, text string) (string, error)
	SummarizeDocument(ctx context.Context, filename, content string) (string, error)
}
