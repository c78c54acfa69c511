package services

import (
	"context"
	"fmt"

	"github.com/Sugamrai0/AIML/internal/models"
)

// NoopSummaryService is installed when summarization is disabled in config.
type NoopSummaryService struct{}

func (s *NoopSummaryService) Summarize(ctx context.Context, text string) (string, error) {
	return "", fmt.Errorf("%w: summarization", models.ErrDisabled)
}

func (s *NoopSummaryService) SummarizeDocument(ctx context.Context, filename, content string) (string, error) {
	return "", fmt.Errorf("%w: summarization", models.ErrDisabled)
}

// NoopQAService is installed when document Q&A is disabled in config.
type NoopQAService struct{}

func (s *NoopQAService) Ask(ctx context.Context, question string) (*models.QAResponse, error) {
	return nil, fmt.Errorf("%w: document Q&A", models.ErrDisabled)
}

func (s *NoopQAService) Documents() []models.Document {
	return []models.Document{}
}

func NewNoopSummaryService() SummaryService {
	return &NoopSummaryService{}
}

func NewNoopQAService() QuestionAnswerer {
	return &NoopQAService{}
}
