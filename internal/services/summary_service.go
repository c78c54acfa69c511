package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Sugamrai0/AIML/internal/models"
	"github.com/Sugamrai0/AIML/internal/transformer/summarize"
)

// ExtractiveSummaryService implements SummaryService with the sentence-based
// summarize transformer. No external model is called.
type ExtractiveSummaryService struct {
	transformer *summarize.SummarizeTransformer
	minLength   int
	log         logrus.FieldLogger
}

// NewExtractiveSummaryService rejects texts shorter than minLength runes.
func NewExtractiveSummaryService(transformer *summarize.SummarizeTransformer, minLength int, logger logrus.FieldLogger) *ExtractiveSummaryService {
	return &ExtractiveSummaryService{
		transformer: transformer,
		minLength:   minLength,
		log:         logger,
	}
}

func (s *ExtractiveSummaryService) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text cannot be empty", models.ErrValidation)
	}
	if n := utf8.RuneCountInString(text); n < s.minLength {
		return "", fmt.Errorf("%w: text too short for meaningful summarization (minimum %d characters)", models.ErrValidation, s.minLength)
	}

	summary, err := s.transformer.Transform(ctx, text)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"input_len":   len(text),
		"summary_len": len(summary),
	}).Debug("text summarized")
	return summary, nil
}

// SummarizeDocument summarizes content and labels it with the file type
// taken from filename.
func (s *ExtractiveSummaryService) SummarizeDocument(ctx context.Context, filename, content string) (string, error) {
	summary, err := s.Summarize(ctx, content)
	if err != nil {
		return "", err
	}

	fileType := "DOCUMENT"
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		fileType = strings.ToUpper(ext)
	}
	return fmt.Sprintf("**Document Summary (%s): %s**\n\n%s\n\n*Document processed using AI-powered extraction and summarization algorithms.*",
		fileType, filename, summary), nil
}

var _ SummaryService = (*ExtractiveSummaryService)(nil)
