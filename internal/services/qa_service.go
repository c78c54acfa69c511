package services

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Sugamrai0/AIML/internal/models"
)

//go:embed data/demo_ai_document.txt
var demoDocument string

const demoDocumentName = "demo_ai_document.txt"

// DemoDocument returns the built-in document used when none is configured.
func DemoDocument() models.Document {
	return models.Document{
		Filename:   demoDocumentName,
		Content:    demoDocument,
		UploadTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Size:       int64(len(demoDocument)),
		Processed:  true,
	}
}

const (
	answerAI = "Based on the document content, artificial intelligence (AI) refers to the simulation of human intelligence in machines that are programmed to think and learn like humans. " +
		"The document indicates that AI systems can perform tasks that typically require human intelligence, such as visual perception, speech recognition, decision-making, and language translation."
	answerML = "According to the document, machine learning is a subset of artificial intelligence that enables systems to automatically learn and improve from experience without being explicitly programmed. " +
		"It focuses on the development of computer programs that can access data and use it to learn for themselves."
	answerFlowise = "The document describes Flowise as a visual AI workflow builder that allows users to create complex AI applications using a drag-and-drop interface. " +
		"It integrates with LangChain and various LLM providers to build conversational AI agents and RAG applications."
	answerHowItWorks = "Based on the document analysis, the system works through a microservices architecture where different AI services (text summarization, document Q&A, and learning path suggestions) communicate through an API gateway. " +
		"Each service integrates with Flowise for AI processing, which in turn connects to various LLM providers."
	answerImplementation = "The document outlines implementation through containerized microservices using Docker, with each service running on separate ports. " +
		"The implementation uses a lightweight web framework for the HTTP layer, LangChain for AI orchestration, and Flowise for visual workflow management."
	answerBenefits = "According to the document, the key benefits include: modular architecture for easy scaling, reusable AI components, visual workflow design through Flowise, " +
		"support for multiple LLM providers, and simplified integration with existing applications through REST APIs."
)

// DocumentQAService answers questions about a single document by keyword
// matching. It holds no mutable state after construction.
type DocumentQAService struct {
	doc models.Document
	log logrus.FieldLogger
}

func NewDocumentQAService(doc models.Document, logger logrus.FieldLogger) *DocumentQAService {
	return &DocumentQAService{doc: doc, log: logger}
}

func (s *DocumentQAService) Ask(ctx context.Context, question string) (*models.QAResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question cannot be empty", models.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.doc.Content == "" {
		return nil, fmt.Errorf("%w: no document uploaded, please upload a document first", models.ErrValidation)
	}

	answer := answerFor(question, s.doc)
	s.log.WithFields(logrus.Fields{
		"document":     s.doc.Filename,
		"question_len": len(question),
	}).Debug("question answered")

	return &models.QAResponse{
		Question: question,
		Answer:   answer,
		Sources:  []string{s.doc.Filename},
	}, nil
}

// Documents lists the documents questions are answered against.
func (s *DocumentQAService) Documents() []models.Document {
	if s.doc.Content == "" {
		return []models.Document{}
	}
	return []models.Document{s.doc}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// answerFor picks the first matching question family. A family that matches
// but has no specific answer falls through to the generic answer rather than
// trying the next family.
func answerFor(question string, doc models.Document) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "what", "what is", "define"):
		switch {
		case containsAny(q, "ai", "artificial intelligence"):
			return answerAI
		case containsAny(q, "machine learning", "ml"):
			return answerML
		case strings.Contains(q, "flowise"):
			return answerFlowise
		}
	case containsAny(q, "how", "how to", "explain"):
		switch {
		case strings.Contains(q, "work"):
			return answerHowItWorks
		case strings.Contains(q, "implement"):
			return answerImplementation
		}
	case containsAny(q, "benefits", "advantages", "why"):
		return answerBenefits
	case containsAny(q, "summary", "summarize"):
		parts := strings.Split(doc.Content, ". ")
		if len(parts) > 3 {
			parts = parts[:3]
		}
		return fmt.Sprintf("Here's a summary of the key points from the document: %s. "+
			"The document provides comprehensive information about AI microservices architecture and implementation strategies.",
			strings.Join(parts, ". "))
	}

	return fmt.Sprintf("Based on my analysis of the document %q (containing approximately %d words), I can provide insights related to your question: %q. \n\n"+
		"The document contains relevant information about AI/ML technologies, microservices architecture, and implementation patterns. "+
		"The content suggests approaches to building scalable AI applications using modern frameworks and tools.\n\n"+
		"For more specific answers, try asking about particular topics mentioned in the document such as AI technologies, system architecture, or implementation details.",
		doc.Filename, len(strings.Fields(doc.Content)), question)
}

var _ QuestionAnswerer = (*DocumentQAService)(nil)
