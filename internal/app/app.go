package app

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Sugamrai0/AIML/internal/config"
	"github.com/Sugamrai0/AIML/internal/inputprocessor"
	"github.com/Sugamrai0/AIML/internal/models"
	"github.com/Sugamrai0/AIML/internal/services"
	"github.com/Sugamrai0/AIML/internal/transformer/summarize"
)

type App struct {
	Config *config.Config
	Logger *log.Logger

	InputProcessor inputprocessor.Processor

	// --- Initialized Services ---
	LearningPathService services.LearningPathSuggester
	TemplateService     *services.TemplateService
	QAService           services.QuestionAnswerer
	SummaryService      services.SummaryService
}

func NewApp(cfg *config.Config, inputProc inputprocessor.Processor) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{Config: cfg, InputProcessor: inputProc}
	app.initLogger()

	if err := app.initLearningPathServices(); err != nil {
		return nil, err
	}
	if err := app.initQAService(context.Background()); err != nil {
		return nil, err
	}
	if err := app.initSummaryService(); err != nil {
		return nil, err
	}

	app.Logger.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initLogger() {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	level, _ := log.ParseLevel(a.Config.Log.Level) // validated in NewApp
	logger.SetLevel(level)
	if a.Config.Log.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	a.Logger = logger
}

func (a *App) initLearningPathServices() error {
	a.LearningPathService = services.NewLearningPathService(
		a.Config.LearningPath.DefaultExperienceLevel,
		a.Config.LearningPath.DefaultTimeCommitment,
		a.Logger.WithField("service", "learning_path"),
	)

	templates, err := services.NewTemplateService()
	if err != nil {
		return fmt.Errorf("init template service: %w", err)
	}
	a.TemplateService = templates
	return nil
}

func (a *App) initQAService(ctx context.Context) error {
	if !a.Config.QA.Enabled {
		a.Logger.Warn("Document Q&A disabled by config.")
		a.QAService = services.NewNoopQAService()
		return nil
	}

	doc := services.DemoDocument()
	if path := a.Config.QA.DocumentPath; path != "" {
		res, err := a.InputProcessor.Process(ctx, path)
		if err != nil {
			return fmt.Errorf("init qa service: load document: %w", err)
		}
		if res.InputType != "file" && res.InputType != "url" {
			return fmt.Errorf("init qa service: qa.document_path %q is not a readable file or URL", path)
		}
		doc = models.Document{
			Filename:   res.Filename,
			Content:    res.Body,
			UploadTime: res.Mtime,
			Size:       res.Size,
			Processed:  true,
		}
		if doc.UploadTime.IsZero() {
			doc.UploadTime = time.Now().UTC()
		}
	}

	a.Logger.WithField("document", doc.Filename).Info("Document Q&A ready.")
	a.QAService = services.NewDocumentQAService(doc, a.Logger.WithField("service", "qa"))
	return nil
}

func (a *App) initSummaryService() error {
	if !a.Config.Summarization.Enabled {
		a.Logger.Warn("Summarization disabled by config.")
		a.SummaryService = services.NewNoopSummaryService()
		return nil
	}

	transformer, err := summarize.NewSummarizeTransformer(a.Config.Summarization.MaxLength)
	if err != nil {
		return fmt.Errorf("init summary service: %w", err)
	}
	a.SummaryService = services.NewExtractiveSummaryService(
		transformer,
		a.Config.Summarization.MinLength,
		a.Logger.WithField("service", "summarization"),
	)
	return nil
}
