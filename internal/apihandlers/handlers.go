package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sugamrai0/AIML/internal/app"
	"github.com/Sugamrai0/AIML/internal/services"
)

const (
	serviceName    = "AI Microservices"
	serviceVersion = "1.0.0"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// SuggestPathRequest is the free-text form; defaults apply to everything else.
type SuggestPathRequest struct {
	Text string `json:"text"`
}

// SuggestPathJSONRequest is the structured form.
type SuggestPathJSONRequest struct {
	Goals                  string `json:"goals"`
	ExperienceLevel        string `json:"experience_level"`
	TimeCommitment         string `json:"time_commitment"`
	PreferredLearningStyle string `json:"preferred_learning_style"`
}

// SuggestPathHandler handles POST /suggest-path.
func (h *APIHandler) SuggestPathHandler(c *gin.Context) {
	var req SuggestPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	h.suggest(c, services.SuggestParams{Goals: req.Text})
}

// SuggestPathJSONHandler handles POST /suggest-path-json.
func (h *APIHandler) SuggestPathJSONHandler(c *gin.Context) {
	var req SuggestPathJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	h.suggest(c, services.SuggestParams{
		Goals:                  req.Goals,
		ExperienceLevel:        req.ExperienceLevel,
		TimeCommitment:         req.TimeCommitment,
		PreferredLearningStyle: req.PreferredLearningStyle,
	})
}

func (h *APIHandler) suggest(c *gin.Context, params services.SuggestParams) {
	path, err := h.App.LearningPathService.Suggest(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "generating learning path")
		return
	}
	c.JSON(http.StatusOK, path)
}

// TemplatesHandler handles GET /templates.
func (h *APIHandler) TemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.App.TemplateService.List()})
}

// RootHandler lists the services this process exposes.
func (h *APIHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  serviceName,
		"version":  serviceVersion,
		"services": []string{"learning-path", "qa-documents", "text-summarization"},
		"api":      "/api",
		"health":   "/health",
	})
}

// APIIndexHandler handles GET /api.
func (h *APIHandler) APIIndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  serviceName + " API",
		"services": []string{"learning-path", "qa-documents", "text-summarization"},
		"website":  "/",
	})
}

// ServicesHandler handles GET /api/services.
func (h *APIHandler) ServicesHandler(c *gin.Context) {
	status := func(enabled bool) string {
		if enabled {
			return "active"
		}
		return "disabled"
	}
	cfg := h.App.Config
	c.JSON(http.StatusOK, gin.H{
		"services": gin.H{
			"learning_path": gin.H{
				"name":      "Learning Path Suggestion Service",
				"endpoints": []string{"/suggest-path", "/suggest-path-json", "/templates"},
				"status":    "active",
			},
			"qa_documents": gin.H{
				"name":      "Q&A over Documents Service",
				"endpoints": []string{"/ask", "/documents"},
				"status":    status(cfg.QA.Enabled),
			},
			"text_summarization": gin.H{
				"name":      "Text Summarization Service",
				"endpoints": []string{"/summarize"},
				"status":    status(cfg.Summarization.Enabled),
			},
		},
	})
}

// HealthHandler handles GET /health and GET /api/health.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": serviceVersion})
}
