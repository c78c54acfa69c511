package apihandlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sugamrai0/AIML/internal/middleware"
)

// NewRouter wires every route onto a fresh engine with recovery, request ids,
// request logging and CORS.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(h.App.Logger),
		middleware.CORS(h.App.Config.CORS.AllowOrigins),
	)

	router.GET("/", h.RootHandler)
	router.GET("/health", h.HealthHandler)

	api := router.Group("/api")
	{
		api.GET("", h.APIIndexHandler)
		api.GET("/services", h.ServicesHandler)
		api.GET("/health", h.HealthHandler)
	}

	// Learning path routes
	router.POST("/suggest-path", h.SuggestPathHandler)
	router.POST("/suggest-path-json", h.SuggestPathJSONHandler)
	router.GET("/templates", h.TemplatesHandler)

	// Document Q&A routes
	router.POST("/ask", h.AskHandler)
	router.GET("/documents", h.DocumentsHandler)

	// Summarization routes
	router.POST("/summarize", h.SummarizeHandler)

	return router
}
