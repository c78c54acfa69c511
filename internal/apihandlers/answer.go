package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnswerRequest defines the expected JSON body for the /ask endpoint.
type AnswerRequest struct {
	Question string `json:"question"`
}

// AskHandler handles POST /ask.
func (h *APIHandler) AskHandler(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.App.QAService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		respondServiceError(c, err, "processing question")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DocumentsHandler handles GET /documents.
func (h *APIHandler) DocumentsHandler(c *gin.Context) {
	docs := h.App.QAService.Documents()
	var current *string
	if len(docs) > 0 {
		current = &docs[0].Filename
	}
	c.JSON(http.StatusOK, gin.H{
		"documents":        docs,
		"current_document": current,
	})
}
