package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// SummarizeHandler handles POST /summarize.
func (h *APIHandler) SummarizeHandler(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.App.SummaryService.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		respondServiceError(c, err, "generating summary")
		return
	}
	c.JSON(http.StatusOK, SummarizeResponse{Summary: summary})
}
