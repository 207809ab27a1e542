// server/internal/api/handlers/advisory_handler.go
package handlers

import (
	"net/http"

	"agrisense-farm-api-server/internal/advisory"
	"agrisense-farm-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

type AdvisoryHandler struct {
	Advisor advisory.Advisor
}

// AnalyzeZone trả về khuyến nghị canh tác cho một zone dựa trên context tự do.
func (h *AdvisoryHandler) AnalyzeZone(c *gin.Context) {
	var req models.AIAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Advisor.Analyze(req))
}
