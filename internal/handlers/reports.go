package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vent_sizing/internal/service"
)

// @Summary      Download a submittal PDF
// @Description  Renders an evaluation as a submittal document. Without an id, renders the latest.
// @Tags         reports
// @Produce      application/pdf
// @Param        evaluation_id  query  string  false  "Evaluation id; defaults to latest"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports/pdf [get]
// @Security     BearerAuth
func (h *Handler) submittalPDF(c *gin.Context) {
	id := c.Query("evaluation_id")
	pdf, err := h.services.Reports.Submittal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEvaluationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render report", "report_render_failed", err, "evaluation_id", id)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="submittal.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
