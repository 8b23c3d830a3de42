package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	vs "vent_sizing"
)

const (
	statusOK = "ok"

	errEvaluateSystem  = "failed to evaluate system"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Evaluate a vent system
// @Description  Runs every firing scenario, sizes hardware against the catalog and persists the evaluation.
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        body  body   vent_sizing.SystemRequest  true  "System description"
// @Success      200   {object}  vent_sizing.Evaluation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/systems/evaluate [post]
// @Security     BearerAuth
func (h *Handler) evaluateSystem(c *gin.Context) {
	var req vs.SystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	ev, err := h.services.Sizing.Evaluate(c.Request.Context(), req)
	if err != nil {
		var verr *vs.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errEvaluateSystem, "system_evaluate_failed", err)
		return
	}
	c.JSON(http.StatusOK, ev)
}
