package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vent_sizing/internal/service"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLimitInvalid = "invalid 'limit'; must be a non-negative integer"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List evaluations
// @Description  Filter evaluation history by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         evaluations
// @Produce      json
// @Param        from   query   string  false  "Start of range"  example(2026-02-01)
// @Param        to     query   string  false  "End of range. Date-only treated as end of day."  example(2026-02-28)
// @Param        limit  query   int     false  "Maximum results, newest first"
// @Success      200    {object}  map[string]interface{}  "count, evaluations"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/evaluations [get]
// @Security     BearerAuth
func (h *Handler) listEvaluations(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from, to time.Time
		limit    int
		err      error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		// If the user didn't include a time component, treat "to" as the end of that day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if qs := c.Query("limit"); qs != "" {
		limit, err = strconv.Atoi(qs)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	evals, err := h.services.EvaluationLog.List(ctx, service.HistoryFilter{
		From:  from,
		To:    to,
		Limit: limit,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("evaluations_list_failed", "err", err, "from", from, "to", to)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load evaluations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(evals),
		"evaluations": evals,
	})
}

// @Summary      Get one evaluation
// @Tags         evaluations
// @Produce      json
// @Param        id  path  string  true  "Evaluation id"
// @Success      200  {object}  vent_sizing.Evaluation
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/evaluations/{id} [get]
// @Security     BearerAuth
func (h *Handler) getEvaluation(c *gin.Context) {
	ev, err := h.services.EvaluationLog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load evaluation", "evaluation_get_failed", err)
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

// @Summary      Get the latest evaluation
// @Tags         evaluations
// @Produce      json
// @Success      200  {object}  vent_sizing.Evaluation
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/evaluations/latest [get]
// @Security     BearerAuth
func (h *Handler) latestEvaluation(c *gin.Context) {
	ev, err := h.services.EvaluationLog.Latest(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load evaluation", "evaluation_latest_failed", err)
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no evaluations yet"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-02-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
