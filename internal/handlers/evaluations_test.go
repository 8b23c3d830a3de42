package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	vs "vent_sizing"
	"vent_sizing/internal/service"
)

func TestEvaluationsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	log := &mockEvaluationLog{listResp: []vs.Evaluation{
		{ID: "e1", CreatedAt: now, WorstCase: vs.ScenarioAll},
		{ID: "e2", CreatedAt: now.Add(-time.Hour), WorstCase: vs.ScenarioSingleSmallest},
	}}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 9},
		EvaluationLog: log,
	}
	r := newTestRouter(s)

	// Invalid 'from' → 400
	w := doJSON(t, r, http.MethodGet, "/api/v1/evaluations/?from=notatime", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// Invalid limit → 400
	w = doJSON(t, r, http.MethodGet, "/api/v1/evaluations/?limit=-2", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'limit', got %d", w.Code)
	}

	// Valid range with limit
	q := "/api/v1/evaluations/?from=" + now.Add(-2*time.Hour).Format(time.RFC3339) +
		"&to=" + now.Format(time.RFC3339) + "&limit=5"
	w = doJSON(t, r, http.MethodGet, q, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count       int             `json:"count"`
		Evaluations []vs.Evaluation `json:"evaluations"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Evaluations) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if log.lastLimit != 5 {
		t.Fatalf("limit not forwarded: %d", log.lastLimit)
	}
}

func TestEvaluationsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	log := &mockEvaluationLog{}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 9},
		EvaluationLog: log,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/evaluations/?to=2026-02-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	endOfDay := time.Date(2026, 2, 15, 23, 59, 59, 999999999, time.UTC)
	if !log.lastTo.Equal(endOfDay) {
		t.Fatalf("'to' not end-of-day: %v", log.lastTo)
	}
}

func TestEvaluationsHandler_GetByID(t *testing.T) {
	ev := &vs.Evaluation{ID: "e7"}
	log := &mockEvaluationLog{getResp: ev}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 9},
		EvaluationLog: log,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/evaluations/e7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if log.lastGetID != "e7" {
		t.Fatalf("id not forwarded: %q", log.lastGetID)
	}

	// Unknown id → 404
	log.getResp = nil
	w = doJSON(t, r, http.MethodGet, "/api/v1/evaluations/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEvaluationsHandler_Latest(t *testing.T) {
	log := &mockEvaluationLog{latest: &vs.Evaluation{ID: "newest"}}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 9},
		EvaluationLog: log,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/evaluations/latest", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out vs.Evaluation
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.ID != "newest" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// Empty history → 404
	log.latest = nil
	w = doJSON(t, r, http.MethodGet, "/api/v1/evaluations/latest", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
