package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	vs "vent_sizing"
	"vent_sizing/internal/service"
)

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestEvaluateSystem_Success(t *testing.T) {
	sizing := &mockSizing{resp: vs.Evaluation{ID: "e1", WorstCase: vs.ScenarioAll}}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 1},
		Sizing:        sizing,
	}
	r := newTestRouter(s)

	body := `{
		"appliances":[{"input_mbh":500,"outlet_diameter_in":6,"category":"I","fuel":"NATURAL_GAS"}],
		"manifold":{"diameter_in":8,"length_ft":10,"rise_ft":20,"standard":"UL441","fittings":{}},
		"ambient":{"outdoor_temp_f":30,"barometric_in_hg":29.92}
	}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/systems/evaluate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out vs.Evaluation
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != "e1" {
		t.Fatalf("unexpected evaluation: %+v", out)
	}
	if sizing.evaluate != 1 || len(sizing.lastReq.Appliances) != 1 {
		t.Fatalf("service not called with parsed request: %+v", sizing.lastReq)
	}
}

func TestEvaluateSystem_ValidationError(t *testing.T) {
	sizing := &mockSizing{err: &vs.ValidationError{Field: "appliances", Reason: "count must be 1-6, got 0"}}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 1},
		Sizing:        sizing,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/systems/evaluate", `{"appliances":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Field != "appliances" {
		t.Fatalf("expected field name in body, got %+v", out)
	}
}

func TestEvaluateSystem_InternalError(t *testing.T) {
	sizing := &mockSizing{err: errors.New("db down")}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 1},
		Sizing:        sizing,
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/systems/evaluate", `{"appliances":[{"input_mbh":1}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEvaluateSystem_MalformedBody(t *testing.T) {
	s := &service.Service{
		Authorization: &mockAuth{parseID: 1},
		Sizing:        &mockSizing{},
	}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/v1/systems/evaluate", `{"appliances":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestHealth_NoAuthRequired(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
