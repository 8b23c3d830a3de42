package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	vs "vent_sizing"
	"vent_sizing/internal/catalog"
	"vent_sizing/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockSizing struct {
	resp     vs.Evaluation
	err      error
	lastReq  vs.SystemRequest
	evaluate int
}

func (m *mockSizing) Evaluate(ctx context.Context, req vs.SystemRequest) (vs.Evaluation, error) {
	m.evaluate++
	m.lastReq = req
	return m.resp, m.err
}

type mockEvaluationLog struct {
	listResp  []vs.Evaluation
	listErr   error
	getResp   *vs.Evaluation
	getErr    error
	latest    *vs.Evaluation
	latestErr error

	lastFrom  time.Time
	lastTo    time.Time
	lastLimit int
	lastGetID string
}

func (m *mockEvaluationLog) List(ctx context.Context, f service.HistoryFilter) ([]vs.Evaluation, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastLimit = f.Limit
	return m.listResp, m.listErr
}
func (m *mockEvaluationLog) Get(ctx context.Context, id string) (*vs.Evaluation, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}
func (m *mockEvaluationLog) Latest(ctx context.Context) (*vs.Evaluation, error) {
	return m.latest, m.latestErr
}

type mockCatalog struct {
	curves    []vs.FanCurve
	series    []catalog.Series
	models    map[string][]string
	importN   int
	importErr error

	lastImportPath string
}

func (m *mockCatalog) Curves() []vs.FanCurve    { return m.curves }
func (m *mockCatalog) Series() []catalog.Series { return m.series }
func (m *mockCatalog) SeriesModels(s string) []string {
	return m.models[s]
}
func (m *mockCatalog) ImportXLSX(ctx context.Context, path string) (int, error) {
	m.lastImportPath = path
	return m.importN, m.importErr
}

type mockReports struct {
	pdf    []byte
	err    error
	lastID string
}

func (m *mockReports) Submittal(ctx context.Context, id string) ([]byte, error) {
	m.lastID = id
	return m.pdf, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
