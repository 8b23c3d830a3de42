package service

import (
	"context"

	vs "vent_sizing"
	"vent_sizing/internal/calc"
	"vent_sizing/internal/catalog"
	"vent_sizing/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Sizing runs the full pipeline: validate, evaluate every firing scenario,
// select hardware, persist the evaluation.
type Sizing interface {
	Evaluate(ctx context.Context, req vs.SystemRequest) (vs.Evaluation, error)
}

// EvaluationLog exposes the append-only evaluation history.
type EvaluationLog interface {
	List(ctx context.Context, f HistoryFilter) ([]vs.Evaluation, error)
	Get(ctx context.Context, id string) (*vs.Evaluation, error)
	Latest(ctx context.Context) (*vs.Evaluation, error)
}

// CatalogAccess exposes the fan curve catalog and its import path.
type CatalogAccess interface {
	Curves() []vs.FanCurve
	Series() []catalog.Series
	SeriesModels(series string) []string
	ImportXLSX(ctx context.Context, path string) (int, error)
}

// Reports renders persisted evaluations as submittal documents.
type Reports interface {
	Submittal(ctx context.Context, evaluationID string) ([]byte, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Sizing
	EvaluationLog
	CatalogAccess
	Reports
	Authorization
}

// Config carries the non-repository wiring for NewService.
type Config struct {
	SigningKey string
}

func NewService(repos *repository.Repository, holder *CatalogHolder, cfg Config) *Service {
	c := calc.New(calc.DefaultParams())
	return &Service{
		Sizing:        NewSizingService(c, holder, repos.Evaluations),
		EvaluationLog: NewEvaluationLogService(repos.Evaluations),
		CatalogAccess: NewCatalogService(repos.Catalog, holder),
		Reports:       NewReportsService(repos.Evaluations),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey),
	}
}
