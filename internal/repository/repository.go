package repository

import (
	"context"
	"database/sql"
	"time"

	vs "vent_sizing"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*vs.User, error)
}

type EvaluationRepo interface {
	Append(ctx context.Context, ev vs.Evaluation) error
	List(ctx context.Context, from, to time.Time, limit int) ([]vs.Evaluation, error)
	Get(ctx context.Context, id string) (*vs.Evaluation, error)
	Latest(ctx context.Context) (*vs.Evaluation, error)
}

type CatalogRepo interface {
	LoadCurves(ctx context.Context) ([]vs.FanCurve, error)
	ReplaceCurves(ctx context.Context, curves []vs.FanCurve) error
}

type Repository struct {
	Evaluations EvaluationRepo
	Catalog     CatalogRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Evaluations: NewEvaluationSQLite(db),
		Catalog:     NewCatalogSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
