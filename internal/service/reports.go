package service

import (
	"context"
	"errors"

	vs "vent_sizing"
	"vent_sizing/internal/report"
	"vent_sizing/internal/repository"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type ReportsService struct {
	evals repository.EvaluationRepo
}

func NewReportsService(evals repository.EvaluationRepo) *ReportsService {
	return &ReportsService{evals: evals}
}

var _ Reports = (*ReportsService)(nil)

// Submittal renders the named evaluation as a PDF. An empty id means the
// most recent evaluation.
func (s *ReportsService) Submittal(ctx context.Context, evaluationID string) ([]byte, error) {
	ev, err := s.lookup(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	return report.Submittal(*ev)
}

func (s *ReportsService) lookup(ctx context.Context, id string) (*vs.Evaluation, error) {
	if id == "" {
		ev, err := s.evals.Latest(ctx)
		if err != nil {
			return nil, err
		}
		if ev == nil {
			return nil, ErrEvaluationNotFound
		}
		return ev, nil
	}
	ev, err := s.evals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, ErrEvaluationNotFound
	}
	return ev, nil
}
