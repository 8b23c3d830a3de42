package service

import (
	"context"
	"errors"
	"time"

	vs "vent_sizing"
	"vent_sizing/internal/repository"
)

// HistoryFilter bounds an evaluation history query. Zero times mean no
// bound; Limit 0 means no limit.
type HistoryFilter struct {
	From  time.Time // inclusive
	To    time.Time // inclusive
	Limit int
}

type EvaluationLogService struct {
	evals repository.EvaluationRepo
}

func NewEvaluationLogService(evals repository.EvaluationRepo) *EvaluationLogService {
	return &EvaluationLogService{evals: evals}
}

var _ EvaluationLog = (*EvaluationLogService)(nil)

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errNegativeLimit    = errors.New("limit must not be negative")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f HistoryFilter) (time.Time, time.Time, int, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, 0, errInvalidTimeRange
	}
	if f.Limit < 0 {
		return time.Time{}, time.Time{}, 0, errNegativeLimit
	}
	return from, to, f.Limit, nil
}

func (s *EvaluationLogService) List(ctx context.Context, f HistoryFilter) ([]vs.Evaluation, error) {
	from, to, limit, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.evals.List(ctx, from, to, limit)
}

func (s *EvaluationLogService) Get(ctx context.Context, id string) (*vs.Evaluation, error) {
	return s.evals.Get(ctx, id)
}

func (s *EvaluationLogService) Latest(ctx context.Context) (*vs.Evaluation, error) {
	return s.evals.Latest(ctx)
}
