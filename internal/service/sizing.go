package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	vs "vent_sizing"
	"vent_sizing/internal/calc"
	"vent_sizing/internal/repository"
	"vent_sizing/internal/scenario"
	"vent_sizing/internal/selector"
)

type SizingService struct {
	calc      *calc.Calculator
	engine    *scenario.Engine
	holder    *CatalogHolder
	selParams selector.Params
	evals     repository.EvaluationRepo
}

func NewSizingService(c *calc.Calculator, holder *CatalogHolder, evals repository.EvaluationRepo) *SizingService {
	return &SizingService{
		calc:      c,
		engine:    scenario.NewEngine(c),
		holder:    holder,
		selParams: selector.DefaultParams(),
		evals:     evals,
	}
}

var _ Sizing = (*SizingService)(nil)

// Evaluate validates the request, runs every firing scenario, selects
// hardware against the current catalog and persists the result.
func (s *SizingService) Evaluate(ctx context.Context, req vs.SystemRequest) (vs.Evaluation, error) {
	if err := req.Validate(); err != nil {
		return vs.Evaluation{}, err
	}

	scenarios, worst, err := s.engine.Evaluate(req)
	if err != nil {
		return vs.Evaluation{}, err
	}

	sel := selector.New(s.calc, s.holder.Get(), s.selParams)
	selection := sel.Select(req, scenarios, worst)

	ev := vs.Evaluation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Scenarios: scenarios,
		WorstCase: worst,
		Selection: selection,
	}
	if err := s.evals.Append(ctx, ev); err != nil {
		return vs.Evaluation{}, fmt.Errorf("persist evaluation: %w", err)
	}
	return ev, nil
}
