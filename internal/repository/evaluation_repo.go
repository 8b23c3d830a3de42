package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	vs "vent_sizing"
)

type EvaluationSQLite struct {
	db *sql.DB
}

func NewEvaluationSQLite(db *sql.DB) *EvaluationSQLite { return &EvaluationSQLite{db: db} }

var _ EvaluationRepo = (*EvaluationSQLite)(nil)

const (
	insertEvaluationSQL = `
		INSERT INTO evaluations (id, created_at, worst_case, request, scenarios, selection)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	selectEvaluationCols = `id, created_at, worst_case, request, scenarios, selection`
)

// Append persists one evaluation. A missing ID or timestamp is filled in.
func (r *EvaluationSQLite) Append(ctx context.Context, ev vs.Evaluation) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	} else {
		ev.CreatedAt = ev.CreatedAt.UTC()
	}

	reqJSON, err := json.Marshal(ev.Request)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	scenJSON, err := json.Marshal(ev.Scenarios)
	if err != nil {
		return fmt.Errorf("marshal scenarios: %w", err)
	}
	selJSON, err := json.Marshal(ev.Selection)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertEvaluationSQL,
		ev.ID,
		ev.CreatedAt,
		string(ev.WorstCase),
		string(reqJSON),
		string(scenJSON),
		string(selJSON),
	)
	if err != nil {
		return fmt.Errorf("insert evaluation %s: %w", ev.ID, err)
	}
	return nil
}

// List returns evaluations filtered by [from, to] inclusive, newest first.
// A limit of 0 means no limit.
func (r *EvaluationSQLite) List(ctx context.Context, from, to time.Time, limit int) ([]vs.Evaluation, error) {
	q := `SELECT ` + selectEvaluationCols + ` FROM evaluations`
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, to.UTC())
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY created_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vs.Evaluation, 0, 16)
	for rows.Next() {
		ev, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Get returns the evaluation with the given id, or (nil, nil) when absent.
func (r *EvaluationSQLite) Get(ctx context.Context, id string) (*vs.Evaluation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectEvaluationCols+` FROM evaluations WHERE id = ?`, id)
	ev, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

// Latest returns the most recent evaluation, or (nil, nil) when none exist.
func (r *EvaluationSQLite) Latest(ctx context.Context) (*vs.Evaluation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectEvaluationCols+` FROM evaluations ORDER BY created_at DESC LIMIT 1`)
	ev, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (vs.Evaluation, error) {
	var (
		ev                             vs.Evaluation
		worst, reqStr, scenStr, selStr string
	)
	if err := row.Scan(&ev.ID, &ev.CreatedAt, &worst, &reqStr, &scenStr, &selStr); err != nil {
		return vs.Evaluation{}, err
	}
	ev.CreatedAt = ev.CreatedAt.UTC()
	ev.WorstCase = vs.ScenarioTag(worst)
	if err := json.Unmarshal([]byte(reqStr), &ev.Request); err != nil {
		return vs.Evaluation{}, fmt.Errorf("unmarshal request for %s: %w", ev.ID, err)
	}
	if err := json.Unmarshal([]byte(scenStr), &ev.Scenarios); err != nil {
		return vs.Evaluation{}, fmt.Errorf("unmarshal scenarios for %s: %w", ev.ID, err)
	}
	if err := json.Unmarshal([]byte(selStr), &ev.Selection); err != nil {
		return vs.Evaluation{}, fmt.Errorf("unmarshal selection for %s: %w", ev.ID, err)
	}
	return ev, nil
}
