package repository

import (
	"context"
	"database/sql"
	"fmt"

	vs "vent_sizing"
)

type CatalogSQLite struct {
	db *sql.DB
}

func NewCatalogSQLite(db *sql.DB) *CatalogSQLite { return &CatalogSQLite{db: db} }

var _ CatalogRepo = (*CatalogSQLite)(nil)

// LoadCurves reads every stored fan curve with its sampled points in
// ascending flow order. An empty table yields an empty slice, not an error.
func (r *CatalogSQLite) LoadCurves(ctx context.Context) ([]vs.FanCurve, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.model, c.series, p.flow_cfm, p.pressure_in_wc
		FROM fan_curves c
		JOIN fan_curve_points p ON p.model = c.model
		ORDER BY c.series, c.model, p.flow_cfm ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select fan curves: %w", err)
	}
	defer rows.Close()

	var (
		out  []vs.FanCurve
		last string
	)
	for rows.Next() {
		var (
			model, series string
			pt            vs.FanCurvePoint
		)
		if err := rows.Scan(&model, &series, &pt.FlowCFM, &pt.PressureInWC); err != nil {
			return nil, err
		}
		if model != last {
			out = append(out, vs.FanCurve{Model: model, Series: series})
			last = model
		}
		out[len(out)-1].Points = append(out[len(out)-1].Points, pt)
	}
	return out, rows.Err()
}

// ReplaceCurves atomically swaps the stored catalog for the given set.
func (r *CatalogSQLite) ReplaceCurves(ctx context.Context, curves []vs.FanCurve) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fan_curve_points`); err != nil {
		return fmt.Errorf("clear fan_curve_points: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM fan_curves`); err != nil {
		return fmt.Errorf("clear fan_curves: %w", err)
	}

	for _, c := range curves {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fan_curves (model, series) VALUES (?, ?)`, c.Model, c.Series); err != nil {
			return fmt.Errorf("insert curve %q: %w", c.Model, err)
		}
		for _, pt := range c.Points {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fan_curve_points (model, flow_cfm, pressure_in_wc) VALUES (?, ?, ?)`,
				c.Model, pt.FlowCFM, pt.PressureInWC); err != nil {
				return fmt.Errorf("insert point for %q: %w", c.Model, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog replace: %w", err)
	}
	return nil
}
