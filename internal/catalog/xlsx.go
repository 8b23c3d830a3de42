package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	vs "vent_sizing"
)

// Workbook layout: a "Curves" sheet with header row and columns
// series | model | flow_cfm | pressure_in_wc (one row per sample point,
// points in ascending flow order), and an optional "SupplyFans" sheet with
// series | model | max_cfm.
const (
	curvesSheet     = "Curves"
	supplyFansSheet = "SupplyFans"
)

// LoadXLSX reads catalog data from an xlsx workbook, the interchange format
// the curve tables are published in. Callers validate the result with New.
func LoadXLSX(path string) ([]vs.FanCurve, []SupplyFan, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog workbook %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	curves, err := readCurveRows(f)
	if err != nil {
		return nil, nil, err
	}
	supply, err := readSupplyRows(f)
	if err != nil {
		return nil, nil, err
	}
	return curves, supply, nil
}

func readCurveRows(f *excelize.File) ([]vs.FanCurve, error) {
	rows, err := f.GetRows(curvesSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", curvesSheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", curvesSheet)
	}

	// Accumulate points per model, preserving first-seen order.
	var order []string
	bySeries := make(map[string]string)
	points := make(map[string][]vs.FanCurvePoint)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			continue // ignore ragged rows, as published workbooks have them
		}
		series := strings.TrimSpace(row[0])
		model := strings.TrimSpace(row[1])
		flow, err1 := parseCell(row[2])
		pressure, err2 := parseCell(row[3])
		if model == "" || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("sheet %q row %d: bad curve row", curvesSheet, i+2)
		}
		if _, seen := points[model]; !seen {
			order = append(order, model)
			bySeries[model] = series
		}
		points[model] = append(points[model], vs.FanCurvePoint{FlowCFM: flow, PressureInWC: pressure})
	}

	curves := make([]vs.FanCurve, 0, len(order))
	for _, model := range order {
		curves = append(curves, vs.FanCurve{Model: model, Series: bySeries[model], Points: points[model]})
	}
	return curves, nil
}

func readSupplyRows(f *excelize.File) ([]SupplyFan, error) {
	rows, err := f.GetRows(supplyFansSheet)
	if err != nil {
		// The sheet is optional; fall back to the built-in supply fans.
		return SeedSupplyFans(), nil
	}
	var fans []SupplyFan
	for i, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		maxCFM, perr := parseCell(row[2])
		if perr != nil {
			return nil, fmt.Errorf("sheet %q row %d: bad max_cfm", supplyFansSheet, i+2)
		}
		fans = append(fans, SupplyFan{
			Series: strings.TrimSpace(row[0]),
			Model:  strings.TrimSpace(row[1]),
			MaxCFM: maxCFM,
		})
	}
	return fans, nil
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
