// Package selector sizes catalog hardware against a computed load: an
// ordered guard-rail rule table first, then smallest-adequate curve
// interpolation for the draft inducer, a keyed controller lookup, and a
// flow-threshold supply fan. Selection is pure over its inputs and the
// read-only catalog.
package selector

import (
	"math"

	vs "vent_sizing"
	"vent_sizing/internal/calc"
	"vent_sizing/internal/catalog"
)

// Params are the selection tuning constants.
type Params struct {
	CatIVPressureThresholdInWC float64 // splits guard rails 2 and 3
	FixedSpeedMaxInWC          float64 // beyond this, fixed-speed inducers fall short
}

// DefaultParams mirrors the published selection thresholds.
func DefaultParams() Params {
	return Params{
		CatIVPressureThresholdInWC: 0.11,
		FixedSpeedMaxInWC:          1.0,
	}
}

// Selector evaluates guard rails and sizes hardware from the catalog.
type Selector struct {
	calc    *calc.Calculator
	catalog *catalog.Catalog
	params  Params
}

// New returns a Selector over the given calculator and catalog.
func New(c *calc.Calculator, cat *catalog.Catalog, p Params) *Selector {
	return &Selector{calc: c, catalog: cat, params: p}
}

// Select produces the hardware choice for the evaluated scenarios. A
// guard-rail-forced choice is informational, and an empty catalog fit is a
// distinct NoFit outcome; neither is an error.
func (s *Selector) Select(req vs.SystemRequest, scenarios []vs.CalculationResult, worst vs.ScenarioTag) vs.SelectionResult {
	byTag := make(map[vs.ScenarioTag]vs.CalculationResult, len(scenarios))
	for _, sc := range scenarios {
		byTag[sc.Scenario] = sc
	}
	wc := byTag[worst]

	ctx := s.buildContext(req, byTag, wc)
	outcome, decisions := applyGuardRails(ctx)

	sel := vs.SelectionResult{
		PoweredInducer:   outcome.poweredInducer,
		OverdraftControl: outcome.overdraftControl,
		SupplyAir:        req.Preferences.SupplyAir,
		GuardRails:       decisions,
		RequiredCFM:      wc.TotalCFM,
	}

	// Sizing pressure: the worst-case suction deficit, optionally without
	// the connector term, corrected to the 70°F standard air the fan
	// curves are published at.
	deficit := ctx.suctionDeficit
	if outcome.excludeConnector {
		deficit = math.Max(0, deficit-ctx.connectorLoss)
	}
	sel.RequiredPressureInWC = s.calc.StandardAirCorrection(deficit, wc.MixedFlueTempF)

	if outcome.barometricDamper {
		for i, a := range req.Appliances {
			if a.Category == vs.CategoryI {
				sel.BarometricDampers = append(sel.BarometricDampers, vs.DamperSpec{
					ApplianceIndex: i,
					DiameterIn:     a.OutletDiameterIn,
				})
			}
		}
	}

	if sel.PoweredInducer {
		s.sizeInducer(&sel, req.Preferences.PreferredSeries, outcome)
	}
	s.selectController(&sel, len(req.Appliances), req.Preferences.Touchscreen)
	if sel.SupplyAir {
		s.selectSupplyFan(&sel, byTag[vs.ScenarioAll], req.Ambient.OutdoorTempF)
	}
	return sel
}

func (s *Selector) buildContext(req vs.SystemRequest, byTag map[vs.ScenarioTag]vs.CalculationResult, wc vs.CalculationResult) ruleContext {
	cats := make(map[vs.ApplianceCategory]bool, len(req.Appliances))
	for _, a := range req.Appliances {
		cats[a.Category] = true
	}

	var connectorLoss float64
	if wc.Connector != nil {
		connectorLoss = wc.Connector.TotalLossInWC
	}
	var turndownDeficit float64
	if aml, ok := byTag[vs.ScenarioAllMinusLargest]; ok {
		turndownDeficit = math.Max(0, aml.AvailableDraftInWC)
	}

	return ruleContext{
		categories:        cats,
		mixedCategories:   len(cats) > 1,
		allCategoryI:      len(cats) == 1 && cats[vs.CategoryI],
		allCategoryIV:     len(cats) == 1 && cats[vs.CategoryIV],
		operatingPressure: math.Abs(wc.AvailableDraftInWC),
		suctionDeficit:    math.Max(0, wc.AvailableDraftInWC),
		connectorLoss:     connectorLoss,
		turndownDeficit:   turndownDeficit,
		fixedSpeedMax:     s.params.FixedSpeedMaxInWC,
		catIVThreshold:    s.params.CatIVPressureThresholdInWC,
	}
}

// sizeInducer walks the series in fixed priority order and each series'
// models ascending by capacity, accepting the first model whose sampled
// domain contains the required flow and whose interpolated pressure meets
// the requirement. No candidate is ever judged by extrapolation.
func (s *Selector) sizeInducer(sel *vs.SelectionResult, preferred string, outcome ruleOutcome) {
	series := s.allowedSeries(outcome)
	if preferred != "" {
		series = promoteSeries(series, preferred)
	}

	tried := make([]string, 0, len(series))
	for _, sr := range series {
		tried = append(tried, sr.Name)
		for _, model := range s.catalog.SeriesModels(sr.Name) {
			curve, ok := s.catalog.Curve(model)
			if !ok {
				continue
			}
			available, inDomain := catalog.PressureAt(curve.Points, sel.RequiredCFM)
			if !inDomain || available < sel.RequiredPressureInWC {
				continue
			}
			sel.InducerSeries = sr.Name
			sel.InducerModel = model
			sel.InducerCurve = curve.Points
			return
		}
	}
	sel.NoFit = &vs.NoFitDetail{
		RequiredCFM:          sel.RequiredCFM,
		RequiredPressureInWC: sel.RequiredPressureInWC,
		SeriesTried:          tried,
	}
}

func (s *Selector) allowedSeries(outcome ruleOutcome) []catalog.Series {
	var out []catalog.Series
	for _, sr := range s.catalog.InducerSeries() {
		if outcome.condensingOnly && !sr.CondensingRated {
			continue
		}
		if outcome.variableOnly && !sr.VariableSpeed {
			continue
		}
		out = append(out, sr)
	}
	return out
}

// promoteSeries moves an operator-preferred series to the front without
// disturbing the relative priority of the rest.
func promoteSeries(series []catalog.Series, preferred string) []catalog.Series {
	for i, sr := range series {
		if sr.Name == preferred {
			out := make([]catalog.Series, 0, len(series))
			out = append(out, sr)
			out = append(out, series[:i]...)
			return append(out, series[i+1:]...)
		}
	}
	return series
}
