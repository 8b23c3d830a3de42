// Package calc is the steady-state draft model: combustion-driven flue flow,
// buoyancy (stack-effect) draft, and velocity-squared pressure losses over
// table-driven fitting coefficients. All functions are pure over their
// inputs; draft values are negative inches w.c. below atmospheric.
package calc

import (
	vs "vent_sizing"
)

// Calculator evaluates vent segments under a fixed parameter set. It holds
// no mutable state and is safe for concurrent use.
type Calculator struct {
	params Params
}

// New returns a Calculator over the given parameters.
func New(p Params) *Calculator {
	return &Calculator{params: p}
}

// Params exposes the parameter set the calculator was built with.
func (c *Calculator) Params() Params { return c.params }

// TheoreticalDraft is the stack-effect draft of a gas column:
//
//	draft = −K × B × H × (1/To − 1/Tf)
//
// with B in in Hg, H the rise in ft and temperatures absolute. A flue hotter
// than ambient yields a negative value (suction below atmospheric).
func (c *Calculator) TheoreticalDraft(riseFt, flueTempF float64, ambient vs.AmbientConditions) float64 {
	toR := ambient.OutdoorTempF + RankineOffset
	tfR := flueTempF + RankineOffset
	return -c.params.DraftCoefficient * ambient.BarometricInHg * riseFt * (1/toR - 1/tfR)
}

// AnalyzeSegment runs the full hydraulic analysis of one segment at the
// given flow. Available draft = theoretical draft + total loss: losses are
// positive magnitudes that erode the (negative) suction toward zero.
func (c *Calculator) AnalyzeSegment(role string, seg vs.VentSegment, cfm, gasTempF float64, ambient vs.AmbientConditions) vs.SegmentResult {
	velocity := VelocityFPS(cfm, seg.DiameterIn)
	items, total := c.params.SegmentLoss(seg, velocity, gasTempF)
	theoretical := c.TheoreticalDraft(seg.RiseFt, gasTempF, ambient)
	return vs.SegmentResult{
		Role:                 role,
		CFM:                  cfm,
		VelocityFPS:          velocity,
		VelocityPressureInWC: c.params.VelocityPressure(velocity, gasTempF),
		TheoreticalDraftInWC: theoretical,
		Losses:               items,
		TotalLossInWC:        total,
		AvailableDraftInWC:   theoretical + total,
	}
}

// StandardAirCorrection converts a pressure at flue temperature to the
// equivalent at 70°F standard air, the basis fan curves are published on.
func (c *Calculator) StandardAirCorrection(pressureInWC, gasTempF float64) float64 {
	return pressureInWC * c.params.AirDensity(standardAirTempF) / c.params.AirDensity(gasTempF)
}
