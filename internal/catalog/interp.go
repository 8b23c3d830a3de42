package catalog

import (
	"fmt"

	vs "vent_sizing"
)

// PressureAt linearly interpolates a sampled fan curve at the given flow.
// The curve's sampled flow range bounds the valid domain: a flow below the
// first or above the last sample returns ok=false, never an extrapolated
// value.
func PressureAt(points []vs.FanCurvePoint, flowCFM float64) (pressure float64, ok bool) {
	n := len(points)
	if n == 0 || flowCFM < points[0].FlowCFM || flowCFM > points[n-1].FlowCFM {
		return 0, false
	}
	for i := 1; i < n; i++ {
		lo, hi := points[i-1], points[i]
		if flowCFM > hi.FlowCFM {
			continue
		}
		span := hi.FlowCFM - lo.FlowCFM
		if span == 0 {
			return lo.PressureInWC, true
		}
		t := (flowCFM - lo.FlowCFM) / span
		return lo.PressureInWC + t*(hi.PressureInWC-lo.PressureInWC), true
	}
	return points[n-1].PressureInWC, true
}

// Domain returns the sampled flow bounds of a curve.
func Domain(points []vs.FanCurvePoint) (minFlow, maxFlow float64) {
	if len(points) == 0 {
		return 0, 0
	}
	return points[0].FlowCFM, points[len(points)-1].FlowCFM
}

// validatePoints enforces a non-empty, strictly increasing-by-flow sample
// list, the invariant every interpolation relies on.
func validatePoints(model string, points []vs.FanCurvePoint) error {
	if len(points) < 2 {
		return fmt.Errorf("curve %s: need at least 2 sample points, got %d", model, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].FlowCFM <= points[i-1].FlowCFM {
			return fmt.Errorf("curve %s: sample flows must strictly increase (point %d)", model, i)
		}
	}
	return nil
}
