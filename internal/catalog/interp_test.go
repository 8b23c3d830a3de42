package catalog

import (
	"math"
	"testing"

	vs "vent_sizing"
)

var interpCurve = []vs.FanCurvePoint{
	{FlowCFM: 100, PressureInWC: 2.0},
	{FlowCFM: 200, PressureInWC: 1.5},
	{FlowCFM: 400, PressureInWC: 0.5},
}

func TestPressureAtMidpoint(t *testing.T) {
	p, ok := PressureAt(interpCurve, 150)
	if !ok {
		t.Fatal("150 CFM is inside the sampled domain")
	}
	if math.Abs(p-1.75) > 1e-12 {
		t.Errorf("PressureAt(150) = %v, want 1.75", p)
	}
	p, ok = PressureAt(interpCurve, 300)
	if !ok || math.Abs(p-1.0) > 1e-12 {
		t.Errorf("PressureAt(300) = %v, %v, want 1.0", p, ok)
	}
}

func TestPressureAtEndpoints(t *testing.T) {
	if p, ok := PressureAt(interpCurve, 100); !ok || p != 2.0 {
		t.Errorf("lower endpoint: got %v, %v", p, ok)
	}
	if p, ok := PressureAt(interpCurve, 400); !ok || p != 0.5 {
		t.Errorf("upper endpoint: got %v, %v", p, ok)
	}
}

func TestPressureAtOutsideDomain(t *testing.T) {
	if _, ok := PressureAt(interpCurve, 99.9); ok {
		t.Error("below the sampled domain must not interpolate")
	}
	if _, ok := PressureAt(interpCurve, 400.1); ok {
		t.Error("above the sampled domain must not extrapolate")
	}
	if _, ok := PressureAt(nil, 100); ok {
		t.Error("an empty curve has no domain")
	}
}

func TestDomain(t *testing.T) {
	min, max := Domain(interpCurve)
	if min != 100 || max != 400 {
		t.Errorf("Domain = [%v, %v], want [100, 400]", min, max)
	}
	if min, max := Domain(nil); min != 0 || max != 0 {
		t.Errorf("empty Domain = [%v, %v], want zeros", min, max)
	}
}
