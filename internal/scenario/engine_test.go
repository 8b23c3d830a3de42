package scenario

import (
	"math"
	"testing"

	vs "vent_sizing"
	"vent_sizing/internal/calc"
)

func testEngine() *Engine {
	return NewEngine(calc.New(calc.DefaultParams()))
}

func twoApplianceRequest() vs.SystemRequest {
	return vs.SystemRequest{
		Appliances: []vs.ApplianceSpec{
			{InputMBH: 600, OutletDiameterIn: 8, Category: vs.CategoryI, Fuel: vs.FuelNaturalGas},
			{InputMBH: 400, OutletDiameterIn: 6, Category: vs.CategoryI, Fuel: vs.FuelNaturalGas},
		},
		Manifold: &vs.VentSegment{
			DiameterIn: 10,
			LengthFt:   20,
			RiseFt:     25,
			Standard:   vs.StandardUL441,
			Fittings:   vs.FittingCounts{Elbow90: 2},
		},
		Ambient: vs.AmbientConditions{OutdoorTempF: 30, BarometricInHg: 29.92},
	}
}

func findScenario(t *testing.T, results []vs.CalculationResult, tag vs.ScenarioTag) vs.CalculationResult {
	t.Helper()
	for _, r := range results {
		if r.Scenario == tag {
			return r
		}
	}
	t.Fatalf("scenario %s missing from results", tag)
	return vs.CalculationResult{}
}

func TestEvaluateScenarioSet(t *testing.T) {
	results, worst, err := testEngine().Evaluate(twoApplianceRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d scenarios, want 4", len(results))
	}
	want := []vs.ScenarioTag{vs.ScenarioAll, vs.ScenarioAllMinusLargest, vs.ScenarioSingleLargest, vs.ScenarioSingleSmallest}
	for i, tag := range want {
		if results[i].Scenario != tag {
			t.Errorf("results[%d] = %s, want %s", i, results[i].Scenario, tag)
		}
	}
	if worst == "" {
		t.Error("worst case tag missing")
	}
}

func TestEvaluateSingleApplianceSkipsAllMinusLargest(t *testing.T) {
	req := twoApplianceRequest()
	req.Appliances = req.Appliances[:1]
	results, _, err := testEngine().Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(results))
	}
	for _, r := range results {
		if r.Scenario == vs.ScenarioAllMinusLargest {
			t.Error("ALL_MINUS_LARGEST must not exist for a single appliance")
		}
	}
}

func TestActiveSets(t *testing.T) {
	results, _, err := testEngine().Evaluate(twoApplianceRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	all := findScenario(t, results, vs.ScenarioAll)
	if len(all.ActiveAppliances) != 2 {
		t.Errorf("ALL actives = %v, want both", all.ActiveAppliances)
	}
	minus := findScenario(t, results, vs.ScenarioAllMinusLargest)
	if len(minus.ActiveAppliances) != 1 || minus.ActiveAppliances[0] != 1 {
		t.Errorf("ALL_MINUS_LARGEST actives = %v, want [1]", minus.ActiveAppliances)
	}
	largest := findScenario(t, results, vs.ScenarioSingleLargest)
	if len(largest.ActiveAppliances) != 1 || largest.ActiveAppliances[0] != 0 {
		t.Errorf("SINGLE_LARGEST actives = %v, want [0]", largest.ActiveAppliances)
	}
	smallest := findScenario(t, results, vs.ScenarioSingleSmallest)
	if len(smallest.ActiveAppliances) != 1 || smallest.ActiveAppliances[0] != 1 {
		t.Errorf("SINGLE_SMALLEST actives = %v, want [1]", smallest.ActiveAppliances)
	}
}

func TestLargestTieBreaksByInputOrder(t *testing.T) {
	appliances := []vs.ApplianceSpec{
		{InputMBH: 500}, {InputMBH: 500}, {InputMBH: 200},
	}
	got := activeSet(appliances, vs.ScenarioSingleLargest)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("tied largest = %v, want the earliest, [0]", got)
	}
	minus := activeSet(appliances, vs.ScenarioAllMinusLargest)
	if len(minus) != 2 || minus[0] != 1 || minus[1] != 2 {
		t.Errorf("all minus tied largest = %v, want [1 2]", minus)
	}
}

func TestTotalCFMIsMassConsistent(t *testing.T) {
	results, _, err := testEngine().Evaluate(twoApplianceRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	all := findScenario(t, results, vs.ScenarioAll)

	var mass float64
	for _, f := range all.Flows {
		mass += f.MassFlowLbPerMin
	}
	c := calc.New(calc.DefaultParams())
	wantCFM, wantTemp := c.CombinedFlow(all.Flows)
	if math.Abs(all.TotalCFM-wantCFM) > 1e-9 || math.Abs(all.MixedFlueTempF-wantTemp) > 1e-9 {
		t.Errorf("combined flow mismatch: %v@%v vs %v@%v", all.TotalCFM, all.MixedFlueTempF, wantCFM, wantTemp)
	}
	if mass <= 0 || all.TotalCFM <= 0 {
		t.Errorf("positive firing must move gas, got %v lb/min %v CFM", mass, all.TotalCFM)
	}
}

func TestWorstCaseIsGreatestAvailableDraft(t *testing.T) {
	results, worst, err := testEngine().Evaluate(twoApplianceRequest())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	max := math.Inf(-1)
	var maxTag vs.ScenarioTag
	for _, r := range results {
		if r.AvailableDraftInWC > max {
			max = r.AvailableDraftInWC
			maxTag = r.Scenario
		}
	}
	if worst != maxTag {
		t.Errorf("worst case = %s, want %s (available %v)", worst, maxTag, max)
	}
}

func TestConnectorAnalyzedAtPeakAppliance(t *testing.T) {
	req := twoApplianceRequest()
	req.Connector = &vs.VentSegment{DiameterIn: 8, LengthFt: 5, RiseFt: 3, Standard: vs.StandardUL441}
	results, _, err := testEngine().Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	all := findScenario(t, results, vs.ScenarioAll)
	if all.Connector == nil {
		t.Fatal("connector result missing")
	}
	peak := all.Flows[0].CFM
	for _, f := range all.Flows {
		if f.CFM > peak {
			peak = f.CFM
		}
	}
	if math.Abs(all.Connector.CFM-peak) > 1e-9 {
		t.Errorf("connector evaluated at %v CFM, want peak appliance %v", all.Connector.CFM, peak)
	}
	if math.Abs(all.AvailableDraftInWC-(all.Connector.AvailableDraftInWC+all.Manifold.AvailableDraftInWC)) > 1e-12 {
		t.Error("available draft must sum connector and manifold in series")
	}
}

func TestComplianceVelocityLow(t *testing.T) {
	req := twoApplianceRequest()
	// A huge manifold drops velocity below the condensate drainage floor.
	req.Manifold.DiameterIn = 36
	results, _, err := testEngine().Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	small := findScenario(t, results, vs.ScenarioSingleSmallest)
	if !small.Compliance.VelocityLow {
		t.Error("expected a low-velocity flag on an oversized manifold")
	}
	if len(small.Compliance.Notes) == 0 {
		t.Error("flags must carry a human-readable note")
	}
}

func TestComplianceVelocityHigh(t *testing.T) {
	req := twoApplianceRequest()
	req.Manifold.DiameterIn = 3
	results, _, err := testEngine().Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	all := findScenario(t, results, vs.ScenarioAll)
	if !all.Compliance.VelocityHigh {
		t.Error("expected a high-velocity flag on an undersized manifold")
	}
}

func TestComplianceCategoryMismatch(t *testing.T) {
	req := twoApplianceRequest()
	req.Appliances[1].Category = vs.CategoryIV
	results, _, err := testEngine().Evaluate(req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	all := findScenario(t, results, vs.ScenarioAll)
	if !all.Compliance.CategoryMismatch {
		t.Error("Category IV on a Type B vent must flag a mismatch")
	}

	// The scenario where the mismatched appliance is off stays clean.
	largest := findScenario(t, results, vs.ScenarioSingleLargest)
	if largest.Compliance.CategoryMismatch {
		t.Error("an idle appliance must not trigger the mismatch flag")
	}
}

func TestEvaluateUnknownFuel(t *testing.T) {
	req := twoApplianceRequest()
	req.Appliances[0].Fuel = vs.FuelType("peat")
	if _, _, err := testEngine().Evaluate(req); err == nil {
		t.Error("expected an error for an unknown fuel")
	}
}
