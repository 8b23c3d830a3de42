// Package scenario enumerates the mutually exclusive operating scenarios of
// a multi-appliance system and finds the worst case for sizing.
package scenario

import (
	"fmt"
	"sort"

	vs "vent_sizing"
	"vent_sizing/internal/calc"
)

// Engine drives the draft calculator once per operating scenario.
type Engine struct {
	calc *calc.Calculator
}

// NewEngine returns an Engine over the given calculator.
func NewEngine(c *calc.Calculator) *Engine {
	return &Engine{calc: c}
}

// standardRatings: which appliance categories each vent standard is rated
// for. A Category IV (condensing, positive-pressure) appliance on a Type B
// vent is the canonical mismatch.
var standardRatings = map[vs.VentStandard]map[vs.ApplianceCategory]bool{
	vs.StandardUL441: {
		vs.CategoryI: true,
	},
	vs.StandardUL103: {
		vs.CategoryI:               true,
		vs.CategoryII:              true,
		vs.CategoryBuildingHeating: true,
	},
	vs.StandardUL1738: {
		vs.CategoryII:  true,
		vs.CategoryIII: true,
		vs.CategoryIV:  true,
	},
}

// Evaluate runs every applicable scenario and returns the results in a
// fixed order together with the worst case: the scenario whose combined
// available draft is greatest, i.e. leaves the least usable suction.
// ALL_MINUS_LARGEST only exists for systems of two or more appliances.
func (e *Engine) Evaluate(req vs.SystemRequest) ([]vs.CalculationResult, vs.ScenarioTag, error) {
	tags := []vs.ScenarioTag{vs.ScenarioAll}
	if len(req.Appliances) > 1 {
		tags = append(tags, vs.ScenarioAllMinusLargest)
	}
	tags = append(tags, vs.ScenarioSingleLargest, vs.ScenarioSingleSmallest)

	results := make([]vs.CalculationResult, 0, len(tags))
	worst := vs.ScenarioAll
	worstDraft := 0.0
	for i, tag := range tags {
		res, err := e.evaluateOne(req, tag)
		if err != nil {
			return nil, "", fmt.Errorf("scenario %s: %w", tag, err)
		}
		results = append(results, res)
		if i == 0 || res.AvailableDraftInWC > worstDraft {
			worst = tag
			worstDraft = res.AvailableDraftInWC
		}
	}
	return results, worst, nil
}

// activeSet resolves a scenario tag to the indices of firing appliances.
// Ties on highest input are broken by input order: the earliest appliance
// with the maximum MBH counts as "largest".
func activeSet(appliances []vs.ApplianceSpec, tag vs.ScenarioTag) []int {
	byInput := make([]int, len(appliances))
	for i := range byInput {
		byInput[i] = i
	}
	sort.SliceStable(byInput, func(a, b int) bool {
		return appliances[byInput[a]].InputMBH > appliances[byInput[b]].InputMBH
	})

	switch tag {
	case vs.ScenarioAllMinusLargest:
		active := make([]int, 0, len(appliances)-1)
		for i := range appliances {
			if i != byInput[0] {
				active = append(active, i)
			}
		}
		return active
	case vs.ScenarioSingleLargest:
		return []int{byInput[0]}
	case vs.ScenarioSingleSmallest:
		return []int{byInput[len(byInput)-1]}
	default:
		all := make([]int, len(appliances))
		for i := range all {
			all[i] = i
		}
		return all
	}
}

func (e *Engine) evaluateOne(req vs.SystemRequest, tag vs.ScenarioTag) (vs.CalculationResult, error) {
	active := activeSet(req.Appliances, tag)

	flows := make([]vs.ApplianceFlow, 0, len(active))
	for _, idx := range active {
		f, err := e.calc.ApplianceFlow(idx, req.Appliances[idx])
		if err != nil {
			return vs.CalculationResult{}, err
		}
		flows = append(flows, f)
	}
	totalCFM, mixedTempF := e.calc.CombinedFlow(flows)

	res := vs.CalculationResult{
		Scenario:         tag,
		ActiveAppliances: active,
		Flows:            flows,
		TotalCFM:         totalCFM,
		MixedFlueTempF:   mixedTempF,
	}

	// The connector carries a single appliance's stream; analyze it for the
	// highest-flow active appliance, the conservative case.
	if req.Connector != nil {
		peak := flows[0]
		for _, f := range flows[1:] {
			if f.CFM > peak.CFM {
				peak = f
			}
		}
		seg := e.calc.AnalyzeSegment("connector", *req.Connector, peak.CFM, peak.FlueTempF, req.Ambient)
		res.Connector = &seg
	}
	if req.Manifold != nil {
		seg := e.calc.AnalyzeSegment("manifold", *req.Manifold, totalCFM, mixedTempF, req.Ambient)
		res.Manifold = &seg
	}

	res.AvailableDraftInWC = combinedAvailable(res.Connector, res.Manifold)
	res.Compliance = e.compliance(req, res)
	return res, nil
}

// combinedAvailable sums segment drafts: connector plus manifold see the
// appliance in series.
func combinedAvailable(connector, manifold *vs.SegmentResult) float64 {
	var total float64
	if connector != nil {
		total += connector.AvailableDraftInWC
	}
	if manifold != nil {
		total += manifold.AvailableDraftInWC
	}
	return total
}

// compliance flags velocity outside the acceptable band on the governing
// segment and category/vent-standard mismatches. Warnings never block the
// calculation.
func (e *Engine) compliance(req vs.SystemRequest, res vs.CalculationResult) vs.ComplianceFlags {
	var flags vs.ComplianceFlags
	p := e.calc.Params()

	governing := res.Manifold
	if governing == nil {
		governing = res.Connector
	}
	if governing != nil {
		if governing.VelocityFPS < p.MinVelocityFPS {
			flags.VelocityLow = true
			flags.Notes = append(flags.Notes, fmt.Sprintf(
				"%s velocity %.1f ft/s below %.0f ft/s: condensate may pool instead of draining", governing.Role, governing.VelocityFPS, p.MinVelocityFPS))
		}
		if governing.VelocityFPS > p.MaxVelocityFPS {
			flags.VelocityHigh = true
			flags.Notes = append(flags.Notes, fmt.Sprintf(
				"%s velocity %.1f ft/s above %.0f ft/s: noise and erosion risk", governing.Role, governing.VelocityFPS, p.MaxVelocityFPS))
		}
	}

	for _, seg := range []*vs.VentSegment{req.Connector, req.Manifold} {
		if seg == nil {
			continue
		}
		rated := standardRatings[seg.Standard]
		for _, idx := range res.ActiveAppliances {
			cat := req.Appliances[idx].Category
			if !rated[cat] {
				flags.CategoryMismatch = true
				flags.Notes = append(flags.Notes, fmt.Sprintf(
					"%s is not rated for Category %s appliance #%d", seg.Standard, cat, idx+1))
			}
		}
	}
	return flags
}
