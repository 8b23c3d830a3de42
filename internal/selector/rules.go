package selector

import (
	"fmt"

	vs "vent_sizing"
)

// ruleContext is the evaluated system state the guard rails decide on.
type ruleContext struct {
	categories        map[vs.ApplianceCategory]bool
	mixedCategories   bool
	allCategoryI      bool
	allCategoryIV     bool
	operatingPressure float64 // worst-case pressure magnitude at the appliance, in w.c.
	suctionDeficit    float64 // pressure the inducer must make up, >= 0
	connectorLoss     float64 // worst-case connector loss magnitude
	turndownDeficit   float64 // ALL_MINUS_LARGEST suction deficit, >= 0
	fixedSpeedMax     float64 // what a fixed-speed inducer can deliver
	catIVThreshold    float64
}

// ruleOutcome is what a matched rule imposes on the selection.
type ruleOutcome struct {
	poweredInducer   bool
	overdraftControl bool
	condensingOnly   bool // restrict to condensing-rated series
	variableOnly     bool // restrict to variable-speed series
	excludeConnector bool // drop connector loss from the sizing pressure
	barometricDamper bool // unpowered damper per Category I appliance
}

// guardRule is one ordered (predicate, action, rationale) row. The table is
// evaluated top-down with first-match-wins semantics, so precedence is the
// row order and nothing else.
type guardRule struct {
	name      string
	predicate func(ruleContext) bool
	outcome   ruleOutcome
	rationale func(ruleContext) string
}

var guardRules = []guardRule{
	{
		name:      "mixed-categories",
		predicate: func(c ruleContext) bool { return c.mixedCategories },
		outcome:   ruleOutcome{poweredInducer: true},
		rationale: func(c ruleContext) string {
			return "mixed appliance categories on one vent require a powered draft inducer regardless of computed margin"
		},
	},
	{
		name: "cat-iv-low-pressure",
		predicate: func(c ruleContext) bool {
			return c.allCategoryIV && c.operatingPressure < c.catIVThreshold
		},
		outcome: ruleOutcome{poweredInducer: true, condensingOnly: true},
		rationale: func(c ruleContext) string {
			return fmt.Sprintf("all Category IV with operating pressure %.3f in w.c. under %.2f: condensing-rated inducer family only",
				c.operatingPressure, c.catIVThreshold)
		},
	},
	{
		name: "cat-iv-positive-pressure",
		predicate: func(c ruleContext) bool {
			return c.allCategoryIV && c.operatingPressure >= c.catIVThreshold
		},
		outcome: ruleOutcome{poweredInducer: true, excludeConnector: true},
		rationale: func(c ruleContext) string {
			return fmt.Sprintf("all Category IV under positive vent pressure: connector loss %.3f in w.c. excluded from the sizing requirement",
				c.connectorLoss)
		},
	},
	{
		name:      "cat-i-barometric",
		predicate: func(c ruleContext) bool { return c.allCategoryI },
		outcome:   ruleOutcome{barometricDamper: true},
		rationale: func(c ruleContext) string {
			return "all Category I: an unpowered barometric damper per appliance suffices, no powered inducer offered"
		},
	},
	{
		name: "turndown-overdraft",
		predicate: func(c ruleContext) bool {
			return c.turndownDeficit > c.fixedSpeedMax
		},
		outcome: ruleOutcome{poweredInducer: true, overdraftControl: true, variableOnly: true},
		rationale: func(c ruleContext) string {
			return fmt.Sprintf("turndown requirement %.3f in w.c. exceeds fixed-speed delivery %.2f: variable-speed family with overdraft control required",
				c.turndownDeficit, c.fixedSpeedMax)
		},
	},
}

// applyGuardRails walks the table top-down and returns the first matched
// rule's outcome with its audit entry, or the default outcome (powered
// inducer iff there is a suction deficit) when nothing matches.
func applyGuardRails(ctx ruleContext) (ruleOutcome, []vs.GuardRailDecision) {
	for _, r := range guardRules {
		if r.predicate(ctx) {
			d := vs.GuardRailDecision{
				Rule:      r.name,
				Action:    describeOutcome(r.outcome),
				Rationale: r.rationale(ctx),
			}
			return r.outcome, []vs.GuardRailDecision{d}
		}
	}
	return ruleOutcome{poweredInducer: ctx.suctionDeficit > 0}, nil
}

func describeOutcome(o ruleOutcome) string {
	switch {
	case o.barometricDamper:
		return "barometric-damper"
	case o.condensingOnly:
		return "powered-inducer-condensing-only"
	case o.excludeConnector:
		return "powered-inducer-manifold-pressure-only"
	case o.overdraftControl:
		return "variable-inducer-with-overdraft-control"
	default:
		return "powered-inducer"
	}
}
