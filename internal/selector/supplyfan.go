package selector

import (
	"fmt"

	vs "vent_sizing"
)

// selectSupplyFan picks the smallest catalog fan whose maximum rated flow
// covers the combustion-air requirement of the all-firing scenario. Supply
// fans have a flow-only rating, so no curve interpolation is involved.
func (s *Selector) selectSupplyFan(sel *vs.SelectionResult, all vs.CalculationResult, ambientTempF float64) {
	required := s.calc.CombustionAirCFM(all.Flows, ambientTempF)
	for _, fan := range s.catalog.SupplyFans() {
		if fan.MaxCFM >= required {
			sel.SupplyFanModel = fan.Model
			return
		}
	}
	sel.GuardRails = append(sel.GuardRails, vs.GuardRailDecision{
		Rule:      "supply-air-no-fit",
		Action:    "none",
		Rationale: fmt.Sprintf("no supply fan covers the %.0f CFM combustion-air requirement", required),
	})
}
