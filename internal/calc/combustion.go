package calc

import (
	"fmt"

	vs "vent_sizing"
)

// MFactor returns lb of combustion products per 1000 BTU fired, derived from
// the fuel's stoichiometric air requirement and the measured CO2%. Lower CO2
// means more excess air and therefore more flue gas per BTU.
func (p Params) MFactor(fuel vs.FuelType, co2Percent float64) (float64, error) {
	if co2Percent <= 0 {
		return 0, fmt.Errorf("co2 percent must be positive, got %.2f", co2Percent)
	}
	c, ok := p.Fuels[fuel]
	if !ok {
		return 0, fmt.Errorf("no combustion coefficients for fuel %q", fuel)
	}
	return c.A * (c.B + c.C/co2Percent), nil
}

// AirDensity returns lbm/ft³ at the given temperature, ideal-gas at the
// standard reference pressure. Barometric pressure enters the stack-effect
// term only, matching the published method.
func (p Params) AirDensity(tempF float64) float64 {
	return p.AtmPressureLbFt2 / (p.GasConstant * (tempF + RankineOffset))
}

// ApplianceFlow resolves category defaults and computes the flue-gas flow
// for one appliance at its own flue temperature.
func (c *Calculator) ApplianceFlow(index int, a vs.ApplianceSpec) (vs.ApplianceFlow, error) {
	co2 := a.CO2Percent
	tempF := a.FlueTempF
	if d, ok := c.params.Categories[a.Category]; ok {
		if co2 == 0 {
			co2 = d.CO2Percent
		}
		if tempF == 0 {
			tempF = d.FlueTempF
		}
	}
	m, err := c.params.MFactor(a.Fuel, co2)
	if err != nil {
		return vs.ApplianceFlow{}, err
	}
	massPerMin := m * a.InputMBH / 60 // M is per 1000 BTU, MBH is 1000 BTU/hr
	return vs.ApplianceFlow{
		Index:            index,
		CFM:              massPerMin / c.params.AirDensity(tempF),
		MassFlowLbPerMin: massPerMin,
		FlueTempF:        tempF,
		MFactor:          m,
	}, nil
}

// CombinedFlow adiabatically mixes the active appliances' flue streams:
// the mixed temperature is the mass-weighted absolute temperature and the
// aggregate CFM is re-evaluated at that temperature's density.
func (c *Calculator) CombinedFlow(flows []vs.ApplianceFlow) (totalCFM, mixedTempF float64) {
	var totalMass, weighted float64
	for _, f := range flows {
		totalMass += f.MassFlowLbPerMin
		weighted += f.MassFlowLbPerMin * (f.FlueTempF + RankineOffset)
	}
	if totalMass == 0 {
		return 0, 0
	}
	mixedTempF = weighted/totalMass - RankineOffset
	totalCFM = totalMass / c.params.AirDensity(mixedTempF)
	return totalCFM, mixedTempF
}

// CombustionAirCFM is the supply-air requirement for the given flows,
// evaluated at ambient density: the air drawn in weighs what the flue
// products weigh, less the fuel mass, which is ignored as conservative.
func (c *Calculator) CombustionAirCFM(flows []vs.ApplianceFlow, ambientTempF float64) float64 {
	var totalMass float64
	for _, f := range flows {
		totalMass += f.MassFlowLbPerMin
	}
	return totalMass / c.params.AirDensity(ambientTempF)
}
