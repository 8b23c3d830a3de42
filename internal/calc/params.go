package calc

import (
	vs "vent_sizing"
)

// ----------- Physical constants (ASHRAE chimney equations) -----------
//
// The numeric constants below come from the ASHRAE steady-state chimney
// design equations. They are carried in Params rather than hard-coded so a
// standards revision is a data change, not a code change.
const (
	RankineOffset = 459.67 // °F to °R

	defaultGasConstant   = 53.35  // ft·lbf/(lbm·°R), air
	defaultAtmPressure   = 2116.2 // lbf/ft², standard atmosphere
	defaultDraftCoeff    = 0.2554 // in w.c. per (in Hg · ft · 1/°R)
	defaultVelocityDenom = 1096.2 // FPM per sqrt(in w.c. / (lbm/ft³))
	StandardBarometricHg = 29.92  // in Hg at sea level
	standardAirTempF     = 70.0   // fan curves are rated at standard air
)

// FuelCoefficients are the ASHRAE combustion M-factor terms for one fuel:
// M = A × (B + C/%CO2), lb of products per 1000 BTU fired.
type FuelCoefficients struct {
	A float64
	B float64
	C float64
}

// CategoryDefaults carry the per-category CO2% and flue temperature used
// when an appliance does not override them, plus the allowable operating
// pressure window at the appliance outlet (in w.c., negative = draft).
type CategoryDefaults struct {
	CO2Percent  float64
	FlueTempF   float64
	PressureMin float64
	PressureMax float64
}

// Params holds every tunable constant of the draft model.
type Params struct {
	GasConstant      float64 // ft·lbf/(lbm·°R)
	AtmPressureLbFt2 float64 // density reference pressure
	DraftCoefficient float64 // stack-effect coefficient
	VelocityDenomFPM float64 // velocity-pressure denominator
	MinVelocityFPS   float64 // below: condensate pooling risk
	MaxVelocityFPS   float64 // above: noise/erosion risk
	Fuels            map[vs.FuelType]FuelCoefficients
	Categories       map[vs.ApplianceCategory]CategoryDefaults
}

// DefaultParams returns the published constants.
func DefaultParams() Params {
	return Params{
		GasConstant:      defaultGasConstant,
		AtmPressureLbFt2: defaultAtmPressure,
		DraftCoefficient: defaultDraftCoeff,
		VelocityDenomFPM: defaultVelocityDenom,
		MinVelocityFPS:   5,
		MaxVelocityFPS:   50,
		Fuels: map[vs.FuelType]FuelCoefficients{
			vs.FuelNaturalGas: {A: 0.705, B: 0.159, C: 10.72},
			vs.FuelPropane:    {A: 0.704, B: 0.144, C: 12.61},
			vs.FuelOil:        {A: 0.72, B: 0.12, C: 14.4},
		},
		Categories: map[vs.ApplianceCategory]CategoryDefaults{
			vs.CategoryI:               {CO2Percent: 6.8, FlueTempF: 320, PressureMin: -0.08, PressureMax: -0.03},
			vs.CategoryII:              {CO2Percent: 8.5, FlueTempF: 285, PressureMin: -0.08, PressureMax: -0.03},
			vs.CategoryIII:             {CO2Percent: 8.0, FlueTempF: 320, PressureMin: 0.00, PressureMax: 0.08},
			vs.CategoryIV:              {CO2Percent: 8.5, FlueTempF: 275, PressureMin: -0.05, PressureMax: 0.25},
			vs.CategoryBuildingHeating: {CO2Percent: 12.0, FlueTempF: 450, PressureMin: -0.10, PressureMax: -0.02},
		},
	}
}
