package calc

import (
	"math"

	vs "vent_sizing"
)

// FittingTable is the loss-coefficient set one vent standard publishes.
type FittingTable struct {
	Elbow90        float64
	Elbow45        float64
	Elbow30        float64
	Tee            float64
	TerminationCap float64
	Friction       float64 // base friction factor for the length term
}

// fittingTables: K-factors by vent-type standard. Each standard owns its own
// table; the calculator never special-cases a standard in code.
var fittingTables = map[vs.VentStandard]FittingTable{
	vs.StandardUL441:  {Elbow90: 0.75, Elbow45: 0.25, Elbow30: 0.12, Tee: 1.25, TerminationCap: 0.50, Friction: 0.40},
	vs.StandardUL1738: {Elbow90: 0.30, Elbow45: 0.15, Elbow30: 0.12, Tee: 1.25, TerminationCap: 0.50, Friction: 0.27},
	vs.StandardUL103:  {Elbow90: 0.30, Elbow45: 0.15, Elbow30: 0.12, Tee: 1.25, TerminationCap: 0.50, Friction: 0.30},
}

// FittingsFor exposes the coefficient table for a standard.
func FittingsFor(std vs.VentStandard) (FittingTable, bool) {
	t, ok := fittingTables[std]
	return t, ok
}

// CrossSectionFt2 is the inside area of a round vent, diameter in inches.
func CrossSectionFt2(diameterIn float64) float64 {
	d := diameterIn / 12
	return math.Pi * d * d / 4
}

// VelocityFPS converts a volumetric flow through a diameter to ft/s.
func VelocityFPS(cfm, diameterIn float64) float64 {
	return cfm / CrossSectionFt2(diameterIn) / 60
}

// VelocityPressure is the pressure equivalent of flow velocity in in w.c.:
// VP = ρ × (V/1096.2)², with V in FPM. It scales with velocity squared.
func (p Params) VelocityPressure(velocityFPS, gasTempF float64) float64 {
	fpm := velocityFPS * 60
	term := fpm / p.VelocityDenomFPM
	return p.AirDensity(gasTempF) * term * term
}

// SegmentLoss itemizes the pressure loss of one vent segment at the given
// flow: a friction length term f×(L/D) plus ΣK over the declared fittings,
// all multiplied by velocity pressure. Returned losses are positive
// magnitudes in in w.c.
func (p Params) SegmentLoss(seg vs.VentSegment, velocityFPS, gasTempF float64) (items []vs.LossItem, total float64) {
	table := fittingTables[seg.Standard]
	vp := p.VelocityPressure(velocityFPS, gasTempF)

	add := func(source string, count int, kEach float64) {
		if count <= 0 || kEach == 0 {
			return
		}
		kTotal := kEach * float64(count)
		items = append(items, vs.LossItem{
			Source:   source,
			Count:    count,
			KEach:    kEach,
			KTotal:   kTotal,
			LossInWC: kTotal * vp,
		})
	}

	if seg.LengthFt > 0 && seg.DiameterIn > 0 {
		frictionK := table.Friction * seg.LengthFt / seg.DiameterIn
		items = append(items, vs.LossItem{
			Source:   "length",
			KTotal:   frictionK,
			LossInWC: frictionK * vp,
		})
	}
	add("90_elbow", seg.Fittings.Elbow90, table.Elbow90)
	add("45_elbow", seg.Fittings.Elbow45, table.Elbow45)
	add("30_elbow", seg.Fittings.Elbow30, table.Elbow30)
	add("tee", seg.Fittings.Tee, table.Tee)
	if seg.TerminationCap {
		add("termination_cap", 1, table.TerminationCap)
	}

	for _, it := range items {
		total += it.LossInWC
	}
	return items, total
}
