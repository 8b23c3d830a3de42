package vent_sizing

import "fmt"

// ValidationError reports an input outside the supported domain. It is
// returned before any calculation proceeds; inputs are never coerced.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate enforces the structural invariants of a request: 1-6 appliances,
// segment diameters at least the largest connected outlet, non-negative
// fitting counts, and the presence of required fields.
func (r *SystemRequest) Validate() error {
	if n := len(r.Appliances); n < 1 || n > 6 {
		return &ValidationError{Field: "appliances", Reason: fmt.Sprintf("count must be 1-6, got %d", n)}
	}
	var maxOutlet float64
	for i, a := range r.Appliances {
		if a.InputMBH <= 0 {
			return &ValidationError{Field: fmt.Sprintf("appliances[%d].input_mbh", i), Reason: "must be positive"}
		}
		if a.OutletDiameterIn <= 0 {
			return &ValidationError{Field: fmt.Sprintf("appliances[%d].outlet_diameter_in", i), Reason: "must be positive"}
		}
		switch a.Category {
		case CategoryI, CategoryII, CategoryIII, CategoryIV, CategoryBuildingHeating:
		default:
			return &ValidationError{Field: fmt.Sprintf("appliances[%d].category", i), Reason: "unknown category " + string(a.Category)}
		}
		switch a.Fuel {
		case FuelNaturalGas, FuelPropane, FuelOil:
		default:
			return &ValidationError{Field: fmt.Sprintf("appliances[%d].fuel", i), Reason: "unknown fuel " + string(a.Fuel)}
		}
		if a.CO2Percent < 0 {
			return &ValidationError{Field: fmt.Sprintf("appliances[%d].co2_percent", i), Reason: "must not be negative"}
		}
		if a.OutletDiameterIn > maxOutlet {
			maxOutlet = a.OutletDiameterIn
		}
	}
	if r.Connector == nil && r.Manifold == nil {
		return &ValidationError{Field: "connector", Reason: "at least one vent segment is required"}
	}
	for _, seg := range []struct {
		name string
		s    *VentSegment
	}{{"connector", r.Connector}, {"manifold", r.Manifold}} {
		if seg.s == nil {
			continue
		}
		if err := seg.s.validate(seg.name, maxOutlet); err != nil {
			return err
		}
	}
	if r.Ambient.BarometricInHg <= 0 {
		return &ValidationError{Field: "ambient.barometric_in_hg", Reason: "must be positive"}
	}
	return nil
}

func (s *VentSegment) validate(name string, maxOutlet float64) error {
	if s.DiameterIn <= 0 {
		return &ValidationError{Field: name + ".diameter_in", Reason: "must be positive"}
	}
	if s.DiameterIn < maxOutlet {
		return &ValidationError{
			Field:  name + ".diameter_in",
			Reason: fmt.Sprintf("%.1f in is smaller than the largest connected outlet %.1f in", s.DiameterIn, maxOutlet),
		}
	}
	if s.LengthFt < 0 || s.RiseFt < 0 {
		return &ValidationError{Field: name, Reason: "length and rise must not be negative"}
	}
	switch s.Standard {
	case StandardUL441, StandardUL103, StandardUL1738:
	default:
		return &ValidationError{Field: name + ".standard", Reason: "unknown vent standard " + string(s.Standard)}
	}
	f := s.Fittings
	if f.Elbow90 < 0 || f.Elbow45 < 0 || f.Elbow30 < 0 || f.Tee < 0 {
		return &ValidationError{Field: name + ".fittings", Reason: "counts must not be negative"}
	}
	return nil
}
