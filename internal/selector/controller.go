package selector

import (
	vs "vent_sizing"
)

// Subsystem suffix letters, concatenated in a fixed order so the same
// configuration always yields the same model string.
const (
	suffixOverdraft = "O" // overdraft control
	suffixSupplyAir = "P" // pressurized supply air
	suffixInducer   = "V" // powered vent (inducer) control
)

// selectController is a deterministic lookup keyed by appliance-count
// bucket, the set of required subsystems, and the touchscreen preference.
// Systems with no powered subsystem get no controller.
func (s *Selector) selectController(sel *vs.SelectionResult, appliances int, touchscreen bool) {
	suffix := ""
	if sel.OverdraftControl {
		suffix += suffixOverdraft
	}
	if sel.SupplyAir {
		suffix += suffixSupplyAir
	}
	if sel.PoweredInducer {
		suffix += suffixInducer
	}
	if suffix == "" {
		return
	}

	var base string
	switch {
	case touchscreen && appliances <= 4:
		base = "V300"
	case touchscreen && appliances <= 6:
		base = "V250"
	case touchscreen:
		base = "V350"
	case appliances == 1:
		base = "H100"
	case appliances == 2:
		base = "V150"
	default:
		// Three or more appliances exceed the LCD line; the touchscreen
		// V250 is the smallest controller that can run them.
		base = "V250"
	}

	sel.ControllerBase = base
	sel.ControllerSuffix = suffix
	sel.Controller = base + "-" + suffix
}
