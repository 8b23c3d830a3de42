// Package elevation estimates site altitude from a postal code and converts
// altitude to barometric pressure using the standard atmosphere model.
package elevation

import (
	"math"
	"strings"
	"unicode"
)

// Standard atmosphere constants (US Standard Atmosphere, 1976).
const (
	seaLevelPressureInHg = 29.92
	lapseFactor          = 6.87535e-6
	pressureExponent     = 5.2561
)

// PressureInHg returns the barometric pressure at the given altitude in feet.
func PressureInHg(elevationFt float64) float64 {
	return seaLevelPressureInHg * math.Pow(1.0-lapseFactor*elevationFt, pressureExponent)
}

// Lookup resolves a US ZIP or Canadian postal code to an estimated ground
// elevation in feet. Resolution degrades gracefully: a full prefix match is
// preferred, then a shorter regional prefix, then sea level. The second
// return value reports whether any table entry matched.
func Lookup(postalCode string) (float64, bool) {
	code := normalize(postalCode)
	if code == "" {
		return 0, false
	}
	if isCanadian(code) {
		if ft, ok := canadaElevations[code[:1]]; ok {
			return ft, true
		}
		return 0, false
	}
	for n := 3; n >= 1; n-- {
		if len(code) < n {
			continue
		}
		if ft, ok := zipElevations[code[:n]]; ok {
			return ft, true
		}
	}
	return 0, false
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isCanadian(code string) bool {
	return len(code) > 0 && unicode.IsLetter(rune(code[0]))
}
