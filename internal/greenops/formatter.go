package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(125000) returns "125,000".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// MaxFloatPrecision is the most decimals FormatFloat renders. Higher
// precisions are clamped to it.
const MaxFloatPrecision = 9

// FormatFloat rounds f half away from zero to precision decimals and adds
// thousand separators to the integer part.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	precision = min(precision, MaxFloatPrecision)

	const base = 10
	scale := int64(math.Pow(base, float64(precision)))
	units := int64(math.Round(math.Abs(f) * float64(scale)))

	sign := ""
	if f < 0 && units != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%0*d", sign, FormatNumber(units/scale), precision, units%scale)
}

// FormatLarge abbreviates values from one million upward
// ("~1.5 billion", "~325.5 million") and separates thousands below that.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatTonnes renders whole tonnes CO2e, e.g. "62,500 tCO₂e".
func FormatTonnes(t float64) string {
	return FormatNumber(int64(math.Round(t))) + " " + TonnesUnit
}

// FormatFootprint renders a per-unit footprint, e.g. "1.55 kg CO₂e".
func FormatFootprint(kg float64) string {
	return FormatFloat(kg, 2) + " " + KgUnit
}

// FormatEuroMillions renders EUR millions with the given precision,
// e.g. "€11.3M" or "-€0.2M".
func FormatEuroMillions(v float64, precision int) string {
	s := FormatFloat(math.Abs(v), precision)
	if v < 0 && s != FormatFloat(0, precision) {
		return "-" + EuroSymbol + s + MillionSuffix
	}
	return EuroSymbol + s + MillionSuffix
}

// FormatPercent renders a percentage, e.g. "50.0%".
func FormatPercent(v float64, precision int) string {
	return FormatFloat(v, precision) + "%"
}
