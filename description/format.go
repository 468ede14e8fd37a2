package description

import (
	"math"
	"strconv"
)

// Divisors applied before rounding; needs and corruption are stored in tenths of a percent
const (
	divisorVital   = 1.0
	divisorPercent = 10.0
)

// roundInt rounds half to even, matching the host's integer rounding
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

// formatEffectValue renders an instant delta: empty for zero, "+" for positive
func formatEffectValue(value, divisor float64, suffix string) string {
	content := ""
	if value != 0 {
		content = strconv.Itoa(roundInt(value/divisor)) + suffix
	}
	if value > 0 {
		content = "+" + content
	}
	return content
}

// formatStatusValue renders a per-tick value as its total over duration, e.g. "+36 / 2min"
func formatStatusValue(perTick, duration, divisor float64, suffix string) string {
	if perTick == 0 {
		return ""
	}
	total := perTick * duration
	content := strconv.Itoa(roundInt(total/divisor)) + suffix + " / " + formatDuration(duration)
	if perTick > 0 {
		content = "+" + content
	}
	return content
}

// formatDuration truncates: 59.9 -> "59sec", 119 -> "1min"
func formatDuration(seconds float64) string {
	if seconds < 60 {
		return strconv.Itoa(int(math.Floor(math.Mod(seconds, 60)))) + "sec"
	}
	return strconv.Itoa(int(math.Floor(seconds/60))) + "min"
}

// formatSeconds renders a cooldown as "Ns" or "Mm Ns", truncating fractions
func formatSeconds(seconds float64, withMinutes bool) string {
	total := int(math.Floor(seconds))
	if !withMinutes {
		return strconv.Itoa(total) + "s"
	}
	return strconv.Itoa(total/60) + "m " + strconv.Itoa(total%60) + "s"
}

// formatNumber prints a cost the way the host prints floats: no trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
