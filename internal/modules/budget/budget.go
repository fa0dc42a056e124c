// README: Budget estimator computes deterministic trip cost figures.
package budget

// Per-person per-day rates by tier, in a nominal currency unit.
const (
	RateLow    = 40.0
	RateMedium = 80.0
	RateHigh   = 150.0
)

// Rate returns the per-person per-day rate for a budget tier. Unrecognized
// tiers fall back to medium.
func Rate(level string) float64 {
	switch level {
	case "low":
		return RateLow
	case "high":
		return RateHigh
	default:
		return RateMedium
	}
}

// Estimate returns the total and per-person budget for a trip. Travelers
// are clamped to at least 1 so the per-person division is always defined.
func Estimate(days, travelers int, level string) (total, perPerson float64) {
	if travelers < 1 {
		travelers = 1
	}
	total = Rate(level) * float64(days) * float64(travelers)
	return total, total / float64(travelers)
}
