package reservation

import "github.com/shopspring/decimal"

var (
	// BaseNightlyRate is the per-guest, per-day price.
	BaseNightlyRate = decimal.New(2099, -2)
	// BreakfastMultiplier applies to the whole stay when breakfast is included.
	BreakfastMultiplier = decimal.New(125, -2)
	standardMultiplier  = decimal.New(1, 0)
)

// CalculatePrice prices a stay: guests * 20.99 * days, times 1.25 with breakfast,
// rounded half away from zero to cents. Arithmetic is exact decimal, so the same
// inputs always produce the same value.
func CalculatePrice(guestCount uint8, days int, breakfast bool) decimal.Decimal {
	multiplier := standardMultiplier
	if breakfast {
		multiplier = BreakfastMultiplier
	}
	return decimal.NewFromInt(int64(guestCount)).
		Mul(BaseNightlyRate).
		Mul(decimal.NewFromInt(int64(days))).
		Mul(multiplier).
		Round(2)
}
