/**
 * @description
 * Pure tax and fee calculations for outward remittances, operating on INR
 * principal amounts. These functions are deterministic and side-effect-free:
 * the service computes them once at quote time and freezes the result into the
 * order's calculation snapshot.
 *
 * TCS (Tax Collected at Source) and GST follow the slab rules for LRS
 * remittances: education-purpose transfers attract a flat 0.5% TCS, everything
 * else is TCS-free up to the 10 lakh threshold and 5% on the excess. GST is
 * charged on the deemed service-fee portion, tiered with a hard floor of 145.
 */

package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PurposeEducation is the remittance purpose code that attracts flat-rate TCS.
const PurposeEducation = "education"

var (
	tcsEducationRate = decimal.NewFromFloat(0.005)
	tcsThreshold     = decimal.NewFromInt(1_000_000)
	tcsExcessRate    = decimal.NewFromFloat(0.05)

	gstTierALimit = decimal.NewFromInt(100_000)
	gstTierBLimit = decimal.NewFromInt(1_000_000)
	gstRate       = decimal.NewFromFloat(0.18)
	gstFixed      = decimal.NewFromInt(100)
	gstFloor      = decimal.NewFromInt(145)

	gstTierARate = decimal.NewFromFloat(0.01)
	gstTierBBase = decimal.NewFromInt(1_000)
	gstTierBRate = decimal.NewFromFloat(0.005)
	gstTierCBase = decimal.NewFromInt(5_500)
	gstTierCRate = decimal.NewFromFloat(0.001)
)

// round2 applies currency-minor-unit rounding (2 decimal places, half-up for
// the positive amounts this package deals in).
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateTCS returns the Tax Collected at Source for amount (INR) remitted
// under the given purpose code. Education remittances pay a flat 0.5%; other
// purposes pay nothing up to 1,000,000 and 5% on the portion above it.
func CalculateTCS(amount decimal.Decimal, purpose string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(purpose), PurposeEducation) {
		return round2(amount.Mul(tcsEducationRate))
	}
	if amount.LessThanOrEqual(tcsThreshold) {
		return decimal.Zero.Round(2)
	}
	return round2(amount.Sub(tcsThreshold).Mul(tcsExcessRate))
}

// CalculateGST returns the GST on the deemed service-fee portion of amount
// (INR). The tiered value is continuous and non-decreasing in amount; the
// result never drops below the 145 floor.
func CalculateGST(amount decimal.Decimal) decimal.Decimal {
	var tiered decimal.Decimal
	switch {
	case amount.LessThanOrEqual(gstTierALimit):
		tiered = amount.Mul(gstTierARate).Mul(gstRate).Add(gstFixed)
	case amount.LessThanOrEqual(gstTierBLimit):
		excess := amount.Sub(gstTierALimit)
		tiered = gstTierBBase.Add(excess.Mul(gstTierBRate)).Mul(gstRate).Add(gstFixed)
	default:
		excess := amount.Sub(gstTierBLimit)
		tiered = gstTierCBase.Add(excess.Mul(gstTierCRate)).Mul(gstRate).Add(gstFixed)
	}
	if tiered.LessThan(gstFloor) {
		tiered = gstFloor
	}
	return round2(tiered)
}

// CalculateTotalPayable returns amount plus TCS, GST and the bank fee, i.e.
// what the customer actually pays for a remittance of amount INR.
func CalculateTotalPayable(amount decimal.Decimal, purpose string, bankFee decimal.Decimal) decimal.Decimal {
	return round2(amount.
		Add(CalculateTCS(amount, purpose)).
		Add(CalculateGST(amount)).
		Add(bankFee))
}
