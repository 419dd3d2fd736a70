/**
 * @description
 * The quote builder combines a live interbank rate with the partner margin to
 * produce the immutable quote and calculation snapshots an order is created
 * with. Build is a pure function of its inputs: re-running it with the same
 * arguments yields an identical pair of snapshots, and the only timestamp it
 * carries is the one passed in.
 */

package quote

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eduremit/remittance-service/internal/domain"
)

var (
	// ErrNonPositiveAmount is returned when a quote is requested for a zero or
	// negative principal.
	ErrNonPositiveAmount = errors.New("principal amount must be positive")
	// ErrQuoteInconsistency is returned when the quote and calculation
	// snapshots fail to reconcile. It signals a defect (or a tampered
	// snapshot) and must never be swallowed.
	ErrQuoteInconsistency = errors.New("quote and calculation snapshots do not reconcile")
)

// reconcileTolerance absorbs the half-up rounding applied to each component.
var reconcileTolerance = decimal.NewFromFloat(0.01)

// Build produces the frozen quote and calculation snapshots for a prospective
// order.
//
//	customerRate = ibrRate + margin   (margin is an absolute addend, not a %)
//	inrAmount    = principal * ibrRate          (tax base, interbank cost)
//	totalAmount  = principal * customerRate     (what the customer is charged)
//
// The calculation snapshot applies the tax/fee calculator to inrAmount and the
// pair is reconciled before being returned.
func Build(principal decimal.Decimal, currency string, ibrRate, margin decimal.Decimal, purpose string, bankFee decimal.Decimal, quotedAt time.Time) (domain.QuoteSnapshot, domain.CalculationSnapshot, error) {
	if !principal.IsPositive() {
		return domain.QuoteSnapshot{}, domain.CalculationSnapshot{}, ErrNonPositiveAmount
	}

	customerRate := ibrRate.Add(margin)
	inrAmount := round2(principal.Mul(ibrRate))
	totalAmount := round2(principal.Mul(customerRate))

	q := domain.QuoteSnapshot{
		Amount:       principal,
		Currency:     currency,
		IBRRate:      ibrRate,
		Margin:       margin,
		CustomerRate: customerRate,
		TotalAmount:  totalAmount,
		QuotedAt:     quotedAt,
	}
	c := domain.CalculationSnapshot{
		INRAmount:    inrAmount,
		BankFee:      round2(bankFee),
		GST:          CalculateGST(inrAmount),
		TCS:          CalculateTCS(inrAmount, purpose),
		TotalPayable: CalculateTotalPayable(inrAmount, purpose, bankFee),
	}

	if err := Reconcile(c); err != nil {
		return domain.QuoteSnapshot{}, domain.CalculationSnapshot{}, err
	}
	return q, c, nil
}

// Reconcile checks that a calculation snapshot is internally consistent:
// totalPayable must equal inrAmount + TCS + GST + bankFee within rounding
// tolerance. It is called at build time and again before an order is rate
// locked, so a corrupted stored snapshot is reported instead of acted on.
func Reconcile(c domain.CalculationSnapshot) error {
	expected := c.INRAmount.Add(c.TCS).Add(c.GST).Add(c.BankFee)
	if c.TotalPayable.Sub(expected).Abs().GreaterThan(reconcileTolerance) {
		return ErrQuoteInconsistency
	}
	return nil
}
