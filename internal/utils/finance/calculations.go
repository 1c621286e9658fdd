package finance

import (
	"github.com/shopspring/decimal"
)

var (
	one            = decimal.NewFromInt(1)
	hundred        = decimal.NewFromInt(100)
	twelve         = decimal.NewFromInt(12)
	defaultDownPct = decimal.NewFromInt(20)
)

// TotalAmount computes the transaction total from its price components:
// vehiclePrice + taxes + fees - discount.
//
// The raw arithmetic is returned unchanged, so a discount larger than the
// other components yields a negative total. Callers creating transactions
// must reject negative totals; this function stays pure so the condition is
// observable.
func TotalAmount(vehiclePrice, taxes, fees, discount decimal.Decimal) decimal.Decimal {
	return vehiclePrice.Add(taxes).Add(fees).Sub(discount)
}

// MonthlyInstallment computes the fixed monthly payment for an amortized
// loan of the given principal over tenureMonths at annualRatePct percent
// per year, rounded to the nearest whole currency unit.
//
//	monthlyRate = annualRatePct / 100 / 12
//	installment = principal * monthlyRate * (1+monthlyRate)^tenure / ((1+monthlyRate)^tenure - 1)
//
// A non-positive rate or tenure resolves to zero; the precondition check
// also guards the division below.
func MonthlyInstallment(principal decimal.Decimal, tenureMonths int, annualRatePct decimal.Decimal) decimal.Decimal {
	if tenureMonths <= 0 || annualRatePct.LessThanOrEqual(decimal.Zero) || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(tenureMonths)))

	installment := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one))
	return installment.Round(0)
}

// LeasingAmount derives the financed principal: totalAmount - downPayment.
func LeasingAmount(totalAmount, downPayment decimal.Decimal) decimal.Decimal {
	return totalAmount.Sub(downPayment)
}

// DefaultDownPayment returns the standard 20% down payment for a total,
// used when the caller does not specify one.
func DefaultDownPayment(totalAmount decimal.Decimal) decimal.Decimal {
	return totalAmount.Mul(defaultDownPct).Div(hundred).Round(2)
}
