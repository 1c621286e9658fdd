package finance_test

import (
	"testing"

	"github.com/autohaus/dms_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestTotalAmount(t *testing.T) {
	total := finance.TotalAmount(d(32000), d(1600), d(400), d(500))
	assert.True(t, total.Equal(d(33500)), "expected 33500, got %s", total)
}

func TestTotalAmount_ZeroComponents(t *testing.T) {
	total := finance.TotalAmount(d(25000), decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, total.Equal(d(25000)))
}

func TestTotalAmount_DiscountExceedsSum(t *testing.T) {
	// The pure function returns the raw (negative) arithmetic; rejection
	// happens at transaction creation.
	total := finance.TotalAmount(d(1000), d(50), d(50), d(2000))
	assert.True(t, total.IsNegative())
	assert.True(t, total.Equal(d(-900)))
}

func TestMonthlyInstallment(t *testing.T) {
	installment := finance.MonthlyInstallment(d(4300000), 48, decimal.NewFromFloat(12.5))

	// Amortization of 4,300,000 over 48 months at 12.5% p.a. lands near 114,282.
	require.True(t, installment.GreaterThanOrEqual(d(114000)), "installment %s below expected range", installment)
	require.True(t, installment.LessThanOrEqual(d(116000)), "installment %s above expected range", installment)

	// Whole currency units only.
	assert.True(t, installment.Equal(installment.Round(0)))

	// Total repaid must exceed the principal when interest applies.
	totalRepaid := installment.Mul(d(48))
	assert.True(t, totalRepaid.GreaterThan(d(4300000)))
}

func TestMonthlyInstallment_Idempotent(t *testing.T) {
	first := finance.MonthlyInstallment(d(4300000), 48, decimal.NewFromFloat(12.5))
	second := finance.MonthlyInstallment(d(4300000), 48, decimal.NewFromFloat(12.5))
	assert.True(t, first.Equal(second))
}

func TestMonthlyInstallment_Guards(t *testing.T) {
	assert.True(t, finance.MonthlyInstallment(d(100000), 0, decimal.NewFromFloat(12.5)).IsZero())
	assert.True(t, finance.MonthlyInstallment(d(100000), 48, decimal.Zero).IsZero())
	assert.True(t, finance.MonthlyInstallment(d(100000), 48, decimal.NewFromFloat(-1)).IsZero())
	assert.True(t, finance.MonthlyInstallment(decimal.Zero, 48, decimal.NewFromFloat(12.5)).IsZero())
}

func TestLeasingAmount(t *testing.T) {
	assert.True(t, finance.LeasingAmount(d(33500), d(6700)).Equal(d(26800)))
}

func TestDefaultDownPayment(t *testing.T) {
	assert.True(t, finance.DefaultDownPayment(d(33500)).Equal(d(6700)))
}
