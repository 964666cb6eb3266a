package accounting

import (
	"testing"
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(dir domain.FlowDirection, amount int64, date string, category string) domain.CashTransaction {
	d, _ := time.Parse("2006-01-02", date)
	return domain.CashTransaction{
		Direction: dir,
		Amount:    decimal.NewFromInt(amount),
		Date:      d,
		Category:  category,
	}
}

func TestBalance_Empty(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
}

func TestBalance_SignedByDirection(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1000, "2025-01-10", "Services"),
		txn(domain.Outflow, 300, "2025-01-15", "Materials"),
	}
	assert.True(t, Balance(txns).Equal(decimal.NewFromInt(700)))
}

func TestBalance_OrderIndependent(t *testing.T) {
	a := []domain.CashTransaction{
		txn(domain.Inflow, 500, "2025-02-01", ""),
		txn(domain.Outflow, 200, "2025-02-02", ""),
		txn(domain.Inflow, 50, "2025-02-03", ""),
	}
	b := []domain.CashTransaction{a[2], a[0], a[1]}
	assert.True(t, Balance(a).Equal(Balance(b)))
}

func TestTotalByDirection(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1000, "2025-01-10", ""),
		txn(domain.Outflow, 300, "2025-01-15", ""),
		txn(domain.Outflow, 200, "2025-01-20", ""),
	}
	assert.True(t, TotalByDirection(txns, domain.Inflow).Equal(decimal.NewFromInt(1000)))
	assert.True(t, TotalByDirection(txns, domain.Outflow).Equal(decimal.NewFromInt(500)))
}

func TestFilterFrom_InclusiveAndSorted(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1, "2025-01-05", ""),
		txn(domain.Inflow, 2, "2025-01-10", ""),
		txn(domain.Inflow, 3, "2025-01-20", ""),
	}
	from, _ := time.Parse("2006-01-02", "2025-01-10")
	got := FilterFrom(txns, from)
	require.Len(t, got, 2)
	// newest first
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(3)))
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(2)))
}

func TestFilterMonth(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1, "2025-01-31", ""),
		txn(domain.Inflow, 2, "2025-02-01", ""),
		txn(domain.Inflow, 3, "2025-02-28", ""),
		txn(domain.Inflow, 4, "2024-02-10", ""),
	}
	got := FilterMonth(txns, 2025, time.February)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(3)))
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(2)))
}

func TestExpenseBreakdown_Empty(t *testing.T) {
	assert.Empty(t, ExpenseBreakdown(nil))
}

func TestExpenseBreakdown_IgnoresInflows(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1000, "2025-01-10", "Services"),
	}
	assert.Empty(t, ExpenseBreakdown(txns))
}

func TestExpenseBreakdown_SingleCategoryIsHundredPercent(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1000, "2025-01-10", "Services"),
		txn(domain.Outflow, 300, "2025-01-15", "Materials"),
	}
	got := ExpenseBreakdown(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "Materials", got[0].Category)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, got[0].Percent.Equal(decimal.NewFromInt(100)))
}

func TestExpenseBreakdown_PercentagesSumToHundred(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Outflow, 300, "2025-01-15", "Materials"),
		txn(domain.Outflow, 500, "2025-01-16", "Labor"),
		txn(domain.Outflow, 200, "2025-01-17", "Fuel"),
	}
	got := ExpenseBreakdown(txns)
	require.Len(t, got, 3)

	sum := decimal.Zero
	for _, c := range got {
		sum = sum.Add(c.Percent)
	}
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)), "percentages sum to %s", sum)

	// largest first
	assert.Equal(t, "Labor", got[0].Category)
	assert.Equal(t, "Materials", got[1].Category)
	assert.Equal(t, "Fuel", got[2].Category)
}

func TestMonthlyFlow_Empty(t *testing.T) {
	assert.Empty(t, MonthlyFlow(nil))
}

func TestMonthlyFlow_BucketsAndNet(t *testing.T) {
	txns := []domain.CashTransaction{
		txn(domain.Inflow, 1000, "2025-01-10", ""),
		txn(domain.Outflow, 400, "2025-01-20", ""),
		txn(domain.Inflow, 200, "2025-03-05", ""),
	}
	got := MonthlyFlow(txns)
	require.Len(t, got, 2) // February absent, no zero fill

	assert.Equal(t, time.January, got[0].Month)
	assert.True(t, got[0].Inflow.Equal(decimal.NewFromInt(1000)))
	assert.True(t, got[0].Outflow.Equal(decimal.NewFromInt(400)))
	assert.True(t, got[0].Net.Equal(decimal.NewFromInt(600)))

	assert.Equal(t, time.March, got[1].Month)
	assert.True(t, got[1].Net.Equal(decimal.NewFromInt(200)))
}

func TestMonthlyFlow_KeepsLastSixChronological(t *testing.T) {
	var txns []domain.CashTransaction
	for m := 1; m <= 9; m++ {
		d := time.Date(2025, time.Month(m), 10, 0, 0, 0, 0, time.UTC)
		txns = append(txns, domain.CashTransaction{
			Direction: domain.Inflow,
			Amount:    decimal.NewFromInt(int64(m)),
			Date:      d,
		})
	}
	got := MonthlyFlow(txns)
	require.Len(t, got, 6)
	assert.Equal(t, time.April, got[0].Month)
	assert.Equal(t, time.September, got[5].Month)
}

func TestProjectOutcome(t *testing.T) {
	expenses := []domain.ProjectExpense{
		{Amount: decimal.NewFromInt(1200)},
		{Amount: decimal.NewFromInt(800)},
	}
	outcome := ProjectOutcome(decimal.NewFromInt(5000), expenses)
	assert.True(t, outcome.Equal(decimal.NewFromInt(3000)))

	overBudget := ProjectOutcome(decimal.NewFromInt(1500), expenses)
	assert.True(t, overBudget.Equal(decimal.NewFromInt(-500)))

	assert.True(t, ProjectOutcome(decimal.NewFromInt(5000), nil).Equal(decimal.NewFromInt(5000)))
}

func TestReceivableProgress(t *testing.T) {
	total := decimal.NewFromInt(1000)
	assert.True(t, ReceivableProgress(decimal.Zero, total).IsZero())
	assert.True(t, ReceivableProgress(decimal.NewFromInt(400), total).Equal(decimal.NewFromFloat(0.4)))
	assert.True(t, ReceivableProgress(total, total).Equal(decimal.NewFromInt(1)))
	// zero total never divides
	assert.True(t, ReceivableProgress(decimal.NewFromInt(10), decimal.Zero).IsZero())
}

func TestReceivableProgress_MonotonicUnderPayments(t *testing.T) {
	total := decimal.NewFromInt(1000)
	paid := decimal.Zero
	prev := decimal.Zero
	for _, p := range []int64{100, 250, 400} {
		paid = paid.Add(decimal.NewFromInt(p))
		cur := ReceivableProgress(paid, total)
		assert.True(t, cur.GreaterThanOrEqual(prev))
		prev = cur
	}
}
