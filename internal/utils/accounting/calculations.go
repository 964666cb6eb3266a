// Package accounting holds the pure aggregation functions behind the
// dashboard, cash book, project and receivable views. Everything here is
// deterministic, side-effect free and safe on empty input.
package accounting

import (
	"sort"
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balance is the running total of the cash book: inflows add, outflows
// subtract. The sign of a contribution comes from the direction alone, never
// from the amount.
func Balance(txns []domain.CashTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Direction == domain.Inflow {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// TotalByDirection sums the amounts of transactions flowing in the given
// direction.
func TotalByDirection(txns []domain.CashTransaction, dir domain.FlowDirection) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Direction == dir {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// SortByDateDesc orders transactions newest first, in place, and returns the
// slice. Every list the views render ends with this sort regardless of which
// filter produced it.
func SortByDateDesc(txns []domain.CashTransaction) []domain.CashTransaction {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns
}

// FilterFrom keeps transactions dated on or after the given date, newest
// first.
func FilterFrom(txns []domain.CashTransaction, from time.Time) []domain.CashTransaction {
	out := make([]domain.CashTransaction, 0, len(txns))
	for _, t := range txns {
		if !t.Date.Before(from) {
			out = append(out, t)
		}
	}
	return SortByDateDesc(out)
}

// FilterMonth keeps transactions falling in the given calendar month, newest
// first. The two filter modes are mutually exclusive; callers pick one.
func FilterMonth(txns []domain.CashTransaction, year int, month time.Month) []domain.CashTransaction {
	out := make([]domain.CashTransaction, 0, len(txns))
	for _, t := range txns {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return SortByDateDesc(out)
}

// FilterByDirection keeps transactions flowing in the given direction,
// preserving order.
func FilterByDirection(txns []domain.CashTransaction, dir domain.FlowDirection) []domain.CashTransaction {
	out := make([]domain.CashTransaction, 0, len(txns))
	for _, t := range txns {
		if t.Direction == dir {
			out = append(out, t)
		}
	}
	return out
}

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"` // share of total outflow, 0..100
}

// ExpenseBreakdown groups outflows by category with each group's share of
// the total. When there is no outflow at all every percentage is zero; the
// function never divides by zero. Groups come back largest first, ties by
// name, so output is stable.
func ExpenseBreakdown(txns []domain.CashTransaction) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, t := range txns {
		if t.Direction != domain.Outflow {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		grand = grand.Add(t.Amount)
	}

	out := make([]CategoryAmount, 0, len(totals))
	hundred := decimal.NewFromInt(100)
	for category, amount := range totals {
		percent := decimal.Zero
		if grand.IsPositive() {
			percent = amount.Div(grand).Mul(hundred)
		}
		out = append(out, CategoryAmount{Category: category, Amount: amount, Percent: percent})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlyBucket accumulates one calendar month of cash flow.
type MonthlyBucket struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyFlow buckets transactions by calendar month and returns the most
// recent six buckets in chronological order (oldest of the six first).
// Months with no transactions simply do not appear; there is no zero fill.
func MonthlyFlow(txns []domain.CashTransaction) []MonthlyBucket {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthlyBucket)
	for _, t := range txns {
		k := key{year: t.Date.Year(), month: t.Date.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthlyBucket{Year: k.year, Month: k.month}
			buckets[k] = b
		}
		if t.Direction == domain.Inflow {
			b.Inflow = b.Inflow.Add(t.Amount)
		} else {
			b.Outflow = b.Outflow.Add(t.Amount)
		}
	}

	out := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		b.Net = b.Inflow.Sub(b.Outflow)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	if len(out) > 6 {
		out = out[len(out)-6:]
	}
	return out
}

// ProjectOutcome is the project's result so far: budget minus the sum of its
// expenses. The sign drives presentation only; the formula never changes.
func ProjectOutcome(budget decimal.Decimal, expenses []domain.ProjectExpense) decimal.Decimal {
	spent := decimal.Zero
	for _, e := range expenses {
		spent = spent.Add(e.Amount)
	}
	return budget.Sub(spent)
}

// ReceivableProgress is the paid share of a receivable as a ratio for a
// progress bar. Zero total yields zero, never a division error.
func ReceivableProgress(paid, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return paid.Div(total)
}
