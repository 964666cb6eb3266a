package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for registering a cash entry.
type CreateTransactionRequest struct {
	Direction    domain.FlowDirection `json:"direction" binding:"required,flowdirection"`
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Counterparty string               `json:"counterparty" binding:"required"`
	Date         time.Time            `json:"date" binding:"required" time_format:"2006-01-02"`
	Note         string               `json:"note"`
	Category     string               `json:"category" binding:"required"`
}

// ListTransactionsParams selects at most one of the two filter modes and
// optionally narrows to one direction. Limit/NextToken drive pagination.
type ListTransactionsParams struct {
	From      *time.Time
	Year      int
	Month     time.Month
	Direction *domain.FlowDirection
	Limit     int
	NextToken *string
}

// FilterByMonth reports whether the month filter mode is active.
func (p ListTransactionsParams) FilterByMonth() bool {
	return p.Year != 0 && p.Month != 0
}

// TransactionResponse is the wire shape of a cash entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Counterparty  string          `json:"counterparty"`
	Date          string          `json:"date"`
	Note          string          `json:"note,omitempty"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse carries one page of cash entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// CashSummaryResponse is the cash page header: balance and totals per
// direction over the (possibly filtered) list.
type CashSummaryResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
}

// ToTransactionResponse converts a domain cash transaction to its wire shape.
func ToTransactionResponse(t *domain.CashTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Direction:     string(t.Direction),
		Amount:        t.Amount,
		Counterparty:  t.Counterparty,
		Date:          t.Date.Format("2006-01-02"),
		Note:          t.Note,
		Category:      t.Category,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain cash transactions.
func ToTransactionResponses(txns []domain.CashTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
