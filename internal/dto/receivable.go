package dto

import (
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceivableRequest is the payload for registering an amount owed by a
// customer.
type CreateReceivableRequest struct {
	Customer    string          `json:"customer" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateReceivableRequest carries optional field updates for a receivable.
// Paid amount is never edited directly; it moves through payments only.
type UpdateReceivableRequest struct {
	Customer    *string          `json:"customer,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

// CreatePaymentRequest records a partial or full payment on a receivable.
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
}

// PaymentResponse is the wire shape of a recorded payment.
type PaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	ReceivableID string          `json:"receivableID"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
}

// ReceivableResponse is the wire shape of a receivable.
type ReceivableResponse struct {
	ReceivableID string            `json:"receivableID"`
	Customer     string            `json:"customer"`
	TotalAmount  decimal.Decimal   `json:"totalAmount"`
	PaidAmount   decimal.Decimal   `json:"paidAmount"`
	Outstanding  decimal.Decimal   `json:"outstanding"`
	Settled      bool              `json:"settled"`
	Payments     []PaymentResponse `json:"payments,omitempty"`
}

// ToPaymentResponse converts a domain payment to its wire shape.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		ReceivableID: p.ReceivableID,
		Amount:       p.Amount,
		Date:         p.Date.Format("2006-01-02"),
	}
}

// ToReceivableResponse converts a domain receivable to its wire shape.
func ToReceivableResponse(r *domain.Receivable) ReceivableResponse {
	resp := ReceivableResponse{
		ReceivableID: r.ReceivableID,
		Customer:     r.Customer,
		TotalAmount:  r.TotalAmount,
		PaidAmount:   r.PaidAmount,
		Outstanding:  r.Outstanding(),
		Settled:      r.Settled(),
	}
	for i := range r.Payments {
		resp.Payments = append(resp.Payments, ToPaymentResponse(&r.Payments[i]))
	}
	return resp
}

// ToReceivableResponses converts a slice of domain receivables.
func ToReceivableResponses(receivables []domain.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, len(receivables))
	for i := range receivables {
		out[i] = ToReceivableResponse(&receivables[i])
	}
	return out
}
