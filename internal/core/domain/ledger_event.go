package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventKind names a domain event that must be mirrored by a cash book
// entry. The full set of write-through couplings lives in entryShapes below;
// nothing else in the codebase appends to the cash book on behalf of another
// entity. Deletions never emit events.
type LedgerEventKind string

const (
	EventDebtSettled               LedgerEventKind = "DEBT_SETTLED"
	EventOwnerWithdrawalRecorded   LedgerEventKind = "OWNER_WITHDRAWAL_RECORDED"
	EventReceivablePaymentRecorded LedgerEventKind = "RECEIVABLE_PAYMENT_RECORDED"
	EventProjectFinalized          LedgerEventKind = "PROJECT_FINALIZED"
)

// LedgerEvent carries the facts of a domain event that the ledger recorder
// turns into a cash transaction.
type LedgerEvent struct {
	Kind         LedgerEventKind
	Amount       decimal.Decimal
	Counterparty string
	Date         time.Time
	Note         string // optional, falls back to the shape's default
}

// entryShape is the fixed part of the event-to-entry mapping.
type entryShape struct {
	Direction   FlowDirection
	Category    string
	DefaultNote string
}

var entryShapes = map[LedgerEventKind]entryShape{
	EventDebtSettled:               {Direction: Outflow, DefaultNote: "Debt settlement"},
	EventOwnerWithdrawalRecorded:   {Direction: Outflow, Category: "Owner Withdrawals", DefaultNote: "Owner withdrawal"},
	EventReceivablePaymentRecorded: {Direction: Inflow, DefaultNote: "Customer payment"},
	EventProjectFinalized:          {Direction: Inflow, Category: "Project Revenue", DefaultNote: "Profit from finalized project"},
}

// CashEntry maps the event to the cash transaction it must append. The
// returned transaction has no ID or audit fields yet; the recorder fills
// those in. Unknown kinds are rejected.
func (e LedgerEvent) CashEntry() (CashTransaction, error) {
	shape, ok := entryShapes[e.Kind]
	if !ok {
		return CashTransaction{}, fmt.Errorf("unknown ledger event kind %q", e.Kind)
	}
	note := e.Note
	if note == "" {
		note = shape.DefaultNote
	}
	return CashTransaction{
		Direction:    shape.Direction,
		Amount:       e.Amount,
		Counterparty: e.Counterparty,
		Date:         e.Date,
		Note:         note,
		Category:     shape.Category,
	}, nil
}
