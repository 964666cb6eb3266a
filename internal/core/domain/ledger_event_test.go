package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEvent_CashEntry_Shapes(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		event        LedgerEvent
		wantDir      FlowDirection
		wantCategory string
		wantNote     string
	}{
		{
			name:    "debt settlement is an outflow without category",
			event:   LedgerEvent{Kind: EventDebtSettled, Amount: decimal.NewFromInt(450), Counterparty: "Office Rent", Date: date},
			wantDir: Outflow,
		},
		{
			name:         "owner withdrawal is a categorised outflow",
			event:        LedgerEvent{Kind: EventOwnerWithdrawalRecorded, Amount: decimal.NewFromInt(1200), Counterparty: "Carlos Silva", Date: date, Note: "personal"},
			wantDir:      Outflow,
			wantCategory: "Owner Withdrawals",
			wantNote:     "personal",
		},
		{
			name:    "receivable payment is an inflow",
			event:   LedgerEvent{Kind: EventReceivablePaymentRecorded, Amount: decimal.NewFromInt(400), Counterparty: "Empresa ABC", Date: date},
			wantDir: Inflow,
		},
		{
			name:         "project finalization books revenue",
			event:        LedgerEvent{Kind: EventProjectFinalized, Amount: decimal.NewFromInt(3000), Counterparty: "Warehouse Refit", Date: date},
			wantDir:      Inflow,
			wantCategory: "Project Revenue",
		},
		{
			name:         "over-budget finalization books the loss as a negative inflow",
			event:        LedgerEvent{Kind: EventProjectFinalized, Amount: decimal.NewFromInt(-600), Counterparty: "Garage Extension", Date: date},
			wantDir:      Inflow,
			wantCategory: "Project Revenue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := tt.event.CashEntry()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, entry.Direction)
			assert.Equal(t, tt.wantCategory, entry.Category)
			assert.True(t, tt.event.Amount.Equal(entry.Amount))
			assert.Equal(t, tt.event.Counterparty, entry.Counterparty)
			assert.Equal(t, date, entry.Date)
			if tt.wantNote != "" {
				assert.Equal(t, tt.wantNote, entry.Note)
			} else {
				assert.NotEmpty(t, entry.Note) // default note applies
			}
			assert.Empty(t, entry.TransactionID) // recorder assigns the ID
		})
	}
}

func TestLedgerEvent_CashEntry_UnknownKind(t *testing.T) {
	_, err := LedgerEvent{Kind: LedgerEventKind("SOMETHING_ELSE")}.CashEntry()
	assert.Error(t, err)
}
