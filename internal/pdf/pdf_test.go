package pdf_test

import (
	"testing"
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderQuoteProducesPDF(t *testing.T) {
	out, err := pdf.RenderQuote(dto.QuoteRequest{
		Client:      "Acme Construction",
		Description: "Foundation work for the warehouse extension.",
		Amount:      decimal.NewFromInt(12500),
		Responsible: "J. Mason",
		Style: dto.QuoteStyleRequest{
			Align:    "center",
			FontSize: 14,
			Color:    "#1a6b2f",
			Bold:     true,
		},
	})

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderStatementProducesPDF(t *testing.T) {
	txns := []domain.CashTransaction{
		{
			TransactionID: "txn-1",
			Direction:     domain.Inflow,
			Amount:        decimal.NewFromInt(900),
			Counterparty:  "Customer A",
			Category:      "Project Revenue",
			Date:          time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			TransactionID: "txn-2",
			Direction:     domain.Outflow,
			Amount:        decimal.NewFromInt(250),
			Counterparty:  "Hardware store",
			Category:      "Materials",
			Date:          time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	out, err := pdf.RenderStatement("March 2026", txns)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderProjectReportUsesFrozenProfitWhenFinalized(t *testing.T) {
	project := domain.Project{
		ProjectID: "proj-1",
		Name:      "Riverside duplex",
		Budget:    decimal.NewFromInt(10000),
		Profit:    decimal.NewFromInt(3500),
		Finalized: true,
		Expenses: []domain.ProjectExpense{
			{
				ExpenseID: "exp-1",
				Category:  "Materials",
				Amount:    decimal.NewFromInt(4000),
				Date:      time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	out, err := pdf.RenderProjectReport(project)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
