// Package pdf renders the printable documents: service quotes, cash
// statements and per-project reports.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/utils/accounting"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	defaultFontSize = 12
	fontFamily      = "Helvetica"
)

func newDocument(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()
	doc.SetFont(fontFamily, "B", 18)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.SetFont(fontFamily, "", 9)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 6, time.Now().Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)
	return doc
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(amount decimal.Decimal) string {
	return "$ " + amount.StringFixed(2)
}

// parseHexColor turns "#RRGGBB" into RGB components. Malformed input falls
// back to black.
func parseHexColor(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}

func alignCode(align string) string {
	switch align {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

// RenderQuote builds a one-page service quote document.
func RenderQuote(req dto.QuoteRequest) ([]byte, error) {
	doc := newDocument("Service Quote")

	size := float64(defaultFontSize)
	if req.Style.FontSize > 0 {
		size = float64(req.Style.FontSize)
	}
	style := ""
	if req.Style.Bold {
		style = "B"
	}
	align := alignCode(req.Style.Align)

	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(0, 8, "Client: "+req.Client, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Responsible: "+req.Responsible, "", 1, "L", false, 0, "")
	doc.Ln(4)

	if req.Style.Color != "" {
		r, g, b := parseHexColor(req.Style.Color)
		doc.SetTextColor(r, g, b)
	}
	doc.SetFont(fontFamily, style, size)
	doc.MultiCell(0, size*0.55, req.Description, "", align, false)
	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)

	doc.SetFont(fontFamily, "B", 14)
	doc.CellFormat(0, 10, "Total: "+money(req.Amount), "T", 1, "R", false, 0, "")

	return output(doc)
}

// RenderStatement builds a cash statement over the given ledger entries.
// The window label describes the filter the entries were read with.
func RenderStatement(window string, txns []domain.CashTransaction) ([]byte, error) {
	doc := newDocument("Cash Statement")

	if window != "" {
		doc.SetFont(fontFamily, "I", 10)
		doc.CellFormat(0, 6, window, "", 1, "L", false, 0, "")
		doc.Ln(2)
	}

	doc.SetFont(fontFamily, "B", 9)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(28, 8, "Date", "1", 0, "L", true, 0, "")
	doc.CellFormat(52, 8, "Counterparty", "1", 0, "L", true, 0, "")
	doc.CellFormat(42, 8, "Category", "1", 0, "L", true, 0, "")
	doc.CellFormat(34, 8, "Inflow", "1", 0, "R", true, 0, "")
	doc.CellFormat(34, 8, "Outflow", "1", 1, "R", true, 0, "")

	doc.SetFont(fontFamily, "", 9)
	for _, txn := range txns {
		inflow, outflow := "", ""
		if txn.Direction == domain.Inflow {
			inflow = money(txn.Amount)
		} else {
			outflow = money(txn.Amount)
		}
		doc.CellFormat(28, 7, txn.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		doc.CellFormat(52, 7, txn.Counterparty, "1", 0, "L", false, 0, "")
		doc.CellFormat(42, 7, txn.Category, "1", 0, "L", false, 0, "")
		doc.CellFormat(34, 7, inflow, "1", 0, "R", false, 0, "")
		doc.CellFormat(34, 7, outflow, "1", 1, "R", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(0, 7, "Total in: "+money(accounting.TotalByDirection(txns, domain.Inflow)), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 7, "Total out: "+money(accounting.TotalByDirection(txns, domain.Outflow)), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 7, "Balance: "+money(accounting.Balance(txns)), "T", 1, "R", false, 0, "")

	return output(doc)
}

// RenderProjectReport builds a budget-versus-spend report for one project.
func RenderProjectReport(project domain.Project) ([]byte, error) {
	doc := newDocument("Project Report")

	doc.SetFont(fontFamily, "B", 13)
	doc.CellFormat(0, 9, project.Name, "", 1, "L", false, 0, "")
	doc.SetFont(fontFamily, "", 11)
	doc.CellFormat(0, 7, "Budget: "+money(project.Budget), "", 1, "L", false, 0, "")
	doc.Ln(3)

	doc.SetFont(fontFamily, "B", 9)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(28, 8, "Date", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, 8, "Category", "1", 0, "L", true, 0, "")
	doc.CellFormat(88, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(34, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont(fontFamily, "", 9)
	spent := decimal.Zero
	for _, expense := range project.Expenses {
		spent = spent.Add(expense.Amount)
		doc.CellFormat(28, 7, expense.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 7, expense.Category, "1", 0, "L", false, 0, "")
		doc.CellFormat(88, 7, expense.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(34, 7, money(expense.Amount), "1", 1, "R", false, 0, "")
	}

	outcome := accounting.ProjectOutcome(project.Budget, project.Expenses)

	doc.Ln(4)
	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(0, 7, "Total spent: "+money(spent), "", 1, "R", false, 0, "")
	label := "Projected outcome: "
	if project.Finalized {
		label = "Final profit: "
		outcome = project.Profit
	}
	doc.CellFormat(0, 7, label+money(outcome), "T", 1, "R", false, 0, "")

	return output(doc)
}
