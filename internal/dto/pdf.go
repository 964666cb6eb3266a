package dto

import (
	"github.com/shopspring/decimal"
)

// QuoteStyleRequest carries the presentation knobs for a quote document.
// Zero values fall back to the renderer defaults.
type QuoteStyleRequest struct {
	Align    string `json:"align" binding:"omitempty,oneof=left center right"`
	FontSize int    `json:"fontSize" binding:"omitempty,min=6,max=32"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
	Bold     bool   `json:"bold"`
}

// QuoteRequest is the payload for generating a service quote PDF.
type QuoteRequest struct {
	Client      string            `json:"client" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Amount      decimal.Decimal   `json:"amount" binding:"required"`
	Responsible string            `json:"responsible" binding:"required"`
	Style       QuoteStyleRequest `json:"style"`
}

// StatementRequest selects the window for a cash statement PDF. All fields
// are optional; an empty request covers the full ledger.
type StatementRequest struct {
	From  string `form:"from"`
	Year  int    `form:"year"`
	Month int    `form:"month"`
}
