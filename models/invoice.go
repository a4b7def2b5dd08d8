package models

import (
	"strings"
	"time"
)

// DateLayout is the day-granularity format all invoice dates are stored in.
const DateLayout = "2006-01-02"

// Invoice represents a payable supplier invoice (Eingangsrechnung).
type Invoice struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Supplier      string    `json:"supplier"`
	Amount        Money     `json:"amount"`
	DueDate       string    `json:"due_date"`
	SkontoPercent *float64  `json:"skonto_percent,omitempty"`
	SkontoDate    *string   `json:"skonto_date,omitempty"`
	Note          *string   `json:"note,omitempty"`
	Paid          bool      `json:"paid"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParseDay parses a stored date string at day granularity. The second return
// value is false for empty or unparseable input; stored garbage degrades to
// "no date" instead of an error.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DueDay returns the due date as a day-granularity time, if parseable.
func (i Invoice) DueDay() (time.Time, bool) {
	return ParseDay(i.DueDate)
}

// SkontoDay returns the early-payment discount deadline, if present and parseable.
func (i Invoice) SkontoDay() (time.Time, bool) {
	if i.SkontoDate == nil {
		return time.Time{}, false
	}
	return ParseDay(*i.SkontoDate)
}

// SkontoRate returns the discount percentage, or 0 when none is offered.
func (i Invoice) SkontoRate() float64 {
	if i.SkontoPercent == nil {
		return 0
	}
	return *i.SkontoPercent
}

// NoteText returns the note, or "" when absent.
func (i Invoice) NoteText() string {
	if i.Note == nil {
		return ""
	}
	return *i.Note
}

// InvoiceInput is used for creating/updating invoices.
type InvoiceInput struct {
	Number        string   `json:"number"`
	Supplier      string   `json:"supplier"`
	Amount        Money    `json:"amount"`
	DueDate       string   `json:"due_date"`
	SkontoPercent *float64 `json:"skonto_percent"`
	SkontoDate    *string  `json:"skonto_date"`
	Note          *string  `json:"note"`
}

func (i *InvoiceInput) Validate() string {
	i.Number = strings.TrimSpace(i.Number)
	i.Supplier = strings.TrimSpace(i.Supplier)
	if i.Number == "" {
		return "number is required"
	}
	if i.Supplier == "" {
		return "supplier is required"
	}
	if i.Amount <= 0 {
		return "amount must be positive"
	}
	if i.DueDate == "" {
		return "due_date is required"
	}
	if _, ok := ParseDay(i.DueDate); !ok {
		return "due_date must be a date in the form YYYY-MM-DD"
	}
	if i.SkontoPercent != nil {
		if *i.SkontoPercent < 0 || *i.SkontoPercent > 100 {
			return "skonto_percent must be between 0 and 100"
		}
		if i.SkontoDate == nil || *i.SkontoDate == "" {
			return "skonto_date is required when skonto_percent is set"
		}
	}
	if i.SkontoDate != nil && *i.SkontoDate != "" {
		if _, ok := ParseDay(*i.SkontoDate); !ok {
			return "skonto_date must be a date in the form YYYY-MM-DD"
		}
	}
	return ""
}

// Apply copies the editable fields onto an existing invoice. ID and CreatedAt
// are never touched; Paid is toggled separately.
func (i *InvoiceInput) Apply(inv *Invoice) {
	inv.Number = i.Number
	inv.Supplier = i.Supplier
	inv.Amount = i.Amount
	inv.DueDate = i.DueDate
	inv.SkontoPercent = i.SkontoPercent
	inv.SkontoDate = i.SkontoDate
	inv.Note = i.Note
}
