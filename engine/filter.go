package engine

import (
	"strings"
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// Criteria narrows the invoice collection. Each field is optional; the zero
// value (or the "all" sentinel for the string fields) disables it. Active
// criteria combine with logical AND.
type Criteria struct {
	Status   string // status tag, or ""/"all"
	Supplier string // exact supplier name, or ""/"all"
	Month    int    // 1-12, from the due date; 0 disables
	Year     int    // calendar year, from the due date; 0 disables
	Search   string // case-insensitive substring over number, supplier and note
}

func (c Criteria) statusActive() bool   { return c.Status != "" && c.Status != All }
func (c Criteria) supplierActive() bool { return c.Supplier != "" && c.Supplier != All }

// Filter returns the invoices matching the criteria, preserving relative
// order. The input is never mutated. Invoices without a parseable due date
// are excluded while a month or year criterion is active.
func Filter(invoices []models.Invoice, c Criteria, today time.Time) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	search := strings.ToLower(strings.TrimSpace(c.Search))
	for _, inv := range invoices {
		if c.statusActive() && string(Classify(inv, today)) != c.Status {
			continue
		}
		if c.supplierActive() && inv.Supplier != c.Supplier {
			continue
		}
		if c.Month != 0 || c.Year != 0 {
			due, ok := inv.DueDay()
			if !ok {
				continue
			}
			if c.Month != 0 && int(due.Month()) != c.Month {
				continue
			}
			if c.Year != 0 && due.Year() != c.Year {
				continue
			}
		}
		if search != "" && !strings.Contains(searchText(inv), search) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// searchText is the lowercase haystack for free-text search. The fields are
// joined with a newline so a query cannot match across a field boundary.
func searchText(inv models.Invoice) string {
	return strings.ToLower(inv.Number + "\n" + inv.Supplier + "\n" + inv.NoteText())
}
