package engine

import (
	"slices"
	"strings"
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// SupplierSummary is the rollup bucket for one supplier.
type SupplierSummary struct {
	Supplier   string       `json:"supplier"`
	Count      int          `json:"count"` // all invoices for the supplier, paid included
	SumOpen    models.Money `json:"sum_open"`
	SumOverdue models.Money `json:"sum_overdue"`
	SumSkonto  models.Money `json:"sum_skonto"`
}

// Summary holds the dashboard figures for the whole collection.
type Summary struct {
	TotalOpen    models.Money      `json:"total_open"`    // every unpaid invoice
	TotalOverdue models.Money      `json:"total_overdue"` // unpaid and past due
	TotalSkonto  models.Money      `json:"total_skonto"`  // unpaid with an open discount window
	Suppliers    []SupplierSummary `json:"suppliers"`
}

// Summarize computes global totals and per-supplier rollups over the entire
// collection, independent of any active filters. Supplier buckets are created
// on the first invoice seen and returned sorted by supplier name, so the
// output order is deterministic. The invariant TotalOverdue ==
// sum(Suppliers[*].SumOverdue) holds, and likewise for the other two totals.
func Summarize(invoices []models.Invoice, today time.Time) Summary {
	var s Summary
	buckets := make(map[string]*SupplierSummary)

	for _, inv := range invoices {
		b := buckets[inv.Supplier]
		if b == nil {
			b = &SupplierSummary{Supplier: inv.Supplier}
			buckets[inv.Supplier] = b
		}
		b.Count++

		status := Classify(inv, today)
		if status == StatusPaid {
			continue
		}
		s.TotalOpen += inv.Amount
		b.SumOpen += inv.Amount
		switch status {
		case StatusOverdue:
			s.TotalOverdue += inv.Amount
			b.SumOverdue += inv.Amount
		case StatusSkonto:
			s.TotalSkonto += inv.Amount
			b.SumSkonto += inv.Amount
		}
	}

	s.Suppliers = make([]SupplierSummary, 0, len(buckets))
	for _, b := range buckets {
		s.Suppliers = append(s.Suppliers, *b)
	}
	slices.SortFunc(s.Suppliers, func(a, b SupplierSummary) int {
		return strings.Compare(a.Supplier, b.Supplier)
	})
	return s
}
