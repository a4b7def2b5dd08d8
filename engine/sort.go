package engine

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// SortKey names a sortable invoice column.
type SortKey string

const (
	SortByNumber        SortKey = "number"
	SortBySupplier      SortKey = "supplier"
	SortByAmount        SortKey = "amount"
	SortBySkontoPercent SortKey = "skonto_percent"
	SortBySkontoAmount  SortKey = "skonto_amount"
	SortBySkontoDate    SortKey = "skonto_date"
	SortByDueDate       SortKey = "due_date"
	SortByStatus        SortKey = "status"
)

// Sort directions.
const (
	Ascending  = 1
	Descending = -1
)

// Sort returns a new slice ordered by the given key. The sort is stable; ties
// keep their input order. dir is +1 for ascending, -1 for descending. Unknown
// keys fall back to the due date, the default ordering.
func Sort(invoices []models.Invoice, key SortKey, dir int, today time.Time) []models.Invoice {
	if dir >= 0 {
		dir = Ascending
	} else {
		dir = Descending
	}
	compare := comparator(key, today)
	out := slices.Clone(invoices)
	slices.SortStableFunc(out, func(a, b models.Invoice) int {
		return dir * compare(a, b)
	})
	return out
}

func comparator(key SortKey, today time.Time) func(a, b models.Invoice) int {
	switch key {
	case SortByNumber:
		return func(a, b models.Invoice) int { return foldCompare(a.Number, b.Number) }
	case SortBySupplier:
		return func(a, b models.Invoice) int { return foldCompare(a.Supplier, b.Supplier) }
	case SortByAmount:
		return func(a, b models.Invoice) int { return cmp.Compare(a.Amount, b.Amount) }
	case SortBySkontoPercent:
		return func(a, b models.Invoice) int { return cmp.Compare(a.SkontoRate(), b.SkontoRate()) }
	case SortBySkontoAmount:
		return func(a, b models.Invoice) int {
			return cmp.Compare(Skonto(a.Amount, a.SkontoRate()).Value, Skonto(b.Amount, b.SkontoRate()).Value)
		}
	case SortBySkontoDate:
		return func(a, b models.Invoice) int {
			am, _ := dayMillis(a.SkontoDay())
			bm, _ := dayMillis(b.SkontoDay())
			return cmp.Compare(am, bm)
		}
	case SortByStatus:
		return func(a, b models.Invoice) int {
			return strings.Compare(string(Classify(a, today)), string(Classify(b, today)))
		}
	default: // SortByDueDate
		return func(a, b models.Invoice) int {
			am, _ := dayMillis(a.DueDay())
			bm, _ := dayMillis(b.DueDay())
			return cmp.Compare(am, bm)
		}
	}
}

// foldCompare is a case-insensitive lexicographic comparison.
func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// dayMillis converts a parsed day to epoch milliseconds. Absent dates map to
// 0 so they sort before every real date when ascending.
func dayMillis(t time.Time, ok bool) (int64, bool) {
	if !ok {
		return 0, false
	}
	return t.UnixMilli(), true
}
