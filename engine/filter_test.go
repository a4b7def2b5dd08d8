package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

func sampleInvoices() []models.Invoice {
	return []models.Invoice{
		inv(func(i *models.Invoice) {
			i.ID = "a"
			i.Number = "RE-2026-001"
			i.Supplier = "Müller GmbH"
			i.DueDate = day(-3) // overdue
		}),
		inv(func(i *models.Invoice) {
			i.ID = "b"
			i.Number = "RE-2026-002"
			i.Supplier = "Schulze AG"
			i.DueDate = day(20)
			i.SkontoPercent = pctPtr(2)
			i.SkontoDate = strPtr(day(5)) // skonto
		}),
		inv(func(i *models.Invoice) {
			i.ID = "c"
			i.Number = "2026-0815"
			i.Supplier = "Müller GmbH"
			i.DueDate = "2025-11-30"
			i.Paid = true
			i.Note = strPtr("Wartungsvertrag Q4")
		}),
		inv(func(i *models.Invoice) {
			i.ID = "d"
			i.Number = "RE-2026-004"
			i.Supplier = "Bäcker & Co"
			i.DueDate = "kaputt" // unparseable
		}),
	}
}

func ids(list []models.Invoice) []string {
	out := make([]string, len(list))
	for n, i := range list {
		out[n] = i.ID
	}
	return out
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	in := sampleInvoices()
	got := Filter(in, Criteria{}, today)
	assert.Equal(t, in, got)

	got = Filter(in, Criteria{Status: All, Supplier: All}, today)
	assert.Equal(t, in, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sampleInvoices()
	want := sampleInvoices()
	Filter(in, Criteria{Status: string(StatusPaid)}, today)
	assert.Equal(t, want, in)
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(sampleInvoices(), Criteria{Status: string(StatusOverdue)}, today)
	assert.Equal(t, []string{"a"}, ids(got))

	got = Filter(sampleInvoices(), Criteria{Status: string(StatusSkonto)}, today)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterBySupplierExactMatch(t *testing.T) {
	got := Filter(sampleInvoices(), Criteria{Supplier: "Müller GmbH"}, today)
	assert.Equal(t, []string{"a", "c"}, ids(got))

	// Exact match, not case-folded.
	got = Filter(sampleInvoices(), Criteria{Supplier: "müller gmbh"}, today)
	assert.Empty(t, got)
}

func TestFilterByMonthYear(t *testing.T) {
	in := sampleInvoices()

	got := Filter(in, Criteria{Year: 2025}, today)
	assert.Equal(t, []string{"c"}, ids(got))

	got = Filter(in, Criteria{Month: 11, Year: 2025}, today)
	assert.Equal(t, []string{"c"}, ids(got))

	got = Filter(in, Criteria{Month: 2, Year: 2025}, today)
	assert.Empty(t, got)

	// The unparseable due date ("d") never qualifies while a date criterion
	// is active, but passes when none is.
	got = Filter(in, Criteria{Month: int(today.Month())}, today)
	assert.NotContains(t, ids(got), "d")
	got = Filter(in, Criteria{}, today)
	assert.Contains(t, ids(got), "d")
}

func TestFilterBySearch(t *testing.T) {
	in := sampleInvoices()

	// Case-insensitive, matches number, supplier and note.
	got := Filter(in, Criteria{Search: "schulze"}, today)
	assert.Equal(t, []string{"b"}, ids(got))

	got = Filter(in, Criteria{Search: "wartungsvertrag"}, today)
	assert.Equal(t, []string{"c"}, ids(got))

	got = Filter(in, Criteria{Search: "0815"}, today)
	assert.Equal(t, []string{"c"}, ids(got))

	// The field separator keeps a query from spanning number and supplier.
	got = Filter(in, Criteria{Search: "002Schulze"}, today)
	assert.Empty(t, got)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	in := sampleInvoices()
	got := Filter(in, Criteria{Supplier: "Müller GmbH", Status: string(StatusPaid)}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)

	got = Filter(in, Criteria{Supplier: "Schulze AG", Status: string(StatusPaid)}, today)
	assert.Empty(t, got)
}
