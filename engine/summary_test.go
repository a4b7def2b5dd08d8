package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, today)
	assert.Zero(t, s.TotalOpen)
	assert.Zero(t, s.TotalOverdue)
	assert.Zero(t, s.TotalSkonto)
	assert.Empty(t, s.Suppliers)
}

func TestSummarizeTotals(t *testing.T) {
	in := []models.Invoice{
		inv(func(i *models.Invoice) { i.Amount = 500; i.DueDate = day(-1) }), // overdue
		inv(func(i *models.Invoice) {
			i.Amount = 200
			i.DueDate = day(30)
			i.SkontoPercent = pctPtr(2)
			i.SkontoDate = strPtr(day(5)) // skonto
		}),
		inv(func(i *models.Invoice) { i.Amount = 50 }),                  // open
		inv(func(i *models.Invoice) { i.Amount = 9999; i.Paid = true }), // paid, ignored in sums
	}
	s := Summarize(in, today)
	assert.Equal(t, models.Money(750), s.TotalOpen)
	assert.Equal(t, models.Money(500), s.TotalOverdue)
	assert.Equal(t, models.Money(200), s.TotalSkonto)
}

func TestSummarizePerSupplierBuckets(t *testing.T) {
	in := []models.Invoice{
		inv(func(i *models.Invoice) { i.Supplier = "Müller GmbH"; i.Amount = 100; i.DueDate = day(-2) }),
		inv(func(i *models.Invoice) { i.Supplier = "Müller GmbH"; i.Amount = 50; i.DueDate = day(10) }),
		inv(func(i *models.Invoice) { i.Supplier = "Anton KG"; i.Amount = 80; i.Paid = true }),
	}
	s := Summarize(in, today)
	require.Len(t, s.Suppliers, 2)

	// Deterministic order: by supplier name.
	assert.Equal(t, "Anton KG", s.Suppliers[0].Supplier)
	assert.Equal(t, "Müller GmbH", s.Suppliers[1].Supplier)

	anton := s.Suppliers[0]
	assert.Equal(t, 1, anton.Count) // paid invoices still count
	assert.Zero(t, anton.SumOpen)

	mueller := s.Suppliers[1]
	assert.Equal(t, 2, mueller.Count)
	assert.Equal(t, models.Money(150), mueller.SumOpen)
	assert.Equal(t, models.Money(100), mueller.SumOverdue)
	assert.Zero(t, mueller.SumSkonto)
}

func TestSummarizeTotalsMatchBucketSums(t *testing.T) {
	in := sampleInvoices()
	s := Summarize(in, today)

	var open, overdue, skonto models.Money
	for _, b := range s.Suppliers {
		open += b.SumOpen
		overdue += b.SumOverdue
		skonto += b.SumSkonto
	}
	assert.Equal(t, s.TotalOpen, open)
	assert.Equal(t, s.TotalOverdue, overdue)
	assert.Equal(t, s.TotalSkonto, skonto)
}

func TestSummarizeOverdueNotSkontoEligible(t *testing.T) {
	// An overdue invoice never counts toward the skonto total, even when a
	// stale discount date is still on the record.
	in := []models.Invoice{
		inv(func(i *models.Invoice) {
			i.Amount = 500
			i.DueDate = day(-1)
			i.SkontoDate = strPtr(day(3))
		}),
	}
	s := Summarize(in, today)
	assert.Equal(t, models.Money(500), s.TotalOverdue)
	assert.Zero(t, s.TotalSkonto)
	assert.Equal(t, models.Money(500), s.TotalOpen)
}
