package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// today used throughout the engine tests: a fixed Sunday.
var today = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func strPtr(s string) *string   { return &s }
func pctPtr(f float64) *float64 { return &f }

func day(offset int) string { return today.AddDate(0, 0, offset).Format(models.DateLayout) }

func inv(mut func(*models.Invoice)) models.Invoice {
	i := models.Invoice{
		ID:       "inv-1",
		Number:   "RE-1001",
		Supplier: "Müller GmbH",
		Amount:   100,
		DueDate:  day(14),
	}
	if mut != nil {
		mut(&i)
	}
	return i
}

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*models.Invoice)
		want Status
	}{
		{"paid wins over everything", func(i *models.Invoice) {
			i.Paid = true
			i.DueDate = day(-10)
			i.SkontoDate = strPtr(day(3))
		}, StatusPaid},
		{"overdue before skonto window", func(i *models.Invoice) {
			i.DueDate = day(-1)
			i.SkontoDate = strPtr(day(3))
		}, StatusOverdue},
		{"due today before skonto window", func(i *models.Invoice) {
			i.DueDate = day(0)
			i.SkontoDate = strPtr(day(3))
		}, StatusDueToday},
		{"open skonto window", func(i *models.Invoice) {
			i.SkontoDate = strPtr(day(5))
			i.SkontoPercent = pctPtr(2)
		}, StatusSkonto},
		{"skonto window closes on its last day inclusive", func(i *models.Invoice) {
			i.SkontoDate = strPtr(day(0))
		}, StatusSkonto},
		{"expired window, not yet due, is plain open", func(i *models.Invoice) {
			i.SkontoDate = strPtr(day(-2))
		}, StatusOpen},
		{"skonto date without percent still opens the window", func(i *models.Invoice) {
			i.SkontoDate = strPtr(day(4))
			i.SkontoPercent = nil
		}, StatusSkonto},
		{"default open", nil, StatusOpen},
		{"missing due date exerts no pressure", func(i *models.Invoice) {
			i.DueDate = ""
		}, StatusOpen},
		{"garbage due date degrades to open", func(i *models.Invoice) {
			i.DueDate = "31.12.2026"
		}, StatusOpen},
		{"garbage due date with open window is skonto", func(i *models.Invoice) {
			i.DueDate = "not a date"
			i.SkontoDate = strPtr(day(2))
		}, StatusSkonto},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(inv(tc.mut), today))
		})
	}
}

func TestClassifyPaidIgnoresDates(t *testing.T) {
	for _, due := range []string{day(-30), day(0), day(30), "", "garbage"} {
		i := inv(func(i *models.Invoice) {
			i.Paid = true
			i.DueDate = due
		})
		assert.Equal(t, StatusPaid, Classify(i, today), "due date %q", due)
	}
}

func TestClassifyDayGranularity(t *testing.T) {
	// Due at "today" but classified late in the evening: still due today, not
	// overdue, because the time of day is stripped before comparing.
	i := inv(func(i *models.Invoice) { i.DueDate = day(0) })
	evening := time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, StatusDueToday, Classify(i, evening))
}

func TestParseStatus(t *testing.T) {
	got, ok := ParseStatus("overdue")
	assert.True(t, ok)
	assert.Equal(t, StatusOverdue, got)

	_, ok = ParseStatus("all")
	assert.False(t, ok)
	_, ok = ParseStatus("bogus")
	assert.False(t, ok)
}
