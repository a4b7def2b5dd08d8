// Package engine holds the pure computation core: status classification,
// filtering, sorting, aggregation, and the Skonto calculation. Every function
// takes the invoice collection and the current day explicitly and returns a
// derived value; nothing in here mutates its input or reads the clock.
package engine

import (
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// Status is the derived payment state of an invoice.
type Status string

const (
	StatusPaid     Status = "paid"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due_today"
	StatusSkonto   Status = "skonto"
	StatusOpen     Status = "open"
)

// All is the sentinel that disables a filter criterion.
const All = "all"

// ParseStatus maps a request string to a Status. Unknown values and the "all"
// sentinel return false.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPaid, StatusOverdue, StatusDueToday, StatusSkonto, StatusOpen:
		return Status(s), true
	}
	return "", false
}

// Day truncates a timestamp to day granularity in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify derives the status of an invoice for the given day. The rules are
// evaluated in priority order and the first match wins:
//
//	paid > overdue > due_today > skonto > open
//
// Paid ignores every date field. A missing or unparseable due date exerts no
// due-date pressure, so such an invoice falls through toward skonto or open.
// An invoice whose discount window has closed but which is not yet due is
// plain open; there is no separate "discount expired" state.
func Classify(inv models.Invoice, today time.Time) Status {
	if inv.Paid {
		return StatusPaid
	}
	day := Day(today)
	if due, ok := inv.DueDay(); ok {
		if due.Before(day) {
			return StatusOverdue
		}
		if due.Equal(day) {
			return StatusDueToday
		}
	}
	if deadline, ok := inv.SkontoDay(); ok && !day.After(deadline) {
		return StatusSkonto
	}
	return StatusOpen
}
