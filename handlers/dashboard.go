package handlers

import (
	"net/http"
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/db"
	"github.com/jungbauer-1968/rechnungs-cockpit/engine"
	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

type dashboardData struct {
	TotalInvoices int `json:"total_invoices"`
	PaidCount     int `json:"paid_count"`
	OverdueCount  int `json:"overdue_count"`
	SkontoCount   int `json:"skonto_count"`

	TotalOpen    models.Money `json:"total_open"`
	TotalOverdue models.Money `json:"total_overdue"`
	TotalSkonto  models.Money `json:"total_skonto"`

	Suppliers []engine.SupplierSummary `json:"suppliers"`
}

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get global open/overdue/skonto totals and per-supplier rollups over the whole collection, regardless of list filters.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	today := time.Now()
	invoices := db.LoadInvoices(DB)
	summary := engine.Summarize(invoices, today)

	d := dashboardData{
		TotalInvoices: len(invoices),
		TotalOpen:     summary.TotalOpen,
		TotalOverdue:  summary.TotalOverdue,
		TotalSkonto:   summary.TotalSkonto,
		Suppliers:     summary.Suppliers,
	}
	for _, inv := range invoices {
		switch engine.Classify(inv, today) {
		case engine.StatusPaid:
			d.PaidCount++
		case engine.StatusOverdue:
			d.OverdueCount++
		case engine.StatusSkonto:
			d.SkontoCount++
		}
	}

	writeJSON(w, http.StatusOK, d)
}
