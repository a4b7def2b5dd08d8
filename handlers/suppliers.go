package handlers

import (
	"net/http"
	"time"

	"github.com/jungbauer-1968/rechnungs-cockpit/db"
	"github.com/jungbauer-1968/rechnungs-cockpit/engine"
)

// ListSuppliers lists all suppliers with their rollups
// @Summary      List suppliers
// @Description  Get every supplier seen on an invoice, with invoice count and open/overdue/skonto sums.
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  Response{data=[]engine.SupplierSummary}
// @Router       /suppliers [get]
// @Security     BasicAuth
func ListSuppliers(w http.ResponseWriter, r *http.Request) {
	summary := engine.Summarize(db.LoadInvoices(DB), time.Now())
	writeJSON(w, http.StatusOK, summary.Suppliers)
}
