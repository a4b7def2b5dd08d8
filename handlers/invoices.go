package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jungbauer-1968/rechnungs-cockpit/db"
	"github.com/jungbauer-1968/rechnungs-cockpit/engine"
	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

// mu serializes load-modify-save cycles on the invoice list. The engines are
// pure; this is the one place concurrent requests could interleave.
var mu sync.Mutex

// InvoiceView is an invoice enriched with derived fields for display.
type InvoiceView struct {
	models.Invoice
	Status      engine.Status `json:"status"`
	SkontoValue *models.Money `json:"skonto_value,omitempty"` // absent when no discount is offered
	NetPayable  *models.Money `json:"net_payable,omitempty"`
}

func newInvoiceView(inv models.Invoice, today time.Time) InvoiceView {
	v := InvoiceView{Invoice: inv, Status: engine.Classify(inv, today)}
	if rate := inv.SkontoRate(); rate > 0 {
		d := engine.Skonto(inv.Amount, rate)
		v.SkontoValue = &d.Value
		v.NetPayable = &d.Net
	}
	return v
}

func newInvoiceViews(invoices []models.Invoice, today time.Time) []InvoiceView {
	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, newInvoiceView(inv, today))
	}
	return views
}

// ListInvoices lists invoices, filtered and sorted
// @Summary      List invoices
// @Description  Get supplier invoices with derived status, optionally filtered and sorted.
// @Tags         invoices
// @Produce      json
// @Param        status    query     string  false  "Status tag (paid, overdue, due_today, skonto, open) or 'all'"
// @Param        supplier  query     string  false  "Exact supplier name or 'all'"
// @Param        month     query     int     false  "Due month (1-12)"
// @Param        year      query     int     false  "Due year"
// @Param        search    query     string  false  "Substring search over number, supplier and note"
// @Param        sort      query     string  false  "Sort key (default due_date)"
// @Param        dir       query     string  false  "Sort direction: asc or desc"
// @Success      200       {object}  Response{data=[]InvoiceView}
// @Router       /invoices [get]
// @Security     BasicAuth
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := engine.Criteria{
		Status:   q.Get("status"),
		Supplier: q.Get("supplier"),
		Search:   q.Get("search"),
	}
	// Unparseable month/year values simply leave the criterion inactive.
	criteria.Month, _ = strconv.Atoi(q.Get("month"))
	criteria.Year, _ = strconv.Atoi(q.Get("year"))

	dir := engine.Ascending
	if q.Get("dir") == "desc" {
		dir = engine.Descending
	}

	today := time.Now()
	invoices := db.LoadInvoices(DB)
	invoices = engine.Filter(invoices, criteria, today)
	invoices = engine.Sort(invoices, engine.SortKey(q.Get("sort")), dir, today)

	writeJSON(w, http.StatusOK, newInvoiceViews(invoices, today))
}

// GetInvoice retrieves a single invoice by ID
// @Summary      Get invoice
// @Description  Get one invoice with its derived status and Skonto figures.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=InvoiceView}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
// @Security     BasicAuth
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, inv := range db.LoadInvoices(DB) {
		if inv.ID == id {
			writeJSON(w, http.StatusOK, newInvoiceView(inv, time.Now()))
			return
		}
	}
	writeError(w, http.StatusNotFound, "invoice not found")
}

// CreateInvoice creates a new invoice
// @Summary      Create invoice
// @Description  Record a new supplier invoice. ID and creation time are assigned by the server; paid starts false.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice contents"
// @Success      201      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices [post]
// @Security     BasicAuth
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	inv := models.Invoice{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	input.Apply(&inv)

	mu.Lock()
	defer mu.Unlock()
	invoices := db.LoadInvoices(DB)
	invoices = append(invoices, inv)
	if err := db.SaveInvoices(DB, invoices); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newInvoiceView(inv, time.Now()))
}

// UpdateInvoice updates an existing invoice
// @Summary      Update invoice
// @Description  Replace the editable fields of an invoice. An unknown ID is a no-op.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Invoice ID"
// @Param        invoice  body      models.InvoiceInput  true  "Updated invoice contents"
// @Success      200      {object}  Response{data=InvoiceView}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
// @Security     BasicAuth
func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	invoices := db.LoadInvoices(DB)
	for n := range invoices {
		if invoices[n].ID != id {
			continue
		}
		input.Apply(&invoices[n])
		if err := db.SaveInvoices(DB, invoices); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, newInvoiceView(invoices[n], time.Now()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "no matching invoice"})
}

// paidInput is the body of the paid toggle.
type paidInput struct {
	Paid bool `json:"paid"`
}

// SetInvoicePaid toggles the paid flag of an invoice
// @Summary      Set paid flag
// @Description  Mark an invoice paid or unpaid. An unknown ID is a no-op.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string     true  "Invoice ID"
// @Param        paid  body      paidInput  true  "Paid flag"
// @Success      200   {object}  Response{data=InvoiceView}
// @Failure      400   {object}  Response{error=string}
// @Router       /invoices/{id}/paid [post]
// @Security     BasicAuth
func SetInvoicePaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input paidInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	mu.Lock()
	defer mu.Unlock()
	invoices := db.LoadInvoices(DB)
	for n := range invoices {
		if invoices[n].ID != id {
			continue
		}
		invoices[n].Paid = input.Paid
		if err := db.SaveInvoices(DB, invoices); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, newInvoiceView(invoices[n], time.Now()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "no matching invoice"})
}

// DeleteInvoice deletes an invoice
// @Summary      Delete invoice
// @Description  Remove an invoice. An unknown ID is a no-op.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /invoices/{id} [delete]
// @Security     BasicAuth
func DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mu.Lock()
	defer mu.Unlock()
	invoices := db.LoadInvoices(DB)
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) != len(invoices) {
		if err := db.SaveInvoices(DB, kept); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
