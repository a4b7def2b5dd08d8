package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

const invoicesKey = "invoices"

// LoadInvoices returns the stored invoice list. Missing or corrupt data fails
// soft to an empty list; a half-readable store must never take the app down.
func LoadInvoices(database *sql.DB) []models.Invoice {
	var raw string
	err := database.QueryRow(`SELECT value FROM store WHERE key = ?`, invoicesKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Invoice{}
	}
	if err != nil {
		slog.Error("loading invoices", "error", err)
		return []models.Invoice{}
	}

	var invoices []models.Invoice
	if err := json.Unmarshal([]byte(raw), &invoices); err != nil {
		slog.Warn("stored invoice data is corrupt, treating as empty", "error", err)
		return []models.Invoice{}
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices
}

// SaveInvoices persists the full invoice list, replacing prior contents.
func SaveInvoices(database *sql.DB, invoices []models.Invoice) error {
	raw, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("encoding invoices: %w", err)
	}
	_, err = database.Exec(`INSERT INTO store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		invoicesKey, string(raw))
	if err != nil {
		return fmt.Errorf("saving invoices: %w", err)
	}
	return nil
}
