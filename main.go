package main

//go:generate swag init

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/jungbauer-1968/rechnungs-cockpit/config"
	"github.com/jungbauer-1968/rechnungs-cockpit/db"
	_ "github.com/jungbauer-1968/rechnungs-cockpit/docs"
	"github.com/jungbauer-1968/rechnungs-cockpit/handlers"
)

// @title           Rechnungs-Cockpit API
// @version         1.0.0
// @description     API for tracking supplier invoices: payment status, filters, Skonto, and per-supplier totals.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Set shared DB for handlers
	handlers.DB = database

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth(cfg.AuthUser, cfg.AuthPass))

		// Invoices
		r.Get("/invoices", handlers.ListInvoices)
		r.Post("/invoices", handlers.CreateInvoice)
		r.Get("/invoices/{id}", handlers.GetInvoice)
		r.Put("/invoices/{id}", handlers.UpdateInvoice)
		r.Delete("/invoices/{id}", handlers.DeleteInvoice)
		r.Post("/invoices/{id}/paid", handlers.SetInvoicePaid)

		// Suppliers
		r.Get("/suppliers", handlers.ListSuppliers)

		// Dashboard
		r.Get("/dashboard", handlers.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	slog.Info("server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
