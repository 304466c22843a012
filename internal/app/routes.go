package app

import (
	"github.com/gorilla/mux"
	"github.com/moneypal/moneypal/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.List).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{transactionId}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{transactionId}", deps.TransactionHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Clear).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.List).Queries("type", "{type}").Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/category/{categoryId}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/category/{categoryId}", deps.CategoryHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/category", deps.CategoryHandler.Clear).Methods("DELETE")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.Get).Methods("GET")
	r.HandleFunc("/api/budget/limit", deps.BudgetHandler.SetLimit).Methods("PUT")
	r.HandleFunc("/api/budget/effective", deps.BudgetHandler.EffectiveLimit).
		Queries("month", "{month}", "categoryId", "{categoryId}").Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.Clear).Methods("DELETE")

	// Preferences
	r.HandleFunc("/api/preferences", deps.PreferencesHandler.Get).Methods("GET")
	r.HandleFunc("/api/preferences", deps.PreferencesHandler.Update).Methods("PUT")
	r.HandleFunc("/api/preferences/currencies", deps.PreferencesHandler.ListCurrencies).Methods("GET")

	// Backup
	r.HandleFunc("/api/backup/export", deps.BackupHandler.Export).Methods("GET")
	r.HandleFunc("/api/backup/import", deps.BackupHandler.Import).Methods("POST")
	r.HandleFunc("/api/backup/share", deps.BackupHandler.Share).Methods("POST")

	// Stats
	r.HandleFunc("/api/stats/monthly", deps.StatsHandler.GetMonthly).Queries("month", "{month}").Methods("GET")

	// Google Drive integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("POST")
}
