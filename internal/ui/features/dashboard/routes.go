// Package dashboard provides the salary dashboard feature for the UI.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/ui/notifier"
)

// SetupRoutes configures routes for the dashboard feature.
func SetupRoutes(router chi.Router, st *store.Store, notify *notifier.Notifier, tableLimit int) error {
	handlers := NewHandlers(st, notify, tableLimit)

	router.Get("/", handlers.HandleDashboardPage)
	router.Get("/atualizar", handlers.HandleAtualizar)
	router.Get("/updates", handlers.HandleUpdates)

	return nil
}
