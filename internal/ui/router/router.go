// Package router wires the dashboard routes onto the chi mux.
package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/datavisbr/painel-salarios/internal/store"
	"github.com/datavisbr/painel-salarios/internal/ui/features/dashboard"
	"github.com/datavisbr/painel-salarios/internal/ui/notifier"
	"github.com/datavisbr/painel-salarios/internal/ui/resources"
)

// SetupRoutes registers all routes on the given router.
func SetupRoutes(r chi.Router, st *store.Store, notify *notifier.Notifier, tableLimit int) error {
	r.Handle("/static/*", resources.Handler())

	return dashboard.SetupRoutes(r, st, notify, tableLimit)
}
