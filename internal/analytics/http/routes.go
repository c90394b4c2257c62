package analytichttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the financial report endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/balance-sheet", h.handleBalanceSheet)
		rr.Get("/cash-flow", h.handleCashFlow)
		rr.Get("/fees", h.handleFees)
		rr.Get("/inventory", h.handleInventory)
		rr.Get("/overview", h.handleOverview)
		rr.Post("/refresh", h.handleRefresh)
		rr.Group(func(gr chi.Router) {
			gr.Use(limiter)
			gr.Get("/export.csv", h.handleCSV)
		})
	})
}
