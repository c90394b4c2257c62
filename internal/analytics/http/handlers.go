package analytichttp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/campusledger/campusledger/internal/analytics"
	"github.com/campusledger/campusledger/internal/analytics/export"
	"github.com/campusledger/campusledger/internal/inventory"
	"github.com/campusledger/campusledger/internal/observability"
	"github.com/campusledger/campusledger/internal/reports"
)

const requestTimeout = 5 * time.Second

// ReportService defines the report data contract used by the handler.
type ReportService interface {
	BalanceSheet(ctx context.Context, filter analytics.ReportFilter) (reports.BalanceSheet, error)
	CashFlow(ctx context.Context, filter analytics.ReportFilter) (reports.CashFlow, error)
	Fees(ctx context.Context, filter analytics.ReportFilter) (reports.Fees, error)
	InventoryValuation(ctx context.Context, filter analytics.ReportFilter) (inventory.Valuation, error)
	Overview(ctx context.Context, filter analytics.ReportFilter) (reports.Overview, error)
	Refresh(ctx context.Context) error
}

// reportQuery carries the raw query parameters before validation.
type reportQuery struct {
	From    string `validate:"omitempty,datetime=2006-01-02"`
	To      string `validate:"omitempty,datetime=2006-01-02"`
	Keyword string `validate:"omitempty,max=120"`
}

// Handler serves the financial report endpoints.
type Handler struct {
	logger   *slog.Logger
	service  ReportService
	metrics  *observability.Metrics
	validate *validator.Validate
}

// NewHandler constructs the reports HTTP handler.
func NewHandler(logger *slog.Logger, service ReportService, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		service:  service,
		metrics:  metrics,
		validate: validator.New(),
	}
}

func (h *Handler) parseFilter(r *http.Request) (analytics.ReportFilter, error) {
	q := reportQuery{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		Keyword: r.URL.Query().Get("keyword"),
	}
	if err := h.validate.Struct(q); err != nil {
		return analytics.ReportFilter{}, err
	}
	var filter analytics.ReportFilter
	if q.From != "" {
		filter.From, _ = time.Parse("2006-01-02", q.From)
	}
	if q.To != "" {
		filter.To, _ = time.Parse("2006-01-02", q.To)
	}
	filter.Keyword = q.Keyword
	return filter, nil
}

func (h *Handler) handleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "balance_sheet", func(ctx context.Context, f analytics.ReportFilter) (any, error) {
		return h.service.BalanceSheet(ctx, f)
	})
}

func (h *Handler) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "cash_flow", func(ctx context.Context, f analytics.ReportFilter) (any, error) {
		return h.service.CashFlow(ctx, f)
	})
}

func (h *Handler) handleFees(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "fees", func(ctx context.Context, f analytics.ReportFilter) (any, error) {
		return h.service.Fees(ctx, f)
	})
}

func (h *Handler) handleInventory(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "inventory", func(ctx context.Context, f analytics.ReportFilter) (any, error) {
		return h.service.InventoryValuation(ctx, f)
	})
}

// handleOverview fans the section loads out; every figure still derives from
// the same installed snapshot, so parallelism cannot skew the bundle.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		h.respondBadRequest(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		overview reports.Overview
		fees     reports.Fees
		val      inventory.Valuation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = h.service.Overview(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		fees, err = h.service.Fees(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		val, err = h.service.InventoryValuation(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondServerError(w, "load overview", err)
		return
	}
	h.respondJSON(w, "overview", map[string]any{
		"overview":  overview,
		"fees":      fees,
		"inventory": val,
	})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := h.service.Refresh(ctx); err != nil {
		h.respondServerError(w, "refresh snapshot", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		h.respondBadRequest(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	bs, err := h.service.BalanceSheet(ctx, filter)
	if err != nil {
		h.respondServerError(w, "load balance sheet", err)
		return
	}
	cf, err := h.service.CashFlow(ctx, filter)
	if err != nil {
		h.respondServerError(w, "load cash flow", err)
		return
	}
	fees, err := h.service.Fees(ctx, filter)
	if err != nil {
		h.respondServerError(w, "load fees", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-reports.csv"`)
	if err := export.WriteReportsCSV(w, bs, cf, fees); err != nil {
		h.logger.Error("write csv", slog.Any("error", err))
	}
	h.count("export_csv")
}

func (h *Handler) serveReport(w http.ResponseWriter, r *http.Request, name string, load func(context.Context, analytics.ReportFilter) (any, error)) {
	filter, err := h.parseFilter(r)
	if err != nil {
		h.respondBadRequest(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payload, err := load(ctx, filter)
	if err != nil {
		h.respondServerError(w, "load "+name, err)
		return
	}
	h.respondJSON(w, name, payload)
}

func (h *Handler) respondJSON(w http.ResponseWriter, name string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", slog.String("report", name), slog.Any("error", err))
	}
	h.count(name)
}

func (h *Handler) respondBadRequest(w http.ResponseWriter, err error) {
	http.Error(w, "invalid report filter: "+err.Error(), http.StatusBadRequest)
}

func (h *Handler) respondServerError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) count(report string) {
	if h.metrics != nil {
		h.metrics.ReportBuilt(report)
	}
}
