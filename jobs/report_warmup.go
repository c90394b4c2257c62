package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/campusledger/campusledger/internal/analytics"
)

// ReportWarmer refreshes the snapshot and primes the report cache so the
// first dashboard hit after a data change does not pay the rebuild cost.
type ReportWarmer struct {
	service ReportService
	logger  *slog.Logger
}

// ReportService is the analytics surface the warmer drives.
type ReportService interface {
	Refresh(ctx context.Context) error
	WarmFilters(ctx context.Context, filters []analytics.ReportFilter) error
}

// NewReportWarmer constructs the warmup handler.
func NewReportWarmer(service ReportService, logger *slog.Logger) *ReportWarmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWarmer{service: service, logger: logger}
}

// Handle processes TaskReportWarmup tasks.
func (w *ReportWarmer) Handle(ctx context.Context, t *asynq.Task) error {
	var payload ReportWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	filter, err := payload.filter()
	if err != nil {
		w.logger.Warn("warmup payload has bad dates, warming unbounded", slog.Any("error", err))
		filter = analytics.ReportFilter{}
	}

	if err := w.service.Refresh(ctx); err != nil {
		return err
	}
	if err := w.service.WarmFilters(ctx, []analytics.ReportFilter{filter}); err != nil {
		return err
	}
	w.logger.Info("report cache warmed",
		slog.String("from", payload.From), slog.String("to", payload.To))
	return nil
}

func (p ReportWarmupPayload) filter() (analytics.ReportFilter, error) {
	var f analytics.ReportFilter
	var err error
	if p.From != "" {
		if f.From, err = time.Parse("2006-01-02", p.From); err != nil {
			return analytics.ReportFilter{}, err
		}
	}
	if p.To != "" {
		if f.To, err = time.Parse("2006-01-02", p.To); err != nil {
			return analytics.ReportFilter{}, err
		}
	}
	f.Keyword = p.Keyword
	return f, nil
}
