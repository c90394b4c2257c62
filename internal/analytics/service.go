package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/campusledger/campusledger/internal/inventory"
	"github.com/campusledger/campusledger/internal/ledger"
	"github.com/campusledger/campusledger/internal/reports"
)

// SnapshotSource materializes the full document snapshot the engine
// aggregates over. The store package provides the production implementation.
type SnapshotSource interface {
	Load(ctx context.Context) (ledger.Snapshot, error)
}

// ReportFilter scopes a report request.
type ReportFilter struct {
	From    time.Time
	To      time.Time
	Keyword string
}

// Window converts the filter bounds to a ledger window.
func (f ReportFilter) Window() ledger.Window { return ledger.NewWindow(f.From, f.To) }

func (f ReportFilter) cacheToken() string {
	from, to := "-", "-"
	if !f.From.IsZero() {
		from = f.From.Format("2006-01-02")
	}
	if !f.To.IsZero() {
		to = f.To.Format("2006-01-02")
	}
	return from + ":" + to + ":" + f.Keyword
}

// view pairs a snapshot with the totals index built from it. The pair is
// published through a single atomic pointer so a reader never combines one
// load's products with another load's index.
type view struct {
	snap  ledger.Snapshot
	index *inventory.TotalsIndex
}

func newView(snap ledger.Snapshot) *view {
	return &view{snap: snap, index: inventory.BuildIndex(snap.Products)}
}

// Service owns the current snapshot and totals index and serves every report
// from them. A refresh installs a new snapshot and index atomically and bumps
// the cache version, so readers see either the whole old state or the whole
// new one.
type Service struct {
	source  SnapshotSource
	cache   *Cache
	logger  *slog.Logger
	state   atomic.Pointer[view]
	reloads singleflight.Group
}

// NewService wires the snapshot source with the cache helper and performs the
// initial load.
func NewService(ctx context.Context, source SnapshotSource, cache *Cache, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{source: source, cache: cache, logger: logger}
	snap, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: initial snapshot load: %w", err)
	}
	v := newView(snap)
	s.state.Store(v)
	s.logDataQuality(v)
	return s, nil
}

// Refresh reloads the snapshot, rebuilds the totals index, and invalidates
// cached reports. Concurrent refreshes collapse into one load.
func (s *Service) Refresh(ctx context.Context) error {
	_, err, _ := s.reloads.Do("refresh", func() (interface{}, error) {
		snap, err := s.source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("analytics: refresh snapshot: %w", err)
		}
		v := newView(snap)
		s.state.Store(v)
		s.logDataQuality(v)
		if err := s.cache.Bump(ctx); err != nil {
			s.logger.Warn("cache bump failed", slog.Any("error", err))
		}
		return nil, nil
	})
	return err
}

func (s *Service) current() *view {
	if v := s.state.Load(); v != nil {
		return v
	}
	return newView(ledger.Snapshot{})
}

func (s *Service) logDataQuality(v *view) {
	if n := v.index.MalformedEntries(); n > 0 {
		s.logger.Warn("product movement entries failed numeric coercion",
			slog.Int("entries", n))
	}
}

// BalanceSheet resolves the balance sheet report, cache-aware.
func (s *Service) BalanceSheet(ctx context.Context, filter ReportFilter) (reports.BalanceSheet, error) {
	loader := func(context.Context) (interface{}, error) {
		return reports.BuildBalanceSheet(s.current().snap, filter.Window()), nil
	}
	var out reports.BalanceSheet
	if err := s.fetch(ctx, "reports:bs:"+filter.cacheToken(), &out, loader); err != nil {
		return reports.BalanceSheet{}, err
	}
	return out, nil
}

// CashFlow resolves the cash-flow statement, cache-aware.
func (s *Service) CashFlow(ctx context.Context, filter ReportFilter) (reports.CashFlow, error) {
	loader := func(context.Context) (interface{}, error) {
		return reports.BuildCashFlow(s.current().snap, filter.Window()), nil
	}
	var out reports.CashFlow
	if err := s.fetch(ctx, "reports:cf:"+filter.cacheToken(), &out, loader); err != nil {
		return reports.CashFlow{}, err
	}
	return out, nil
}

// Fees resolves the fees-paid report, cache-aware.
func (s *Service) Fees(ctx context.Context, filter ReportFilter) (reports.Fees, error) {
	loader := func(context.Context) (interface{}, error) {
		return reports.BuildFees(s.current().snap.Payments, filter.Window()), nil
	}
	var out reports.Fees
	if err := s.fetch(ctx, "reports:fees:"+filter.cacheToken(), &out, loader); err != nil {
		return reports.Fees{}, err
	}
	return out, nil
}

// InventoryValuation resolves the valuation report, cache-aware.
func (s *Service) InventoryValuation(ctx context.Context, filter ReportFilter) (inventory.Valuation, error) {
	loader := func(context.Context) (interface{}, error) {
		v := s.current()
		return inventory.Value(v.snap.Products, v.index, filter.Window(), filter.Keyword), nil
	}
	var out inventory.Valuation
	if err := s.fetch(ctx, "reports:inv:"+filter.cacheToken(), &out, loader); err != nil {
		return inventory.Valuation{}, err
	}
	return out, nil
}

// Overview resolves the KPI block, cache-aware.
func (s *Service) Overview(ctx context.Context, filter ReportFilter) (reports.Overview, error) {
	loader := func(context.Context) (interface{}, error) {
		v := s.current()
		bundle := reports.Assemble(v.snap, v.index, filter.Window(), filter.Keyword)
		return bundle.Overview, nil
	}
	var out reports.Overview
	if err := s.fetch(ctx, "reports:kpi:"+filter.cacheToken(), &out, loader); err != nil {
		return reports.Overview{}, err
	}
	return out, nil
}

// Bundle builds every report in one consistent pass, bypassing the cache.
// The warmup job uses it to prime individual keys.
func (s *Service) Bundle(filter ReportFilter) reports.Bundle {
	v := s.current()
	return reports.Assemble(v.snap, v.index, filter.Window(), filter.Keyword)
}

// WarmFilters primes the cache for the given filters by resolving every
// report through the normal cache-aware path. The warmup job calls it right
// after a refresh.
func (s *Service) WarmFilters(ctx context.Context, filters []ReportFilter) error {
	for _, filter := range filters {
		if _, err := s.BalanceSheet(ctx, filter); err != nil {
			return err
		}
		if _, err := s.CashFlow(ctx, filter); err != nil {
			return err
		}
		if _, err := s.Fees(ctx, filter); err != nil {
			return err
		}
		if _, err := s.InventoryValuation(ctx, filter); err != nil {
			return err
		}
		if _, err := s.Overview(ctx, filter); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) fetch(ctx context.Context, keyBase string, dest interface{}, loader func(context.Context) (interface{}, error)) error {
	key, err := s.cache.BuildKey(ctx, keyBase)
	if err != nil {
		return err
	}
	return s.cache.FetchJSON(ctx, key, dest, loader)
}
