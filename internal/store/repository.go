package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/campusledger/campusledger/internal/ledger"
)

// Collection names the engine reads. One row per document, body stored as
// JSONB exactly as the CRUD layer wrote it.
const (
	CollectionProducts    = "products"
	CollectionAssets      = "assets"
	CollectionLiabilities = "liabilities"
	CollectionShares      = "shares"
	CollectionPayments    = "payments"
	CollectionExpenses    = "expenses"
	CollectionTaxes       = "taxes"
	CollectionPurchases   = "purchases"
	CollectionSales       = "sales"
)

// ErrUnknownCollection indicates a write against a collection the engine
// does not read.
var ErrUnknownCollection = errors.New("store: unknown collection")

var knownCollections = map[string]struct{}{
	CollectionProducts: {}, CollectionAssets: {}, CollectionLiabilities: {},
	CollectionShares: {}, CollectionPayments: {}, CollectionExpenses: {},
	CollectionTaxes: {}, CollectionPurchases: {}, CollectionSales: {},
}

// Repository reads the document store backing the operations app.
type Repository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{pool: pool, logger: logger}
}

// Load materializes all nine collections into one snapshot. Collections load
// concurrently; an individual document that fails to decode is skipped and
// logged rather than failing the snapshot, matching the engine's tolerance
// for loosely structured source data.
func (r *Repository) Load(ctx context.Context) (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return loadCollection(gctx, r, CollectionProducts, &snap.Products) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionAssets, &snap.Assets) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionLiabilities, &snap.Liabilities) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionShares, &snap.Shares) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionPayments, &snap.Payments) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionExpenses, &snap.Expenses) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionTaxes, &snap.Taxes) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionPurchases, &snap.Purchases) })
	g.Go(func() error { return loadCollection(gctx, r, CollectionSales, &snap.Sales) })

	if err := g.Wait(); err != nil {
		return ledger.Snapshot{}, classify(err)
	}
	return snap, nil
}

func loadCollection[T any](ctx context.Context, r *Repository, collection string, dest *[]T) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, body FROM documents WHERE collection = $1 ORDER BY created_at`, collection)
	if err != nil {
		return fmt.Errorf("store: query %s: %w", collection, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var id uuid.UUID
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return fmt.Errorf("store: scan %s: %w", collection, err)
		}
		doc, err := DecodeDocument[T](id.String(), body)
		if err != nil {
			r.logger.Warn("skipping undecodable document",
				slog.String("collection", collection),
				slog.String("id", id.String()),
				slog.Any("error", err))
			continue
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store: iterate %s: %w", collection, err)
	}
	*dest = out
	return nil
}

// Insert writes one document into a collection, generating its id. The CRUD
// layer owns document shape; the engine only requires valid JSON.
func (r *Repository) Insert(ctx context.Context, collection string, body json.RawMessage) (uuid.UUID, error) {
	if _, ok := knownCollections[collection]; !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body, created_at) VALUES ($1, $2, $3, now())`,
		id, collection, body)
	if err != nil {
		return uuid.Nil, classify(fmt.Errorf("store: insert %s: %w", collection, err))
	}
	return id, nil
}

// classify keeps Postgres details out of callers while preserving the
// wrapped chain for logs.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("store: postgres %s (%s): %w", pgErr.Code, pgErr.Message, err)
	}
	return err
}
