package inventory

import (
	"time"

	"github.com/campusledger/campusledger/internal/ledger"
)

// TotalsIndex holds the name-keyed running totals every report path reads:
// cumulative restocked and sold quantities plus the first restock instant per
// product. It is built once per change to the product collection and never
// mutated afterwards, so any number of concurrent report requests can share
// one index without seeing drift between each other.
type TotalsIndex struct {
	restocked    map[string]float64
	sold         map[string]float64
	firstRestock map[string]time.Time
	malformed    int
}

// BuildIndex reduces every product's embedded movement series into a fresh
// index. Malformed quantities contribute zero and are counted for the
// data-quality log line; they never abort the build.
func BuildIndex(products []ledger.Product) *TotalsIndex {
	ix := &TotalsIndex{
		restocked:    make(map[string]float64, len(products)),
		sold:         make(map[string]float64, len(products)),
		firstRestock: make(map[string]time.Time, len(products)),
	}
	for _, p := range products {
		for _, ev := range p.QuantityRestocked {
			qty, ok := ledger.Coerce(ev.Quantity)
			if !ok && ledger.Defined(ev.Quantity) {
				ix.malformed++
			}
			ix.restocked[p.Name] += qty
		}
		for _, ev := range p.QuantitySold {
			qty, ok := ledger.Coerce(ev.QuantitySold)
			if !ok && ledger.Defined(ev.QuantitySold) {
				ix.malformed++
			}
			ix.sold[p.Name] += qty
		}
		if _, seen := ix.firstRestock[p.Name]; !seen && len(p.QuantityRestocked) > 0 {
			ix.firstRestock[p.Name] = p.QuantityRestocked[0].EventTime()
		}
	}
	return ix
}

// Restocked returns the cumulative restocked quantity for a product name.
func (ix *TotalsIndex) Restocked(name string) float64 { return ix.restocked[name] }

// Sold returns the cumulative sold quantity for a product name.
func (ix *TotalsIndex) Sold(name string) float64 { return ix.sold[name] }

// Balance is restocked minus sold. It may be negative when the data says a
// product was over-sold; that is surfaced rather than clamped, since clamping
// would hide the entry error.
func (ix *TotalsIndex) Balance(name string) float64 {
	return ix.restocked[name] - ix.sold[name]
}

// FirstRestock returns the instant of the product's first restock entry.
// The second return is false for a product with no restock history.
func (ix *TotalsIndex) FirstRestock(name string) (time.Time, bool) {
	t, ok := ix.firstRestock[name]
	return t, ok
}

// MalformedEntries is the number of movement entries whose quantity failed
// numeric coercion during the build.
func (ix *TotalsIndex) MalformedEntries() int { return ix.malformed }
