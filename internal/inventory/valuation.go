package inventory

import (
	"sort"

	"github.com/campusledger/campusledger/internal/ledger"
)

// ProductBalance is one valuation row.
type ProductBalance struct {
	Name      string  `json:"name"`
	Restocked float64 `json:"restocked"`
	Sold      float64 `json:"sold"`
	Balance   float64 `json:"balance"`
	Value     float64 `json:"value"`
}

// Valuation is the inventory valuation report.
type Valuation struct {
	TotalValue float64                   `json:"totalValue"`
	Products   map[string]ProductBalance `json:"perProductBalance"`
}

// Lines returns the valuation rows in stable name order for rendering.
func (v Valuation) Lines() []ProductBalance {
	lines := make([]ProductBalance, 0, len(v.Products))
	for _, row := range v.Products {
		lines = append(lines, row)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}

// Value computes the inventory valuation over the given window and keyword.
// A product enters a date-bounded valuation only if its first restock falls
// inside the window; with no restock history it has no anchor instant and is
// skipped by bounded queries but included in unbounded ones. The per-product
// value is cost price times the running balance from the shared index, so
// every report path prices the same stock level.
func Value(products []ledger.Product, ix *TotalsIndex, w ledger.Window, keyword string) Valuation {
	out := Valuation{Products: make(map[string]ProductBalance)}
	for _, p := range products {
		if !w.Unbounded() {
			first, ok := ix.FirstRestock(p.Name)
			if !ok || !w.Contains(first) {
				continue
			}
		}
		if !Matches(p, keyword) {
			continue
		}
		row := ProductBalance{
			Name:      p.Name,
			Restocked: ix.Restocked(p.Name),
			Sold:      ix.Sold(p.Name),
			Balance:   ix.Balance(p.Name),
		}
		row.Value = ledger.Num(p.CostPrice) * row.Balance
		out.Products[p.Name] = row
		out.TotalValue += row.Value
	}
	return out
}
