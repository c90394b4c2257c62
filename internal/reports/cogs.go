package reports

import (
	"github.com/campusledger/campusledger/internal/ledger"
)

// BuildCOGS sums the per-line costPrice over window-filtered sales. The
// source data stores extended cost per line, not unit cost, so there is
// deliberately no quantity multiplication here.
func BuildCOGS(sales []ledger.Sale, w ledger.Window) float64 {
	var total float64
	for _, s := range ledger.FilterSlice(sales, w, ledger.Sale.RecordTime) {
		for _, line := range s.Products {
			total += ledger.Num(line.CostPrice)
		}
	}
	return total
}

// BuildRevenue sums line revenue over window-filtered sales.
func BuildRevenue(sales []ledger.Sale, w ledger.Window) float64 {
	var total float64
	for _, s := range ledger.FilterSlice(sales, w, ledger.Sale.RecordTime) {
		for _, line := range s.Products {
			total += ledger.Num(line.Amount)
		}
	}
	return total
}
