package reports

import (
	"github.com/campusledger/campusledger/internal/inventory"
	"github.com/campusledger/campusledger/internal/ledger"
)

// Overview is the KPI block the dashboard reads.
type Overview struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	Equity           float64 `json:"equity"`
	FeesPaid         float64 `json:"feesPaid"`
	Revenue          float64 `json:"revenue"`
	COGS             float64 `json:"cogs"`
	InventoryValue   float64 `json:"inventoryValue"`
	SoldAssetValue   float64 `json:"soldAssetValue"`
	NetCashChange    float64 `json:"netCashChange"`
}

// Bundle is one consistent aggregation pass over a single snapshot and a
// single totals index.
type Bundle struct {
	BalanceSheet BalanceSheet        `json:"balanceSheet"`
	CashFlow     CashFlow            `json:"cashFlow"`
	Fees         Fees                `json:"fees"`
	Inventory    inventory.Valuation `json:"inventory"`
	Overview     Overview            `json:"overview"`
}

// Assemble builds every report from the same snapshot and index so no two
// figures in the bundle can disagree about the underlying data.
func Assemble(snap ledger.Snapshot, ix *inventory.TotalsIndex, w ledger.Window, keyword string) Bundle {
	b := Bundle{
		BalanceSheet: BuildBalanceSheet(snap, w),
		CashFlow:     BuildCashFlow(snap, w),
		Fees:         BuildFees(snap.Payments, w),
		Inventory:    inventory.Value(snap.Products, ix, w, keyword),
	}
	b.Overview = Overview{
		TotalAssets:      b.BalanceSheet.TotalAssets,
		TotalLiabilities: b.BalanceSheet.TotalLiabilities,
		Equity:           b.BalanceSheet.Equity,
		FeesPaid:         b.Fees.TotalFeesPaid,
		Revenue:          b.CashFlow.Operating.Revenue,
		COGS:             BuildCOGS(snap.Sales, w),
		InventoryValue:   b.Inventory.TotalValue,
		SoldAssetValue:   soldAssetValue(snap.Assets, w),
		NetCashChange:    b.CashFlow.NetChange,
	}
	return b
}

func soldAssetValue(assets []ledger.Asset, w ledger.Window) float64 {
	var total float64
	for _, a := range ledger.FilterSlice(assets, w, ledger.Asset.SoldTime) {
		if a.Status == ledger.AssetStatusSold {
			total += ledger.Num(a.SoldPrice)
		}
	}
	return total
}
