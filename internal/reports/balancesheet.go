package reports

import (
	"github.com/campusledger/campusledger/internal/ledger"
)

// BalanceSheetLine is one record's contribution to a balance sheet section.
type BalanceSheetLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// BalanceSheet is the structured balance sheet report.
type BalanceSheet struct {
	TotalAssets      float64            `json:"totalAssets"`
	TotalLiabilities float64            `json:"totalLiabilities"`
	RetainedEarnings float64            `json:"retainedEarnings"`
	Equity           float64            `json:"equity"`
	AssetLines       []BalanceSheetLine `json:"assetLines"`
	LiabilityLines   []BalanceSheetLine `json:"liabilityLines"`
}

// BuildBalanceSheet derives the balance sheet from the snapshot. Each of the
// four sums honors the window independently against its own collection's
// record dates; asset and liability values resolve through the documented
// first-defined-wins chains.
func BuildBalanceSheet(snap ledger.Snapshot, w ledger.Window) BalanceSheet {
	var bs BalanceSheet

	assets := ledger.FilterSlice(snap.Assets, w, ledger.Asset.PurchaseTime)
	bs.AssetLines = make([]BalanceSheetLine, 0, len(assets))
	for _, a := range assets {
		line := BalanceSheetLine{ID: a.ID, Name: a.Name, Value: ledger.AssetCarryingValue(a)}
		bs.AssetLines = append(bs.AssetLines, line)
		bs.TotalAssets += line.Value
	}

	liabilities := ledger.FilterSlice(snap.Liabilities, w, ledger.Liability.RecordTime)
	bs.LiabilityLines = make([]BalanceSheetLine, 0, len(liabilities))
	for _, l := range liabilities {
		line := BalanceSheetLine{ID: l.ID, Name: l.Name, Value: ledger.LiabilityCarryingValue(l)}
		bs.LiabilityLines = append(bs.LiabilityLines, line)
		bs.TotalLiabilities += line.Value
	}

	for _, p := range ledger.FilterSlice(snap.Payments, w, ledger.Payment.RecordTime) {
		bs.RetainedEarnings += ledger.PaymentAmount(p)
	}
	for _, e := range ledger.FilterSlice(snap.Expenses, w, ledger.Expense.RecordTime) {
		bs.RetainedEarnings -= ledger.Num(e.Amount)
	}

	bs.Equity = bs.TotalAssets - bs.TotalLiabilities + bs.RetainedEarnings
	return bs
}
