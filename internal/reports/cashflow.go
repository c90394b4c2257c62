package reports

import (
	"github.com/campusledger/campusledger/internal/ledger"
)

// OperatingSection is the operations part of the cash-flow statement.
type OperatingSection struct {
	Revenue           float64 `json:"revenue"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	TaxesPaid         float64 `json:"taxesPaid"`
	Net               float64 `json:"net"`
}

// FinancingSection covers share and loan cash movements. Inflows are
// positive, repayments subtract; the loan's direction decides which of its
// event series counts on which side.
type FinancingSection struct {
	ShareIssuanceProceeds float64 `json:"shareIssuanceProceeds"`
	LoanCollections       float64 `json:"loanCollections"`
	LoanRepayments        float64 `json:"loanRepayments"`
	InterestPaid          float64 `json:"interestPaid"`
	DividendsPaid         float64 `json:"dividendsPaid"`
	Net                   float64 `json:"net"`
}

// InvestingSection covers asset acquisitions, disposals, and yields.
type InvestingSection struct {
	AssetSaleProceeds float64 `json:"assetSaleProceeds"`
	InterestReceived  float64 `json:"interestReceived"`
	DividendsReceived float64 `json:"dividendsReceived"`
	AssetPurchases    float64 `json:"assetPurchases"`
	Net               float64 `json:"net"`
}

// CashFlow is the three-section cash-flow statement.
type CashFlow struct {
	Operating OperatingSection `json:"operating"`
	Financing FinancingSection `json:"financing"`
	Investing InvestingSection `json:"investing"`
	NetChange float64          `json:"netChange"`
}

// BuildCashFlow derives the cash-flow statement. The sections carry no state
// between each other, and every figure windows on its own governing date
// field: sale date for revenue, each event's own date for series sums, sold
// date for disposals, purchase date for acquisitions.
func BuildCashFlow(snap ledger.Snapshot, w ledger.Window) CashFlow {
	var cf CashFlow

	cf.Operating.Revenue = BuildRevenue(snap.Sales, w)
	for _, e := range ledger.FilterSlice(snap.Expenses, w, ledger.Expense.RecordTime) {
		cf.Operating.OperatingExpenses += ledger.Num(e.Amount)
	}
	for _, t := range ledger.FilterSlice(snap.Taxes, w, ledger.Tax.RecordTime) {
		cf.Operating.TaxesPaid += ledger.TaxAmount(t)
	}
	cf.Operating.Net = cf.Operating.Revenue - cf.Operating.OperatingExpenses - cf.Operating.TaxesPaid

	for _, sh := range snap.Shares {
		cf.Financing.ShareIssuanceProceeds += sh.ShareIssuanceProceeds.Sum(w)
		cf.Financing.DividendsPaid += sh.AmountPaid.Sum(w)
	}
	for _, l := range snap.Liabilities {
		cf.Financing.LoanCollections += l.FinancingInflow(w)
		if l.LoanType == ledger.LoanReceived {
			cf.Financing.LoanRepayments += l.AmountPaid.Sum(w)
			cf.Financing.InterestPaid += l.InterestPaid.Sum(w)
		}
	}
	cf.Financing.Net = cf.Financing.ShareIssuanceProceeds + cf.Financing.LoanCollections -
		cf.Financing.LoanRepayments - cf.Financing.InterestPaid - cf.Financing.DividendsPaid

	for _, a := range ledger.FilterSlice(snap.Assets, w, ledger.Asset.SoldTime) {
		cf.Investing.AssetSaleProceeds += ledger.Num(a.SoldPrice)
	}
	for _, a := range snap.Assets {
		cf.Investing.InterestReceived += a.InterestReceived.Sum(w)
		cf.Investing.DividendsReceived += a.DividendReceived.Sum(w)
	}
	for _, a := range ledger.FilterSlice(snap.Assets, w, ledger.Asset.PurchaseTime) {
		cf.Investing.AssetPurchases += ledger.Num(a.PurchasePrice)
	}
	cf.Investing.Net = cf.Investing.AssetSaleProceeds + cf.Investing.InterestReceived +
		cf.Investing.DividendsReceived - cf.Investing.AssetPurchases

	cf.NetChange = cf.Operating.Net + cf.Financing.Net + cf.Investing.Net
	return cf
}
