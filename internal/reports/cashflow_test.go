package reports

import (
	"testing"

	"github.com/campusledger/campusledger/internal/ledger"
	_ "github.com/campusledger/campusledger/testing"
)

func TestOperatingSection(t *testing.T) {
	snap := ledger.Snapshot{
		Sales: []ledger.Sale{
			{Date: "2025-03-01", Products: []ledger.SaleLine{{Amount: 500, CostPrice: 300}}},
			{Date: "2025-03-02", Products: []ledger.SaleLine{{Amount: 700, CostPrice: 450}}},
		},
		Expenses: []ledger.Expense{{Amount: 200, Date: "2025-03-05"}},
		Taxes:    []ledger.Tax{{PaidAmount: 100, Date: "2025-03-06"}},
	}
	cf := BuildCashFlow(snap, ledger.Window{})
	if cf.Operating.Revenue != 1200 {
		t.Fatalf("revenue = %v, want 1200", cf.Operating.Revenue)
	}
	if cf.Operating.Net != 900 {
		t.Fatalf("operating net = %v, want 900", cf.Operating.Net)
	}
	if got := BuildCOGS(snap.Sales, ledger.Window{}); got != 750 {
		t.Fatalf("COGS = %v, want 750", got)
	}
}

func TestFinancingDirectionRules(t *testing.T) {
	snap := ledger.Snapshot{
		Liabilities: []ledger.Liability{
			{
				LoanType:     ledger.LoanReceived,
				AmountPaid:   ledger.RepaymentSeries{{Amount: 400, Date: "2025-01-10"}},
				InterestPaid: ledger.RepaymentSeries{{Amount: 50, Date: "2025-01-10"}},
				// Direction says these must not count as inflow.
				ReceivedLoan: ledger.ProceedsSeries{{Amount: 9999, Date: "2025-01-10"}},
			},
			{
				LoanType:     ledger.LoanDisbursed,
				ReceivedLoan: ledger.ProceedsSeries{{Amount: 300, Date: "2025-01-12"}},
				// And these must not count as outflow.
				AmountPaid: ledger.RepaymentSeries{{Amount: 8888, Date: "2025-01-12"}},
			},
			{
				// No loanType: excluded from every financing figure.
				AmountPaid:   ledger.RepaymentSeries{{Amount: 123, Date: "2025-01-13"}},
				ReceivedLoan: ledger.ProceedsSeries{{Amount: 321, Date: "2025-01-13"}},
			},
		},
		Shares: []ledger.Share{
			{
				ShareIssuanceProceeds: ledger.ProceedsSeries{{Amount: 1000, Date: "2025-01-15"}},
				AmountPaid:            ledger.RepaymentSeries{{Amount: 200, Date: "2025-01-16"}},
			},
		},
	}
	cf := BuildCashFlow(snap, ledger.Window{})
	fin := cf.Financing
	if fin.LoanCollections != 300 {
		t.Fatalf("loan collections = %v, want 300", fin.LoanCollections)
	}
	if fin.LoanRepayments != 400 {
		t.Fatalf("loan repayments = %v, want 400", fin.LoanRepayments)
	}
	if fin.InterestPaid != 50 {
		t.Fatalf("interest paid = %v, want 50", fin.InterestPaid)
	}
	if fin.ShareIssuanceProceeds != 1000 || fin.DividendsPaid != 200 {
		t.Fatalf("share figures = %v/%v", fin.ShareIssuanceProceeds, fin.DividendsPaid)
	}
	if want := 1000.0 + 300 - 400 - 50 - 200; fin.Net != want {
		t.Fatalf("financing net = %v, want %v", fin.Net, want)
	}
}

func TestInvestingWindowsGoverningDateFields(t *testing.T) {
	snap := ledger.Snapshot{
		Assets: []ledger.Asset{
			{
				Status:        ledger.AssetStatusSold,
				SoldPrice:     8000,
				SoldDate:      "2024-06-01", // outside the window
				PurchasePrice: 3000,
				PurchaseDate:  "2025-02-01", // inside it
			},
		},
	}
	w := ledger.NewWindow(day("2025-01-01"), day("2025-12-31"))
	cf := BuildCashFlow(snap, w)
	if cf.Investing.AssetSaleProceeds != 0 {
		t.Fatalf("sale outside window counted: %v", cf.Investing.AssetSaleProceeds)
	}
	if cf.Investing.AssetPurchases != 3000 {
		t.Fatalf("purchase inside window missed: %v", cf.Investing.AssetPurchases)
	}
	if cf.Investing.Net != -3000 {
		t.Fatalf("investing net = %v, want -3000", cf.Investing.Net)
	}
}

func TestInvestingYields(t *testing.T) {
	snap := ledger.Snapshot{
		Assets: []ledger.Asset{
			{
				InterestReceived: ledger.ProceedsSeries{{Amount: 120, Date: "2025-03-01"}},
				DividendReceived: ledger.ProceedsSeries{{Amount: 80, Date: "2025-04-01"}},
			},
		},
	}
	cf := BuildCashFlow(snap, ledger.NewWindow(day("2025-01-01"), day("2025-12-31")))
	if cf.Investing.InterestReceived != 120 || cf.Investing.DividendsReceived != 80 {
		t.Fatalf("yields = %v/%v", cf.Investing.InterestReceived, cf.Investing.DividendsReceived)
	}
}

func TestCashFlowEmptySnapshot(t *testing.T) {
	cf := BuildCashFlow(ledger.Snapshot{}, ledger.Window{})
	if cf.NetChange != 0 || cf.Operating.Net != 0 || cf.Financing.Net != 0 || cf.Investing.Net != 0 {
		t.Fatalf("empty snapshot must be all zeros: %+v", cf)
	}
}
