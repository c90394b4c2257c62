package reports

import (
	"testing"

	"github.com/campusledger/campusledger/internal/ledger"
	_ "github.com/campusledger/campusledger/testing"
)

func TestBuildFeesAcceptsBothReceiptShapes(t *testing.T) {
	payments := []ledger.Payment{
		{ID: "r1", StudentID: "s1", TotalAmount: 5000},
		{ID: "r2", StudentID: "s2", Items: []ledger.LineItem{{Amount: 1500}, {Amount: 2500}}},
	}
	fees := BuildFees(payments, ledger.Window{})
	if fees.TotalFeesPaid != 9000 {
		t.Fatalf("total fees = %v, want 9000", fees.TotalFeesPaid)
	}
	if len(fees.PerTransaction) != 2 {
		t.Fatalf("transactions = %d", len(fees.PerTransaction))
	}
	if fees.PerTransaction[1].Amount != 4000 {
		t.Fatalf("itemized receipt row = %v", fees.PerTransaction[1].Amount)
	}
}

func TestBuildFeesWindowed(t *testing.T) {
	payments := []ledger.Payment{
		{TotalAmount: 100, Timestamp: "2025-06-01"},
		{TotalAmount: 200, Timestamp: "2022-06-01"},
	}
	w := ledger.NewWindow(day("2025-01-01"), day("2025-12-31"))
	fees := BuildFees(payments, w)
	if fees.TotalFeesPaid != 100 {
		t.Fatalf("windowed total = %v, want 100", fees.TotalFeesPaid)
	}
}

func TestBuildFeesEmpty(t *testing.T) {
	fees := BuildFees(nil, ledger.Window{})
	if fees.TotalFeesPaid != 0 || len(fees.PerTransaction) != 0 {
		t.Fatalf("empty input must produce zeros: %+v", fees)
	}
}
