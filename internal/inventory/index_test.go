package inventory

import (
	"testing"

	"github.com/campusledger/campusledger/internal/ledger"
	_ "github.com/campusledger/campusledger/testing"
)

func pen() ledger.Product {
	return ledger.Product{
		ID:        "p1",
		Name:      "Pen",
		CostPrice: 10,
		QuantityRestocked: []ledger.RestockEvent{
			{Quantity: 100, Time: "2025-01-05"},
		},
		QuantitySold: []ledger.SaleEvent{
			{QuantitySold: 40},
		},
	}
}

func TestBuildIndexRunningTotals(t *testing.T) {
	ix := BuildIndex([]ledger.Product{pen()})
	if got := ix.Restocked("Pen"); got != 100 {
		t.Fatalf("restocked = %v", got)
	}
	if got := ix.Sold("Pen"); got != 40 {
		t.Fatalf("sold = %v", got)
	}
	if got := ix.Balance("Pen"); got != 60 {
		t.Fatalf("balance = %v, want 60", got)
	}
	first, ok := ix.FirstRestock("Pen")
	if !ok || first.Format("2006-01-02") != "2025-01-05" {
		t.Fatalf("first restock = %v ok=%v", first, ok)
	}
}

func TestIndexMatchesFreshReduction(t *testing.T) {
	products := []ledger.Product{
		pen(),
		{
			Name: "Book",
			QuantityRestocked: []ledger.RestockEvent{
				{Quantity: 5, Time: "2025-02-01"},
				{Quantity: "7", Time: "2025-03-01"},
			},
			QuantitySold: []ledger.SaleEvent{{QuantitySold: 20}},
		},
	}
	ix := BuildIndex(products)
	for _, p := range products {
		var restocked, sold float64
		for _, ev := range p.QuantityRestocked {
			restocked += ledger.Num(ev.Quantity)
		}
		for _, ev := range p.QuantitySold {
			sold += ledger.Num(ev.QuantitySold)
		}
		if ix.Balance(p.Name) != restocked-sold {
			t.Fatalf("%s: index balance %v drifted from raw reduction %v", p.Name, ix.Balance(p.Name), restocked-sold)
		}
	}
}

func TestNegativeBalanceIsSurfaced(t *testing.T) {
	ix := BuildIndex([]ledger.Product{{
		Name:              "Oversold",
		QuantityRestocked: []ledger.RestockEvent{{Quantity: 3, Time: "2025-01-01"}},
		QuantitySold:      []ledger.SaleEvent{{QuantitySold: 10}},
	}})
	if got := ix.Balance("Oversold"); got != -7 {
		t.Fatalf("balance = %v, want -7 (not clamped)", got)
	}
}

func TestMalformedQuantitiesCountedNotFatal(t *testing.T) {
	ix := BuildIndex([]ledger.Product{{
		Name: "Glue",
		QuantityRestocked: []ledger.RestockEvent{
			{Quantity: "twelve", Time: "2025-01-01"},
			{Quantity: 8, Time: "2025-01-02"},
		},
		QuantitySold: []ledger.SaleEvent{{QuantitySold: "??"}},
	}})
	if got := ix.Restocked("Glue"); got != 8 {
		t.Fatalf("restocked = %v", got)
	}
	if got := ix.MalformedEntries(); got != 2 {
		t.Fatalf("malformed entries = %d, want 2", got)
	}
}

func TestRebuildLeavesPreviousIndexIntact(t *testing.T) {
	before := BuildIndex([]ledger.Product{pen()})
	after := BuildIndex([]ledger.Product{pen(), {Name: "Ink"}})
	if before == after {
		t.Fatal("rebuild must produce a new index value")
	}
	// The old index is still a consistent read for anyone holding it.
	if before.Balance("Pen") != 60 {
		t.Fatal("previous index mutated by rebuild")
	}
	if _, ok := before.FirstRestock("Ink"); ok {
		t.Fatal("previous index must not see later products")
	}
}
