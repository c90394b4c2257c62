package reports

import (
	"github.com/campusledger/campusledger/internal/ledger"
)

// FeeTransaction is one receipt's row in the fees report.
type FeeTransaction struct {
	ID        string  `json:"id"`
	StudentID string  `json:"studentId"`
	Amount    float64 `json:"amount"`
}

// Fees is the fees-paid report.
type Fees struct {
	TotalFeesPaid  float64          `json:"totalFeesPaid"`
	PerTransaction []FeeTransaction `json:"perTransaction"`
}

// BuildFees sums fee receipts over the window. A receipt may carry a numeric
// totalAmount or only priced line items; both shapes are accepted without
// the caller knowing which it got.
func BuildFees(payments []ledger.Payment, w ledger.Window) Fees {
	filtered := ledger.FilterSlice(payments, w, ledger.Payment.RecordTime)
	out := Fees{PerTransaction: make([]FeeTransaction, 0, len(filtered))}
	for _, p := range filtered {
		amount := ledger.PaymentAmount(p)
		out.PerTransaction = append(out.PerTransaction, FeeTransaction{
			ID:        p.ID,
			StudentID: p.StudentID,
			Amount:    amount,
		})
		out.TotalFeesPaid += amount
	}
	return out
}
