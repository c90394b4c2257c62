package ledger

// EventSeries is an embedded, append-only sequence of dated money events
// inside a parent document. A nil series is the normal state of a new record
// and sums to zero; there is no error path here.
type EventSeries []MoneyEvent

// Sum windows the series on each event's own date and adds the amounts.
// Malformed amounts contribute zero.
func (s EventSeries) Sum(w Window) float64 {
	total, _ := s.SumCount(w)
	return total
}

// SumCount is Sum plus the number of entries whose amount failed coercion,
// for data-quality reporting.
func (s EventSeries) SumCount(w Window) (float64, int) {
	var total float64
	var malformed int
	for _, e := range s {
		if !w.Unbounded() && !w.Contains(e.EventTime()) {
			continue
		}
		f, ok := Coerce(e.Amount)
		if !ok && Defined(e.Amount) {
			malformed++
		}
		total += f
	}
	return total, malformed
}

// RepaymentSeries is cash leaving us: loan repayments we make, interest we
// pay, dividends we pay out. The distinct type keeps a Disbursed liability's
// collections from ever being summed as an outflow.
type RepaymentSeries EventSeries

// Sum windows and adds the repayment amounts.
func (s RepaymentSeries) Sum(w Window) float64 { return EventSeries(s).Sum(w) }

// ProceedsSeries is cash coming in: loan collections, interest and dividends
// received, share issuance proceeds.
type ProceedsSeries EventSeries

// Sum windows and adds the proceeds amounts.
func (s ProceedsSeries) Sum(w Window) float64 { return EventSeries(s).Sum(w) }

// FinancingOutflow is the cash a liability pushed out during the window.
// Only a Received loan repays principal and interest; any other direction,
// including a missing loanType, contributes nothing rather than guessing.
func (l Liability) FinancingOutflow(w Window) float64 {
	if l.LoanType != LoanReceived {
		return 0
	}
	return l.AmountPaid.Sum(w) + l.InterestPaid.Sum(w)
}

// FinancingInflow is the cash a liability brought in during the window.
// Only a Disbursed loan collects on its receivable.
func (l Liability) FinancingInflow(w Window) float64 {
	if l.LoanType != LoanDisbursed {
		return 0
	}
	return l.ReceivedLoan.Sum(w)
}

// OutstandingBalance is the remaining obligation or receivable, reduced by
// the repayment stream that matches the loan's direction.
func (l Liability) OutstandingBalance() float64 {
	principal := Num(l.Amount)
	switch l.LoanType {
	case LoanReceived:
		return principal - EventSeries(l.AmountPaid).Sum(Window{})
	case LoanDisbursed:
		return principal - EventSeries(l.ReceivedLoan).Sum(Window{})
	default:
		return principal
	}
}
