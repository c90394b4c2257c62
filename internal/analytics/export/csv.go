package export

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/campusledger/campusledger/internal/inventory"
	"github.com/campusledger/campusledger/internal/reports"
)

var amounts = message.NewPrinter(language.English)

func formatAmount(v float64) string {
	return amounts.Sprintf("%.2f", v)
}

// WriteBalanceSheetCSV serialises the balance sheet report.
func WriteBalanceSheetCSV(w io.Writer, bs reports.BalanceSheet) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Section", "Name", "Value"}); err != nil {
		return err
	}
	for _, line := range bs.AssetLines {
		if err := writer.Write([]string{"Asset", line.Name, formatAmount(line.Value)}); err != nil {
			return err
		}
	}
	for _, line := range bs.LiabilityLines {
		if err := writer.Write([]string{"Liability", line.Name, formatAmount(line.Value)}); err != nil {
			return err
		}
	}
	records := [][]string{
		{"Total", "Assets", formatAmount(bs.TotalAssets)},
		{"Total", "Liabilities", formatAmount(bs.TotalLiabilities)},
		{"Total", "Retained Earnings", formatAmount(bs.RetainedEarnings)},
		{"Total", "Equity", formatAmount(bs.Equity)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCashFlowCSV serialises the three-section cash-flow statement.
func WriteCashFlowCSV(w io.Writer, cf reports.CashFlow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Section", "Line", "Amount"}); err != nil {
		return err
	}
	records := [][]string{
		{"Operating", "Revenue", formatAmount(cf.Operating.Revenue)},
		{"Operating", "Operating Expenses", formatAmount(cf.Operating.OperatingExpenses)},
		{"Operating", "Taxes Paid", formatAmount(cf.Operating.TaxesPaid)},
		{"Operating", "Net", formatAmount(cf.Operating.Net)},
		{"Financing", "Share Issuance Proceeds", formatAmount(cf.Financing.ShareIssuanceProceeds)},
		{"Financing", "Loan Collections", formatAmount(cf.Financing.LoanCollections)},
		{"Financing", "Loan Repayments", formatAmount(cf.Financing.LoanRepayments)},
		{"Financing", "Interest Paid", formatAmount(cf.Financing.InterestPaid)},
		{"Financing", "Dividends Paid", formatAmount(cf.Financing.DividendsPaid)},
		{"Financing", "Net", formatAmount(cf.Financing.Net)},
		{"Investing", "Asset Sale Proceeds", formatAmount(cf.Investing.AssetSaleProceeds)},
		{"Investing", "Interest Received", formatAmount(cf.Investing.InterestReceived)},
		{"Investing", "Dividends Received", formatAmount(cf.Investing.DividendsReceived)},
		{"Investing", "Asset Purchases", formatAmount(cf.Investing.AssetPurchases)},
		{"Investing", "Net", formatAmount(cf.Investing.Net)},
		{"", "Net Change", formatAmount(cf.NetChange)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFeesCSV serialises the fees report.
func WriteFeesCSV(w io.Writer, fees reports.Fees) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Receipt", "Student", "Amount"}); err != nil {
		return err
	}
	for _, tx := range fees.PerTransaction {
		if err := writer.Write([]string{tx.ID, tx.StudentID, formatAmount(tx.Amount)}); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{"Total", "", formatAmount(fees.TotalFeesPaid)}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WriteValuationCSV serialises the inventory valuation.
func WriteValuationCSV(w io.Writer, v inventory.Valuation) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Product", "Restocked", "Sold", "Balance", "Value"}); err != nil {
		return err
	}
	for _, line := range v.Lines() {
		record := []string{
			line.Name,
			formatAmount(line.Restocked),
			formatAmount(line.Sold),
			formatAmount(line.Balance),
			formatAmount(line.Value),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{"Total", "", "", "", formatAmount(v.TotalValue)}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WriteReportsCSV emits the three financial reports as one export, separated
// by blank rows.
func WriteReportsCSV(w io.Writer, bs reports.BalanceSheet, cf reports.CashFlow, fees reports.Fees) error {
	if err := WriteBalanceSheetCSV(w, bs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := WriteCashFlowCSV(w, cf); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return WriteFeesCSV(w, fees)
}
