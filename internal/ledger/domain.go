package ledger

// Entities in this package mirror the documents the operations app keeps in
// its remote document store. The CRUD layer writes them with whatever fields
// the form at hand populated, so amounts can arrive as numbers or strings and
// timestamps as ISO strings, epoch millis, or {seconds,nanos} objects. Fields
// with that kind of variance are typed `any` and coerced at the aggregation
// boundary; the engine never mutates a snapshot it is handed.

// MoneyEvent is one entry of an embedded, append-only event series such as a
// loan repayment or an interest receipt.
type MoneyEvent struct {
	Amount any `json:"amount"`
	Date   any `json:"date"`
}

// SaleEvent records quantity sold for a product. The timestamp field name
// varies across writer versions, so all candidates are carried.
type SaleEvent struct {
	QuantitySold any `json:"quantitySold"`
	Timestamp    any `json:"timestamp"`
	CreatedAt    any `json:"createdAt"`
	Date         any `json:"date"`
}

// RestockEvent records inbound product quantity.
type RestockEvent struct {
	Quantity any `json:"quantity"`
	Time     any `json:"time"`
	Date     any `json:"date"`
}

// Product is an inventory item with its embedded movement history.
type Product struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	Supplier          string         `json:"supplier"`
	CostPrice         any            `json:"costPrice"`
	Price             any            `json:"price"`
	QuantitySold      []SaleEvent    `json:"quantitySold"`
	QuantityRestocked []RestockEvent `json:"quantityRestocked"`
}

// AssetStatus enumerates the lifecycle states an asset document reports.
type AssetStatus string

const (
	AssetStatusActive AssetStatus = "active"
	AssetStatusSold   AssetStatus = "sold"
)

// Asset is a purchased holding; which value field is populated depends on the
// source system that created the document.
type Asset struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Status           AssetStatus    `json:"status"`
	Value            any            `json:"value"`
	Amount           any            `json:"amount"`
	PurchasePrice    any            `json:"purchasePrice"`
	CostPrice        any            `json:"costPrice"`
	SalvageValue     any            `json:"salvageValue"`
	MarketValue      any            `json:"marketValue"`
	SoldPrice        any            `json:"soldPrice"`
	SoldDate         any            `json:"soldDate"`
	PurchaseDate     any            `json:"purchaseDate"`
	InterestReceived ProceedsSeries `json:"interestReceived"`
	DividendReceived ProceedsSeries `json:"dividendReceived"`
}

// LoanType tells which direction a liability's cash flows run.
type LoanType string

const (
	// LoanDisbursed means we lent money out; receivedLoan entries are
	// collections that reduce the receivable.
	LoanDisbursed LoanType = "Disbursed"
	// LoanReceived means we borrowed; amountPaid entries are repayments
	// that reduce the obligation.
	LoanReceived LoanType = "Received"
)

// Liability is a loan document. The two directions must never be conflated:
// a Received liability pays out through AmountPaid/InterestPaid, a Disbursed
// one collects through ReceivedLoan/ReceivedInterest.
type Liability struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	LoanType         LoanType        `json:"loanType"`
	Status           string          `json:"status"`
	Amount           any             `json:"amount"`
	Value            any             `json:"value"`
	Date             any             `json:"date"`
	AmountPaid       RepaymentSeries `json:"amountPaid"`
	InterestPaid     RepaymentSeries `json:"interestPaid"`
	ReceivedLoan     ProceedsSeries  `json:"receivedLoan"`
	ReceivedInterest ProceedsSeries  `json:"receivedInterest"`
}

// Share is an equity position with its payout and issuance history.
type Share struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	NumberOfShares        any             `json:"numberOfShares"`
	SharePrice            any             `json:"sharePrice"`
	AmountPaid            RepaymentSeries `json:"amountPaid"`
	ShareIssuanceProceeds ProceedsSeries  `json:"shareIssuanceProceeds"`
	DividendsReceived     ProceedsSeries  `json:"dividendsReceived"`
	Date                  any             `json:"date"`
}

// LineItem is one billed item on a fee receipt. Writers disagree on the name
// field, so both are carried.
type LineItem struct {
	Type     string `json:"type"`
	ItemName string `json:"itemName"`
	Amount   any    `json:"amount"`
}

// Payment is a fee receipt. TotalAmount may be absent, in which case the
// line items carry the value.
type Payment struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"studentId"`
	TotalAmount any        `json:"totalAmount"`
	Items       []LineItem `json:"items"`
	Timestamp   any        `json:"timestamp"`
	CreatedAt   any        `json:"createdAt"`
	Date        any        `json:"date"`
}

// Expense is a flat outgoing record.
type Expense struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Amount    any    `json:"amount"`
	Date      any    `json:"date"`
	Timestamp any    `json:"timestamp"`
}

// Tax is a flat tax payment record.
type Tax struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PaidAmount any    `json:"paidAmount"`
	Amount     any    `json:"amount"`
	Date       any    `json:"date"`
	Timestamp  any    `json:"timestamp"`
}

// Purchase is a flat procurement record.
type Purchase struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    any    `json:"amount"`
	Date      any    `json:"date"`
	Timestamp any    `json:"timestamp"`
}

// SaleLine is one product line on a sale. Amount is the line revenue;
// CostPrice stores the extended cost for the line as written by the source
// system, not a unit cost.
type SaleLine struct {
	Name      string `json:"name"`
	Amount    any    `json:"Amount"`
	CostPrice any    `json:"costPrice"`
}

// Sale is a point-of-sale transaction.
type Sale struct {
	ID          string     `json:"id"`
	Date        any        `json:"date"`
	Timestamp   any        `json:"timestamp"`
	TotalAmount any        `json:"totalAmount"`
	Products    []SaleLine `json:"products"`
}

// Snapshot is the fully loaded point-in-time view of every collection the
// engine aggregates over. The data-access layer materializes it; the engine
// only reads it.
type Snapshot struct {
	Products    []Product   `json:"products"`
	Assets      []Asset     `json:"assets"`
	Liabilities []Liability `json:"liabilities"`
	Shares      []Share     `json:"shares"`
	Payments    []Payment   `json:"payments"`
	Expenses    []Expense   `json:"expenses"`
	Taxes       []Tax       `json:"taxes"`
	Purchases   []Purchase  `json:"purchases"`
	Sales       []Sale      `json:"sales"`
}
