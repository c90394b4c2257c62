package ledger

// First-defined-wins field fallbacks. Source systems disagree about which
// value field they populate, so each entity documents one ordered accessor
// list here instead of repeating inline chains at every call site. A field
// that is present but malformed still wins its slot and reads as zero; the
// chain must not fall through past a populated field.

// assetValueProbes is the documented priority order for an asset's carrying
// value.
var assetValueProbes = []func(Asset) any{
	func(a Asset) any { return a.Value },
	func(a Asset) any { return a.Amount },
	func(a Asset) any { return a.PurchasePrice },
	func(a Asset) any { return a.CostPrice },
}

// AssetCarryingValue resolves the asset's value via the fallback chain.
func AssetCarryingValue(a Asset) float64 {
	for _, probe := range assetValueProbes {
		if v := probe(a); Defined(v) {
			return Num(v)
		}
	}
	return 0
}

var liabilityValueProbes = []func(Liability) any{
	func(l Liability) any { return l.Amount },
	func(l Liability) any { return l.Value },
}

// LiabilityCarryingValue resolves the liability's value via the fallback
// chain.
func LiabilityCarryingValue(l Liability) float64 {
	for _, probe := range liabilityValueProbes {
		if v := probe(l); Defined(v) {
			return Num(v)
		}
	}
	return 0
}

// PaymentAmount reads a fee receipt that may carry either a totalAmount or
// only priced line items. Callers never need to know which shape they got.
func PaymentAmount(p Payment) float64 {
	if f, ok := Coerce(p.TotalAmount); ok {
		return f
	}
	var total float64
	for _, item := range p.Items {
		total += Num(item.Amount)
	}
	return total
}

// TaxAmount prefers the explicitly paid amount over the assessed one.
func TaxAmount(t Tax) float64 {
	if Defined(t.PaidAmount) {
		return Num(t.PaidAmount)
	}
	return Num(t.Amount)
}
