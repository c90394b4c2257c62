package ledger

import (
	"time"
)

// Document timestamps arrive in whatever shape the writing client produced:
// RFC3339 strings, bare dates, epoch seconds or millis, or document-store
// server timestamps decoded as {seconds, nanos} maps. ParseInstant accepts
// all of them; ResolveTime walks an ordered candidate list and falls back to
// "now" so an undated record is never dropped from an unbounded query. The
// fallback is part of the contract: unresolved dates sort as most recent and
// fail any window that ends in the past.

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	time.RFC1123,
}

// epochMillisCutoff separates epoch-seconds from epoch-millis values; any
// number at or above it is read as milliseconds.
const epochMillisCutoff = 1e11

// ParseInstant extracts a point in time from a raw document field.
func ParseInstant(v any) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val, true
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case string:
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case map[string]any:
		// Server timestamp decoded from JSON: {seconds, nanos?}.
		secs, ok := Coerce(val["seconds"])
		if !ok {
			secs, ok = Coerce(val["_seconds"])
		}
		if !ok {
			return time.Time{}, false
		}
		nanos := Num(val["nanos"]) + Num(val["_nanoseconds"])
		return time.Unix(int64(secs), int64(nanos)), true
	default:
		f, ok := Coerce(v)
		if !ok || f <= 0 {
			return time.Time{}, false
		}
		if f >= epochMillisCutoff {
			return time.UnixMilli(int64(f)), true
		}
		return time.Unix(int64(f), 0), true
	}
}

// ResolveTime returns the first candidate that parses to a valid instant,
// or time.Now() when none do.
func ResolveTime(candidates ...any) time.Time {
	for _, c := range candidates {
		if t, ok := ParseInstant(c); ok {
			return t
		}
	}
	return time.Now()
}

// Per-entity probe order. These are the documented field priority lists;
// every report path resolves a record's time through exactly one of them.

// EventTime resolves a money event's instant from its date field.
func (e MoneyEvent) EventTime() time.Time { return ResolveTime(e.Date) }

// EventTime resolves a sale event's instant.
func (e SaleEvent) EventTime() time.Time {
	return ResolveTime(e.Timestamp, e.CreatedAt, e.Date)
}

// EventTime resolves a restock event's instant.
func (e RestockEvent) EventTime() time.Time { return ResolveTime(e.Time, e.Date) }

// RecordTime resolves a payment's instant.
func (p Payment) RecordTime() time.Time {
	return ResolveTime(p.Timestamp, p.CreatedAt, p.Date)
}

// RecordTime resolves an expense's instant.
func (e Expense) RecordTime() time.Time { return ResolveTime(e.Date, e.Timestamp) }

// RecordTime resolves a tax record's instant.
func (t Tax) RecordTime() time.Time { return ResolveTime(t.Date, t.Timestamp) }

// RecordTime resolves a purchase's instant.
func (p Purchase) RecordTime() time.Time { return ResolveTime(p.Date, p.Timestamp) }

// RecordTime resolves a sale's instant.
func (s Sale) RecordTime() time.Time { return ResolveTime(s.Date, s.Timestamp) }

// RecordTime resolves a liability's instant.
func (l Liability) RecordTime() time.Time { return ResolveTime(l.Date) }

// RecordTime resolves a share record's instant.
func (s Share) RecordTime() time.Time { return ResolveTime(s.Date) }

// SoldTime resolves the disposal date of an asset. Investing-section math
// must window sales on this field, never on the purchase date.
func (a Asset) SoldTime() time.Time { return ResolveTime(a.SoldDate) }

// PurchaseTime resolves the acquisition date of an asset.
func (a Asset) PurchaseTime() time.Time { return ResolveTime(a.PurchaseDate) }
