package ledger

import (
	"testing"
	"time"

	_ "github.com/campusledger/campusledger/testing"
)

func TestParseInstantAcceptsCommonShapes(t *testing.T) {
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input any
	}{
		{"rfc3339", "2025-03-14T00:00:00Z"},
		{"date only", "2025-03-14"},
		{"epoch millis", float64(want.UnixMilli())},
		{"epoch seconds", float64(want.Unix())},
		{"server timestamp map", map[string]any{"seconds": float64(want.Unix())}},
		{"time.Time", want},
	}
	for _, tc := range cases {
		got, ok := ParseInstant(tc.input)
		if !ok {
			t.Fatalf("%s: did not parse", tc.name)
		}
		if !got.UTC().Equal(want) {
			t.Fatalf("%s: got %v want %v", tc.name, got.UTC(), want)
		}
	}
}

func TestParseInstantRejectsGarbage(t *testing.T) {
	for _, input := range []any{nil, "", "not a date", map[string]any{"nope": 1}, -5, struct{}{}} {
		if _, ok := ParseInstant(input); ok {
			t.Fatalf("expected %v to be rejected", input)
		}
	}
}

func TestResolveTimeFirstParseWins(t *testing.T) {
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := ResolveTime(nil, "garbage", "2024-06-01", "2020-01-01")
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestResolveTimeFallsBackToNow(t *testing.T) {
	before := time.Now()
	got := ResolveTime(nil, "garbage")
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("fallback %v not within [%v, %v]", got, before, after)
	}
}

func TestAssetDateFieldsResolveIndependently(t *testing.T) {
	a := Asset{
		SoldDate:     "2025-02-10",
		PurchaseDate: "2023-09-01",
	}
	if got := a.SoldTime().Format("2006-01-02"); got != "2025-02-10" {
		t.Fatalf("sold time resolved to %s", got)
	}
	if got := a.PurchaseTime().Format("2006-01-02"); got != "2023-09-01" {
		t.Fatalf("purchase time resolved to %s", got)
	}
}
