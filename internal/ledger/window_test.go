package ledger

import (
	"testing"
	"time"

	_ "github.com/campusledger/campusledger/testing"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUnboundedWindowReturnsSameSlice(t *testing.T) {
	records := []Expense{{ID: "a"}, {ID: "b"}}
	got := FilterSlice(records, Window{}, Expense.RecordTime)
	if &got[0] != &records[0] || len(got) != len(records) {
		t.Fatal("unbounded filter must return the input slice unchanged")
	}
}

func TestWindowBoundsAreDayInclusive(t *testing.T) {
	w := NewWindow(day("2025-01-10"), day("2025-01-20"))

	cases := []struct {
		at   time.Time
		want bool
	}{
		{day("2025-01-10"), true},
		{day("2025-01-10").Add(-time.Millisecond), false},
		{day("2025-01-20").Add(23*time.Hour + 59*time.Minute), true},
		{day("2025-01-21"), false},
		{day("2025-01-15"), true},
	}
	for i, tc := range cases {
		if got := w.Contains(tc.at); got != tc.want {
			t.Fatalf("case %d: Contains(%v) = %v, want %v", i, tc.at, got, tc.want)
		}
	}
}

func TestFromNormalizesToStartOfDay(t *testing.T) {
	from := day("2025-01-10").Add(18 * time.Hour)
	w := NewWindow(from, time.Time{})
	if !w.Contains(day("2025-01-10").Add(time.Hour)) {
		t.Fatal("a record earlier the same day as From must pass")
	}
}

func TestHalfOpenWindows(t *testing.T) {
	onlyFrom := NewWindow(day("2025-01-10"), time.Time{})
	if onlyFrom.Contains(day("2025-01-09")) {
		t.Fatal("before From must fail")
	}
	if !onlyFrom.Contains(day("2030-01-01")) {
		t.Fatal("far future must pass with no To bound")
	}

	onlyTo := NewWindow(time.Time{}, day("2025-01-10"))
	if !onlyTo.Contains(day("1999-01-01")) {
		t.Fatal("distant past must pass with no From bound")
	}
	if onlyTo.Contains(day("2025-01-11")) {
		t.Fatal("after To must fail")
	}
}

func TestFilterIsOrderPreservingAndOrderIndependent(t *testing.T) {
	w := NewWindow(day("2025-01-01"), day("2025-12-31"))
	in := []Expense{
		{ID: "jan", Date: "2025-01-05"},
		{ID: "old", Date: "2019-01-05"},
		{ID: "dec", Date: "2025-12-05"},
	}
	got := FilterSlice(in, w, Expense.RecordTime)
	if len(got) != 2 || got[0].ID != "jan" || got[1].ID != "dec" {
		t.Fatalf("unexpected result %+v", got)
	}

	reversed := []Expense{in[2], in[1], in[0]}
	back := FilterSlice(reversed, w, Expense.RecordTime)
	if len(back) != 2 || back[0].ID != "dec" || back[1].ID != "jan" {
		t.Fatalf("filter result depends on input order: %+v", back)
	}
}
