package ledger

import "time"

// Window is an inclusive [From, To] date range. A nil bound means unbounded
// on that side. Bounds are interpreted per calendar day: From snaps to the
// start of its day, To to the last millisecond of its own.
type Window struct {
	From *time.Time
	To   *time.Time
}

// NewWindow builds a window from optional bounds; zero times mean unbounded.
func NewWindow(from, to time.Time) Window {
	var w Window
	if !from.IsZero() {
		f := from
		w.From = &f
	}
	if !to.IsZero() {
		t := to
		w.To = &t
	}
	return w
}

// Unbounded reports whether the window has no bounds at all.
func (w Window) Unbounded() bool { return w.From == nil && w.To == nil }

// Contains reports whether t falls inside the normalized window.
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(startOfDay(*w.From)) {
		return false
	}
	if w.To != nil && t.After(endOfDay(*w.To)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FilterSlice returns the elements whose resolved time falls inside the
// window. An unbounded window returns the input slice itself, so callers can
// detect "no filtering occurred" by reference. The predicate looks only at
// one element at a time, so the result is order-preserving and independent
// of input order.
func FilterSlice[T any](items []T, w Window, at func(T) time.Time) []T {
	if w.Unbounded() || items == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if w.Contains(at(item)) {
			out = append(out, item)
		}
	}
	return out
}
