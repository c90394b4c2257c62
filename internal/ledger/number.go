package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce reads a document field as a float64. The second return reports
// whether the value was usable: nil, malformed strings, NaN and infinities
// all come back as (0, false) so a bad entry contributes zero to a report
// instead of poisoning it.
func Coerce(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Num is Coerce without the validity flag, for call sites that only need
// the zero-on-bad-input behavior.
func Num(v any) float64 {
	f, _ := Coerce(v)
	return f
}

// Defined reports whether a document field is present at all. Coercion
// failures on a present field count as defined; first-defined-wins fallbacks
// must stop at them rather than fall through to a later field.
func Defined(v any) bool {
	return v != nil
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
