package inventory

import (
	"reflect"
	"strconv"
	"strings"
)

// Matches reports whether the keyword occurs, case-insensitively, anywhere
// in the record: plain string fields, elements of slices and maps, and
// fields of nested structs are all searched. An empty keyword matches
// everything.
func Matches(record any, keyword string) bool {
	keyword = strings.TrimSpace(strings.ToLower(keyword))
	if keyword == "" {
		return true
	}
	return contains(reflect.ValueOf(record), keyword, 0)
}

// maxDepth caps the walk; document snapshots are shallow and a cycle through
// an interface chain should not hang a report request.
const maxDepth = 8

func contains(v reflect.Value, keyword string, depth int) bool {
	if depth > maxDepth || !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return contains(v.Elem(), keyword, depth+1)
	case reflect.String:
		return strings.Contains(strings.ToLower(v.String()), keyword)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if contains(v.Index(i), keyword, depth+1) {
				return true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if contains(iter.Key(), keyword, depth+1) || contains(iter.Value(), keyword, depth+1) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if contains(v.Field(i), keyword, depth+1) {
				return true
			}
		}
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'f', -1, 64)
		return strings.Contains(s, keyword)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strings.Contains(strconv.FormatInt(v.Int(), 10), keyword)
	}
	return false
}
