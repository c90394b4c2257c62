package store

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// DecodeDocument unmarshals a stored document body and stamps the row id
// onto the entity's ID field when the body itself does not carry one. The
// row id is authoritative for referential lookups; a body-level id wins only
// because older CRUD clients wrote it there first.
func DecodeDocument[T any](id string, body []byte) (T, error) {
	var doc T
	if len(body) == 0 {
		return doc, fmt.Errorf("empty document body")
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, err
	}
	stampID(&doc, id)
	return doc, nil
}

func stampID(doc any, id string) {
	v := reflect.ValueOf(doc).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	field := v.FieldByName("ID")
	if field.IsValid() && field.Kind() == reflect.String && field.String() == "" && field.CanSet() {
		field.SetString(id)
	}
}
