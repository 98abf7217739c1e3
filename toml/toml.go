// Package toml implements the small TOML subset the preferences file uses:
// comments, [table] headers, and scalar key = value pairs (strings, integers,
// floats, booleans). Decoding targets structs through `toml` field tags.
package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses TOML data into the value pointed to by v
func Unmarshal(data []byte, v any) error {
	parsed, err := parse(data)
	if err != nil {
		return err
	}
	return decode(parsed, v)
}

// Marshal renders v as TOML. Struct fields become keys; nested structs
// become tables. Field names come from `toml` tags, falling back to the
// lowercased field name
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("toml: marshal of nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("toml: marshal target must be a struct, got %s", val.Kind())
	}

	var b strings.Builder
	if err := encodeStruct(&b, val, ""); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// fieldKey resolves the TOML key for a struct field
func fieldKey(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("toml"); ok && tag != "" {
		return strings.Split(tag, ",")[0]
	}
	return strings.ToLower(f.Name)
}
