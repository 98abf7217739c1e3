package toml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// encodeStruct writes val's scalar fields as key = value lines, then each
// nested struct field as a [table] section. Table names nest with dots
func encodeStruct(b *strings.Builder, val reflect.Value, table string) error {
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || val.Field(i).Kind() == reflect.Struct {
			continue
		}
		line, err := encodeScalar(val.Field(i), field.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s = %s\n", fieldKey(field), line)
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || val.Field(i).Kind() != reflect.Struct {
			continue
		}
		name := fieldKey(field)
		if table != "" {
			name = table + "." + name
		}
		fmt.Fprintf(b, "\n[%s]\n", name)
		if err := encodeStruct(b, val.Field(i), name); err != nil {
			return err
		}
	}
	return nil
}

func encodeScalar(fv reflect.Value, name string) (string, error) {
	switch fv.Kind() {
	case reflect.String:
		return strconv.Quote(fv.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(fv.Float(), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	}
	return "", fmt.Errorf("toml: unsupported field kind %s for %s", fv.Kind(), name)
}
