package toml

import (
	"fmt"
	"reflect"
)

// decode maps parsed data onto a struct pointer using `toml` tags
func decode(data map[string]any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("toml: decode target must be a non-nil pointer")
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("toml: decode target must point to a struct, got %s", elem.Kind())
	}
	return decodeStruct(data, elem)
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		raw, ok := data[fieldKey(field)]
		if !ok {
			continue
		}

		fv := val.Field(i)
		if fv.Kind() == reflect.Struct {
			sub, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("toml: field %s expects a table, got %T", field.Name, raw)
			}
			if err := decodeStruct(sub, fv); err != nil {
				return err
			}
			continue
		}

		if err := setScalar(fv, raw, field.Name); err != nil {
			return err
		}
	}
	return nil
}

func setScalar(fv reflect.Value, raw any, name string) error {
	switch fv.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return typeError(name, "string", raw)
		}
		fv.SetString(s)

	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return typeError(name, "bool", raw)
		}
		fv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := raw.(int64)
		if !ok {
			return typeError(name, "integer", raw)
		}
		fv.SetInt(n)

	case reflect.Float32, reflect.Float64:
		switch v := raw.(type) {
		case float64:
			fv.SetFloat(v)
		case int64:
			fv.SetFloat(float64(v))
		default:
			return typeError(name, "float", raw)
		}

	default:
		return fmt.Errorf("toml: unsupported field kind %s for %s", fv.Kind(), name)
	}
	return nil
}

func typeError(name, want string, raw any) error {
	return fmt.Errorf("toml: field %s expects %s, got %T", name, want, raw)
}
