package ddm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrRequired is returned by Field.Validate when a required field has no
	// value.
	ErrRequired = errors.New("ddm: value is required")
	// ErrInvalidValue is returned by Field.Validate when a value cannot be
	// represented by the field's data type or options.
	ErrInvalidValue = errors.New("ddm: invalid value")
)

// DateLayouts lists the layouts accepted for date values, tried in order.
var DateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	time.RFC3339,
}

// TypedPredefinedValue converts the raw predefined value to the Go type
// matching the field: bool, int64, float64, time.Time, []string for option
// editors, or string. It returns nil when the value is empty or cannot be
// converted.
func (f Field) TypedPredefinedValue() any {
	raw := strings.TrimSpace(f.PredefinedValue)
	if raw == "" {
		return nil
	}
	value, err := f.Convert(raw)
	if err != nil {
		return nil
	}
	return value
}

// Convert parses a raw string into the field's value type.
func (f Field) Convert(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if f.Editor().HasOptions() {
		return f.convertOptions(raw)
	}

	switch f.DataType {
	case DataTypeBoolean:
		v, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, raw)
		}
		return v, nil
	case DataTypeInteger:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, raw)
		}
		return v, nil
	case DataTypeNumber, DataTypeDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, raw)
		}
		return v, nil
	case DataTypeDate:
		return parseDate(raw)
	default:
		return raw, nil
	}
}

func (f Field) convertOptions(raw string) ([]string, error) {
	keys := splitOptionKeys(raw)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: empty option selection", ErrInvalidValue)
	}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		opt, ok := f.Option(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an option of %s", ErrInvalidValue, key, f.Name)
		}
		out = append(out, opt.Value)
	}
	if !f.Multiple && len(out) > 1 {
		return nil, fmt.Errorf("%w: %s accepts a single option", ErrInvalidValue, f.Name)
	}
	return out, nil
}

// splitOptionKeys accepts the JSON array form (["a","b"]) stored by the
// portal as well as a bare value.
func splitOptionKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			return compact(values)
		}
		raw = strings.Trim(raw, "[]")
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.Trim(strings.TrimSpace(parts[i]), `"`)
		}
		return compact(parts)
	}
	return []string{raw}
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidValue, raw)
}

// Validate checks a submitted value against the field definition. Strings are
// converted with Convert; already typed values are accepted when they match
// the data type.
func (f Field) Validate(value any) error {
	if f.Editor().IsDecorative() {
		return nil
	}
	if isEmptyValue(value) {
		if f.Required {
			return fmt.Errorf("%w: %s", ErrRequired, f.Name)
		}
		return nil
	}

	switch v := value.(type) {
	case string:
		_, err := f.Convert(v)
		return err
	case bool:
		if f.DataType != DataTypeBoolean {
			return fmt.Errorf("%w: %s does not accept booleans", ErrInvalidValue, f.Name)
		}
	case int, int32, int64, float32, float64:
		if !f.DataType.IsNumeric() {
			return fmt.Errorf("%w: %s does not accept numbers", ErrInvalidValue, f.Name)
		}
		if f.DataType == DataTypeInteger {
			if fv, ok := v.(float64); ok && fv != float64(int64(fv)) {
				return fmt.Errorf("%w: %s expects an integer", ErrInvalidValue, f.Name)
			}
		}
	case time.Time:
		if f.DataType != DataTypeDate {
			return fmt.Errorf("%w: %s does not accept dates", ErrInvalidValue, f.Name)
		}
	case []string:
		raw, _ := json.Marshal(v)
		_, err := f.Convert(string(raw))
		return err
	case []any:
		keys := make([]string, 0, len(v))
		for _, item := range v {
			keys = append(keys, fmt.Sprint(item))
		}
		return f.Validate(keys)
	}
	return nil
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
