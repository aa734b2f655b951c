// Package docfield reads typed values out of schema-less document fields.
// Documents round-trip through JSON in the postgres adapter, so numeric
// fields may arrive as float64 and nested structures as []any / map[string]any
// regardless of how they were written.
package docfield

import (
	"time"

	"canteen/internal/pkg/errs"
)

// String reads a required string field.
func String(fields map[string]any, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", errs.NewValueIsRequiredError(name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errs.NewValueIsInvalidError(name)
	}
	return s, nil
}

// Float reads a required numeric field, accepting the integer and float
// representations JSON decoding can produce.
func Float(fields map[string]any, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, errs.NewValueIsRequiredError(name)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errs.NewValueIsInvalidError(name)
	}
}

// Int reads a required numeric field and truncates it to int.
func Int(fields map[string]any, name string) (int, error) {
	f, err := Float(fields, name)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Time reads a required timestamp field stored either as time.Time or as an
// RFC 3339 string.
func Time(fields map[string]any, name string) (time.Time, error) {
	raw, ok := fields[name]
	if !ok {
		return time.Time{}, errs.NewValueIsRequiredError(name)
	}
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		return t, nil
	default:
		return time.Time{}, errs.NewValueIsInvalidError(name)
	}
}

// FormatTime renders a timestamp the way every repository stores it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
