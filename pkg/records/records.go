// Package records defines the loosely typed row passed from the extract
// stage into the transform stage. A Record is a bag of column values keyed
// by canonical column name; values are whatever the source produced
// (strings for CSV, but numbers are tolerated for other sources).
package records

import (
	"fmt"
	"strconv"
	"time"
)

type Record map[string]any

// Has reports whether the field is present with a non-nil, non-empty value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

// String returns the field rendered as a string. Missing and nil values
// render as "".
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// Float parses the field as a float64. JSON-decoded numbers arrive as
// float64 already; CSV cells arrive as strings.
func (r Record) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, fmt.Errorf("field %q missing", field)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %q not a number", field, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q: type %T not numeric", field, v)
	}
}
