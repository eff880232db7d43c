package pivot

import (
	"encoding/json"
)

// Source tags where a result-set column came from.
type Source string

const (
	SourceAggregation Source = "aggregation"
	SourceBreakout    Source = "breakout"
	SourceNative      Source = "native"
)

// PivotGroupingName is the name of the synthetic column the pivot query
// adds to tag subtotal rows.
const PivotGroupingName = "pivot-grouping"

// FieldRef is the structural identity of a column: a nested, order-sensitive
// value such as ["field", 12, {"base-type": "type/Integer"}].
//
// Two refs are the same field when their canonical encodings match; Go
// slice or map identity plays no part.
type FieldRef []any

// Key returns the canonical encoding of r. Slices keep their order, map keys
// are sorted, and scalar types are preserved, so 1 and "1" differ.
func (r FieldRef) Key() string {
	if r == nil {
		return "null"
	}
	data, err := json.Marshal([]any(r))
	if err != nil {
		// Values outside the JSON model cannot come from a result set.
		return "!" + err.Error()
	}
	return string(data)
}

// Equal reports whether r and other name the same field.
func (r FieldRef) Equal(other FieldRef) bool { return r.Key() == other.Key() }

// Clone returns a deep copy of r.
func (r FieldRef) Clone() FieldRef {
	if r == nil {
		return nil
	}
	return FieldRef(cloneValue([]any(r)).([]any))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case FieldRef:
		return cloneValue([]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Column describes one field of a query result.
type Column struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	FieldRef    FieldRef `json:"field_ref"`
	Source      Source   `json:"source,omitempty"`
}

// Title returns the label shown in the header for c.
func (c Column) Title() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// IsPivotGroupColumn reports whether c is the synthetic grouping column.
func IsPivotGroupColumn(c Column) bool { return c.Name == PivotGroupingName }

// IsDimension reports whether c groups rather than measures.
func IsDimension(c Column) bool { return c.Source != SourceAggregation && !IsPivotGroupColumn(c) }

// IsMetric reports whether c is an aggregated measure.
func IsMetric(c Column) bool { return c.Source == SourceAggregation }

// IsColumnValid reports whether c may appear in a pivoted result set.
func IsColumnValid(c Column) bool {
	return c.Source == SourceAggregation || c.Source == SourceBreakout || IsPivotGroupColumn(c)
}

// IsFormattablePivotColumn reports whether per-column number formatting
// applies to c.
func IsFormattablePivotColumn(c Column) bool { return c.Source == SourceAggregation }
