package document

import (
	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/layout"
	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

// Query is the serializable part of a saved question.
type Query struct {
	Breakouts []pivot.FieldRef `json:"breakouts,omitempty"`
	// DatabaseSupportsPivots is nil when the database is unknown.
	DatabaseSupportsPivots *bool `json:"database_supports_pivots,omitempty"`
}

// Pivot converts q to the query the pivot package inspects.
func (q *Query) Pivot() *pivot.Query {
	if q == nil {
		return nil
	}
	out := &pivot.Query{Breakouts: q.Breakouts}
	if q.DatabaseSupportsPivots != nil {
		out.Database = pivot.StaticDatabase(*q.DatabaseSupportsPivots)
	}
	return out
}

// ReconcileRequest asks to bring a stored setting in line with the current
// result columns.
type ReconcileRequest struct {
	Setting pivot.Setting  `json:"setting"`
	Columns []pivot.Column `json:"columns"`
	Query   *Query         `json:"query,omitempty"`
}

// Validate reports structural problems with r.
func (r ReconcileRequest) Validate() error {
	return validateColumns(r.Columns)
}

// CheckRequest asks whether a result can be shown as a pivot table.
type CheckRequest struct {
	Columns                []pivot.Column `json:"columns"`
	Setting                pivot.Setting  `json:"setting"`
	DatabaseSupportsPivots *bool          `json:"database_supports_pivots,omitempty"`
}

// Result returns the query result described by r.
func (r CheckRequest) Result() pivot.Result {
	return pivot.Result{Cols: r.Columns}
}

// Query returns the query described by r.
func (r CheckRequest) Query() *pivot.Query {
	return (&Query{DatabaseSupportsPivots: r.DatabaseSupportsPivots}).Pivot()
}

// CheckResponse reports the outcome of a render check. Code and Message
// are empty when the result can be rendered.
type CheckResponse struct {
	Renderable bool        `json:"renderable"`
	Code       errors.Code `json:"code,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// LayoutRequest describes both header axes to lay out.
type LayoutRequest struct {
	RowIndexes   []int               `json:"row_indexes"`
	ColumnTitles []string            `json:"column_titles"`
	LeftItems    []layout.HeaderItem `json:"left_items"`
	TopItems     []layout.HeaderItem `json:"top_items"`
	ColumnCount  int                 `json:"column_count"`
	ValueCount   int                 `json:"value_count"`
	FontFamily   string              `json:"font_family,omitempty"`
}

// Input converts r to the layout engine's input.
func (r LayoutRequest) Input() layout.Input {
	return layout.Input{
		RowIndexes:   r.RowIndexes,
		ColumnTitles: r.ColumnTitles,
		LeftItems:    r.LeftItems,
		TopItems:     r.TopItems,
		ColumnCount:  r.ColumnCount,
		ValueCount:   r.ValueCount,
		FontFamily:   r.FontFamily,
	}
}

// Validate reports structural problems with r. Out-of-range row indexes
// are allowed and measure as an empty title.
func (r LayoutRequest) Validate() error {
	if r.ColumnCount < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "column_count must not be negative")
	}
	if r.ValueCount < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "value_count must not be negative")
	}
	if err := validateItems("left_items", r.LeftItems); err != nil {
		return err
	}
	return validateItems("top_items", r.TopItems)
}

func validateItems(field string, items []layout.HeaderItem) error {
	for i, it := range items {
		if it.Depth < 0 || it.Offset < 0 || it.Span < 0 || it.MaxDepthBelow < 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"%s[%d]: depth, offset, span and max_depth_below must not be negative", field, i)
		}
	}
	return nil
}

func validateColumns(cols []pivot.Column) error {
	for i, c := range cols {
		if c.FieldRef == nil {
			return errors.New(errors.ErrCodeInvalidInput, "columns[%d] (%s): missing field_ref", i, c.Name)
		}
	}
	return nil
}

// LayoutResponse is the computed header geometry.
type LayoutResponse struct {
	layout.Header
	Cached bool `json:"cached"`
}
