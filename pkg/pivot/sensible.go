package pivot

import (
	"github.com/matzehuels/pivotgrid/pkg/errors"
)

// Database exposes the capability the pivot table depends on.
type Database interface {
	SupportsPivots() bool
}

// StaticDatabase is a Database with a fixed capability.
type StaticDatabase bool

// SupportsPivots returns the fixed capability.
func (d StaticDatabase) SupportsPivots() bool { return bool(d) }

// Query is the part of a saved question the pivot table inspects.
// Database is nil when the bound database cannot be resolved.
type Query struct {
	Breakouts []FieldRef
	Database  Database
}

// Result is a query result as seen by the pivot table.
type Result struct {
	Cols []Column `json:"cols"`
}

// DatabaseSupportsPivotTables reports whether q's database can run pivot
// queries. Unknown databases are assumed to support them.
func DatabaseSupportsPivotTables(q *Query) bool {
	if q == nil || q.Database == nil {
		return true
	}
	return q.Database.SupportsPivots()
}

// IsSensible reports whether result can be shown as a pivot table.
func IsSensible(result Result, q *Query) bool {
	return aggregated(result.Cols) && DatabaseSupportsPivotTables(q)
}

// CheckRenderable returns the user-facing reason result cannot be rendered
// as a pivot table, or nil. The aggregation check wins over the database
// check when both fail.
func CheckRenderable(result Result, settings Setting, q *Query) error {
	if !aggregated(result.Cols) {
		return errors.New(errors.ErrCodeNotAggregated, errors.MsgNotAggregated)
	}
	if !DatabaseSupportsPivotTables(q) {
		return errors.New(errors.ErrCodeDatabaseUnsupported, errors.MsgDatabaseUnsupported)
	}
	return nil
}

func aggregated(cols []Column) bool {
	if len(cols) < 2 {
		return false
	}
	for _, c := range cols {
		if !IsColumnValid(c) {
			return false
		}
	}
	return true
}
