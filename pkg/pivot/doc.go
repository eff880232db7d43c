// Package pivot holds the data model of a pivot table and keeps stored
// settings consistent with the query they describe.
//
// # Overview
//
// A pivot table assigns every column of an aggregated query to one of three
// partitions: rows, columns, or values. The assignment is stored as a
// [Setting] and outlives the query result it was made for. When the query
// changes, [Reconcile] removes refs whose column is gone and places new
// columns into the first [PartitionDescriptor] that accepts them, keeping
// the order the user chose for everything else.
//
// # Field Identity
//
// Columns are matched by [FieldRef], a nested value compared structurally
// through its canonical encoding ([FieldRef.Key]). Two refs decoded from
// separate JSON documents are equal when their contents are.
//
// # Render Checks
//
// [IsSensible] is the cheap boolean gate used when choosing a
// visualization. [CheckRenderable] performs the same checks but returns a
// coded error ([errors.ErrCodeNotAggregated] or
// [errors.ErrCodeDatabaseUnsupported]) suitable for display. Layout code
// assumes these checks already passed.
//
// # Usage
//
//	next := pivot.Reconcile(stored, result.Cols, pivot.DefaultPartitions())
//	if err := pivot.CheckRenderable(result, next, query); err != nil {
//	    return err
//	}
package pivot
