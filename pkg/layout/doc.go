// Package layout computes the geometry of pivot table headers.
//
// # Overview
//
// A pivot table has two header trees: the left header (row axis) and the
// top header (column axis). Both arrive flattened as [HeaderItem] values
// carrying depth, offset, span, and the depth of their deepest
// descendant. No tree traversal happens here; every rect is plain
// arithmetic over one item.
//
// # Row Axis Widths
//
// [LeftHeaderWidths] gives every row-axis depth its own width: the wider of
// the bold column title and the widest label at that depth, plus padding
// and room for the expand/collapse toggle, clamped to
// [Metrics.MinHeaderCellWidth] and [Metrics.MaxHeaderCellWidth]. Text is
// measured through a [Measurer]. Only the first [Metrics.MaxRowsToMeasure]
// items are measured, so the cost stays bounded on large tables.
//
// # Rects
//
// [LeftHeaderCellRect] places a row-axis item: it spans its own depth plus
// any deeper depths it covers, and its height grows with the number of leaf
// rows below it. [TopHeaderCellRect] places a column-axis item on a fixed
// grid of [Metrics.CellWidth] by [Metrics.CellHeight], stacking rows upward
// from the data grid.
//
// [Compute] runs both for a complete [Input]:
//
//	h := layout.Compute(layout.DefaultMetrics(), in, measurer)
//	for _, c := range h.Left {
//	    draw(c.Item.Value, c.Rect)
//	}
package layout
