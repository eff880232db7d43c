package layout

// Rect is the bounding box of a header cell. X grows rightward and Y grows
// downward from the top-left corner of the header block.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// sumWidths adds widths[from:to], clamping the bounds to the table.
func sumWidths(widths []float64, from, to int) float64 {
	from = max(from, 0)
	to = min(to, len(widths))
	var sum float64
	for i := from; i < to; i++ {
		sum += widths[i]
	}
	return sum
}

// LeftHeaderCellRect positions a row-axis item. A cell whose deeper levels
// are not rendered separately absorbs their widths; a cell grouping several
// leaf rows grows in height.
func LeftHeaderCellRect(m Metrics, item HeaderItem, widths []float64, depthCount int) Rect {
	columnsToSpan := depthCount - item.Depth - item.MaxDepthBelow
	spanWidth := sumWidths(widths, item.Depth+1, item.Depth+columnsToSpan)

	var own float64
	if item.Depth >= 0 && item.Depth < len(widths) {
		own = widths[item.Depth]
	}

	r := Rect{
		X:      sumWidths(widths, 0, item.Depth),
		Y:      float64(item.Offset) * m.CellHeight,
		Width:  own + spanWidth,
		Height: float64(item.Span) * m.CellHeight,
	}
	if item.Depth == 0 {
		r.Width += m.LeftHeaderLeftSpacing
	} else {
		r.X += m.LeftHeaderLeftSpacing
	}
	return r
}

// TopHeaderCellRect positions a column-axis item. Rows stack upward from
// the bottom of the header block so leaf groups always border the grid.
func TopHeaderCellRect(m Metrics, item HeaderItem, topHeaderRows int) Rect {
	return Rect{
		X:      float64(item.Offset) * m.CellWidth,
		Y:      float64(topHeaderRows-item.MaxDepthBelow-1) * m.CellHeight,
		Width:  float64(item.Span) * m.CellWidth,
		Height: m.CellHeight,
	}
}
