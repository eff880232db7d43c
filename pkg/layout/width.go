package layout

import "math"

// WidthTable holds one width per row-axis depth and their sum.
type WidthTable struct {
	Widths []float64 `json:"widths"`
	Total  float64   `json:"total"`
}

// depthValues collects the measured labels of one depth.
type depthValues struct {
	values      []string
	hasSubtotal bool
}

// valuesByDepth groups the labels of the first limit items by depth,
// skipping totals. A non-positive limit scans every item.
func valuesByDepth(items []HeaderItem, limit int) map[int]*depthValues {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	groups := make(map[int]*depthValues)
	for _, it := range items {
		if it.IsTotal() {
			continue
		}
		g, ok := groups[it.Depth]
		if !ok {
			g = &depthValues{}
			groups[it.Depth] = g
		}
		g.values = append(g.values, it.Value)
		if it.HasSubtotal {
			g.hasSubtotal = true
		}
	}
	return groups
}

// LeftHeaderWidths sizes each row-axis depth to fit its title and labels.
//
// rowIndexes lists, outermost first, the result-set column index of every
// row-axis level; title resolves such an index to the column header. Only
// the first m.MaxRowsToMeasure items are measured.
//
// The toggle allowance for a depth is chosen by the subtotal flag of the
// group at the depth's result-set index, while the labels come from the
// group at the depth itself. The two coincide when row columns lead the
// result set.
func LeftHeaderWidths(m Metrics, rowIndexes []int, title func(int) string, items []HeaderItem, family string, measure Measurer) WidthTable {
	groups := valuesByDepth(items, m.MaxRowsToMeasure)
	bold := TextStyle{Weight: WeightBold, Family: family, Size: m.FontSize}
	normal := TextStyle{Weight: WeightNormal, Family: family, Size: m.FontSize}

	table := WidthTable{Widths: make([]float64, len(rowIndexes))}
	for depth, rowIndex := range rowIndexes {
		var label string
		if title != nil {
			label = title(rowIndex)
		}
		headerWidth := math.Ceil(measure.Measure(label, bold) + m.RowToggleIconWidth)

		var icon float64
		if g, ok := groups[rowIndex]; ok && g.hasSubtotal {
			icon = m.RowToggleIconWidth
		}
		var cellWidth float64
		if g, ok := groups[depth]; ok {
			for _, v := range g.values {
				cellWidth = math.Max(cellWidth, measure.Measure(v, normal)+icon)
			}
		}
		cellWidth = math.Ceil(cellWidth)

		w := m.clampWidth(math.Max(headerWidth, cellWidth) + m.CellPadding)
		table.Widths[depth] = w
		table.Total += w
	}
	return table
}
