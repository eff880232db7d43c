package layout

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func itemsFrom(values []string, depths int) []HeaderItem {
	items := make([]HeaderItem, len(values))
	for i, v := range values {
		items[i] = HeaderItem{Value: v, Depth: i % depths, HasSubtotal: i%5 == 0}
	}
	return items
}

func TestProperty_LeftHeaderWidths(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	m := DefaultMetrics()

	properties.Property("every width lies within the header bounds", prop.ForAll(
		func(title string, values []string, depths int) bool {
			rowIndexes := make([]int, depths)
			for i := range rowIndexes {
				rowIndexes[i] = i
			}
			table := LeftHeaderWidths(m, rowIndexes, titles(title), itemsFrom(values, depths), "", charMeasurer)
			var total float64
			for _, w := range table.Widths {
				if w < m.MinHeaderCellWidth || w > m.MaxHeaderCellWidth {
					return false
				}
				total += w
			}
			return total == table.Total
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(1, 4),
	))

	properties.Property("items past the scan cap do not change widths", prop.ForAll(
		func(values, extra []string) bool {
			capped := m
			capped.MaxRowsToMeasure = 10
			for len(values) < capped.MaxRowsToMeasure {
				values = append(values, "")
			}
			values = values[:capped.MaxRowsToMeasure]

			rowIndexes := []int{0, 1}
			base := LeftHeaderWidths(capped, rowIndexes, titles("a", "b"), itemsFrom(values, 2), "", charMeasurer)
			more := LeftHeaderWidths(capped, rowIndexes, titles("a", "b"), itemsFrom(append(values, extra...), 2), "", charMeasurer)
			for i := range base.Widths {
				if base.Widths[i] != more.Widths[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
