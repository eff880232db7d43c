package layout_test

import (
	"fmt"

	"github.com/matzehuels/pivotgrid/pkg/layout"
)

// fixedWidth measures every character as 7 pixels.
var fixedWidth = layout.MeasureFunc(func(text string, _ layout.TextStyle) float64 {
	return float64(len(text)) * 7
})

func ExampleLeftHeaderWidths() {
	items := []layout.HeaderItem{
		{Value: "Doohickey", Depth: 0},
		{Value: "Gizmo", Depth: 0},
	}
	title := func(int) string { return "Category" }

	table := layout.LeftHeaderWidths(layout.DefaultMetrics(), []int{0}, title, items, "Lato", fixedWidth)
	fmt.Println(table.Widths, table.Total)
	// Output:
	// [92] 92
}

func ExampleLeftHeaderCellRect() {
	m := layout.DefaultMetrics()
	widths := []float64{50, 80}

	outer := layout.LeftHeaderCellRect(m, layout.HeaderItem{Depth: 0, Span: 2, MaxDepthBelow: 1}, widths, 2)
	inner := layout.LeftHeaderCellRect(m, layout.HeaderItem{Depth: 1, Offset: 1, Span: 1}, widths, 2)

	fmt.Printf("%+v\n", outer)
	fmt.Printf("%+v\n", inner)
	// Output:
	// {X:0 Y:0 Width:74 Height:48}
	// {X:74 Y:24 Width:80 Height:24}
}

func ExampleTopHeaderCellRect() {
	m := layout.DefaultMetrics()
	rows := layout.TopHeaderRows(1, 2)

	group := layout.TopHeaderCellRect(m, layout.HeaderItem{Offset: 0, Span: 2, MaxDepthBelow: 1}, rows)
	leaf := layout.TopHeaderCellRect(m, layout.HeaderItem{Depth: 1, Offset: 1, Span: 1}, rows)

	fmt.Printf("%+v\n", group)
	fmt.Printf("%+v\n", leaf)
	// Output:
	// {X:0 Y:0 Width:200 Height:24}
	// {X:100 Y:24 Width:100 Height:24}
}
