package pivot_test

import (
	"fmt"

	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

func ExampleReconcile() {
	category := pivot.FieldRef{"field", 1, nil}
	vendor := pivot.FieldRef{"field", 2, nil}
	count := pivot.FieldRef{"aggregation", 0}

	stored := pivot.Setting{
		Rows:    []pivot.FieldRef{category},
		Columns: []pivot.FieldRef{vendor},
	}
	cols := []pivot.Column{
		{Name: "category", FieldRef: category, Source: pivot.SourceBreakout},
		{Name: "count", FieldRef: count, Source: pivot.SourceAggregation},
	}

	next := pivot.Reconcile(stored, cols, pivot.DefaultPartitions())
	for _, name := range pivot.Partitions {
		fmt.Println(name, len(next.Get(name)))
	}
	// Output:
	// rows 1
	// columns 0
	// values 1
}

func ExampleCheckRenderable() {
	result := pivot.Result{Cols: []pivot.Column{
		{Name: "count", FieldRef: pivot.FieldRef{"aggregation", 0}, Source: pivot.SourceAggregation},
	}}
	query := &pivot.Query{Database: pivot.StaticDatabase(false)}

	fmt.Println(pivot.IsSensible(result, query))
	fmt.Println(pivot.CheckRenderable(result, pivot.Setting{}, query))
	// Output:
	// false
	// PIVOT_NOT_AGGREGATED: Pivot tables can only be used with aggregated queries.
}
