package layout

// Input describes both header axes of one pivot table.
type Input struct {
	// RowIndexes lists the result-set column index of each row-axis level,
	// outermost first.
	RowIndexes []int `json:"row_indexes"`
	// ColumnTitles holds the header title of every result-set column.
	ColumnTitles []string     `json:"column_titles"`
	LeftItems    []HeaderItem `json:"left_items"`
	TopItems     []HeaderItem `json:"top_items"`
	// ColumnCount is the number of column-axis levels.
	ColumnCount int `json:"column_count"`
	// ValueCount is the number of measures shown per column.
	ValueCount int    `json:"value_count"`
	FontFamily string `json:"font_family,omitempty"`
}

// Title returns the header title of result-set column i.
func (in Input) Title(i int) string {
	if i < 0 || i >= len(in.ColumnTitles) {
		return ""
	}
	return in.ColumnTitles[i]
}

// Cell pairs a header item with its computed rect.
type Cell struct {
	Item HeaderItem `json:"item"`
	Rect Rect       `json:"rect"`
}

// Header is the computed geometry of both header axes.
type Header struct {
	Widths        WidthTable `json:"widths"`
	Left          []Cell     `json:"left"`
	Top           []Cell     `json:"top"`
	TopHeaderRows int        `json:"top_header_rows"`
	// LeftWidth is the width of the row header block including its
	// leading spacing; zero without row levels.
	LeftWidth float64 `json:"left_width"`
	// TopHeight is the height of the column header block.
	TopHeight float64 `json:"top_height"`
}

// TopHeaderRows returns how many rows the column header needs: one per
// column level plus a row of measure titles when several measures are
// shown, and never fewer than one.
func TopHeaderRows(columnCount, valueCount int) int {
	rows := columnCount
	if valueCount > 1 {
		rows++
	}
	if rows == 0 {
		return 1
	}
	return rows
}

// Compute measures the row axis and positions every item of both axes.
func Compute(m Metrics, in Input, measure Measurer) Header {
	widths := LeftHeaderWidths(m, in.RowIndexes, in.Title, in.LeftItems, in.FontFamily, measure)
	rows := TopHeaderRows(in.ColumnCount, in.ValueCount)

	h := Header{
		Widths:        widths,
		Left:          make([]Cell, len(in.LeftItems)),
		Top:           make([]Cell, len(in.TopItems)),
		TopHeaderRows: rows,
		TopHeight:     float64(rows) * m.CellHeight,
	}
	if len(in.RowIndexes) > 0 {
		h.LeftWidth = widths.Total + m.LeftHeaderLeftSpacing
	}
	for i, it := range in.LeftItems {
		h.Left[i] = Cell{Item: it, Rect: LeftHeaderCellRect(m, it, widths.Widths, len(in.RowIndexes))}
	}
	for i, it := range in.TopItems {
		h.Top[i] = Cell{Item: it, Rect: TopHeaderCellRect(m, it, rows)}
	}
	return h
}
