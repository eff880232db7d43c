package layout

// Default sizes, in pixels, used by [DefaultMetrics].
const (
	DefaultCellWidth             = 100.0
	DefaultCellHeight            = 24.0
	DefaultMinHeaderCellWidth    = 50.0
	DefaultMaxHeaderCellWidth    = 300.0
	DefaultRowToggleIconWidth    = 28.0
	DefaultCellPadding           = 8.0
	DefaultLeftHeaderLeftSpacing = 24.0
	DefaultFontSize              = 12.0

	// DefaultMaxRowsToMeasure caps how many left header items are measured.
	// Widths taken from this sample stand for the whole column.
	DefaultMaxRowsToMeasure = 100
)

// Metrics holds the fixed sizes the header layout is built from.
type Metrics struct {
	CellWidth             float64 `toml:"cell_width" json:"cell_width"`
	CellHeight            float64 `toml:"cell_height" json:"cell_height"`
	MinHeaderCellWidth    float64 `toml:"min_header_cell_width" json:"min_header_cell_width"`
	MaxHeaderCellWidth    float64 `toml:"max_header_cell_width" json:"max_header_cell_width"`
	RowToggleIconWidth    float64 `toml:"row_toggle_icon_width" json:"row_toggle_icon_width"`
	CellPadding           float64 `toml:"cell_padding" json:"cell_padding"`
	LeftHeaderLeftSpacing float64 `toml:"left_header_left_spacing" json:"left_header_left_spacing"`
	FontSize              float64 `toml:"font_size" json:"font_size"`
	MaxRowsToMeasure      int     `toml:"max_rows_to_measure" json:"max_rows_to_measure"`
}

// DefaultMetrics returns the standard pivot table sizes.
func DefaultMetrics() Metrics {
	return Metrics{
		CellWidth:             DefaultCellWidth,
		CellHeight:            DefaultCellHeight,
		MinHeaderCellWidth:    DefaultMinHeaderCellWidth,
		MaxHeaderCellWidth:    DefaultMaxHeaderCellWidth,
		RowToggleIconWidth:    DefaultRowToggleIconWidth,
		CellPadding:           DefaultCellPadding,
		LeftHeaderLeftSpacing: DefaultLeftHeaderLeftSpacing,
		FontSize:              DefaultFontSize,
		MaxRowsToMeasure:      DefaultMaxRowsToMeasure,
	}
}

// clampWidth limits w to the header cell width bounds.
func (m Metrics) clampWidth(w float64) float64 {
	if w > m.MaxHeaderCellWidth {
		return m.MaxHeaderCellWidth
	}
	if w < m.MinHeaderCellWidth {
		return m.MinHeaderCellWidth
	}
	return w
}
