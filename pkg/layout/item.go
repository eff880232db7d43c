package layout

// HeaderItem is one node of a flattened header tree. Offset and Span are
// measured in leaf units along the axis; Depth 0 is the outermost level.
type HeaderItem struct {
	Value         string `json:"value"`
	Depth         int    `json:"depth"`
	Offset        int    `json:"offset"`
	Span          int    `json:"span"`
	MaxDepthBelow int    `json:"max_depth_below"`
	IsSubtotal    bool   `json:"is_subtotal,omitempty"`
	IsGrandTotal  bool   `json:"is_grand_total,omitempty"`
	HasSubtotal   bool   `json:"has_subtotal,omitempty"`
}

// IsTotal reports whether the item labels a subtotal or grand total row.
func (it HeaderItem) IsTotal() bool { return it.IsSubtotal || it.IsGrandTotal }
