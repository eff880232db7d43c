package layout

// charMeasurer measures text as a fixed width per byte: 7px at normal
// weight and 8px in bold.
var charMeasurer = MeasureFunc(func(text string, style TextStyle) float64 {
	per := 7.0
	if style.Weight == WeightBold {
		per = 8.0
	}
	return float64(len(text)) * per
})

func titles(ts ...string) func(int) string {
	return func(i int) string {
		if i < 0 || i >= len(ts) {
			return ""
		}
		return ts[i]
	}
}
