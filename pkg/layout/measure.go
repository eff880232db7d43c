package layout

// Weight is a font weight understood by a [Measurer].
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// TextStyle describes how a string is rendered for measurement.
type TextStyle struct {
	Weight Weight
	Family string
	Size   float64
}

// Measurer returns the rendered width of text in pixels. Implementations
// must be deterministic for a given text and style.
type Measurer interface {
	Measure(text string, style TextStyle) float64
}

// MeasureFunc adapts a function to the [Measurer] interface.
type MeasureFunc func(text string, style TextStyle) float64

// Measure calls f.
func (f MeasureFunc) Measure(text string, style TextStyle) float64 { return f(text, style) }
