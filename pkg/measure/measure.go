// Package measure implements [layout.Measurer] with real font metrics.
//
// Widths come from the advance widths of the bundled OpenType fonts (see
// package fonts) at 72 DPI, so one point equals one pixel. Results are
// memoized on the (text, weight, family, size) tuple in a bounded LRU;
// since measurement is pure, eviction only costs a recomputation.
package measure

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/pivotgrid/pkg/fonts"
	"github.com/matzehuels/pivotgrid/pkg/layout"
)

const (
	// DefaultMemoSize is the number of measurements kept by New.
	DefaultMemoSize = 4096

	// fallbackCharWidth approximates a glyph advance as a fraction of the
	// font size when a face cannot be loaded.
	fallbackCharWidth = 0.55

	dpi = 72
)

type faceKey struct {
	family string
	weight layout.Weight
	size   float64
}

type memoKey struct {
	text  string
	style layout.TextStyle
}

// FontMeasurer measures text with the bundled fonts. It is safe for
// concurrent use.
type FontMeasurer struct {
	mu     sync.Mutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
	memo   *lru.Cache[memoKey, float64]
}

// New returns a FontMeasurer remembering up to memoSize measurements.
// A non-positive memoSize uses DefaultMemoSize.
func New(memoSize int) (*FontMeasurer, error) {
	if memoSize <= 0 {
		memoSize = DefaultMemoSize
	}
	memo, err := lru.New[memoKey, float64](memoSize)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		memo:   memo,
	}, nil
}

// Measure returns the advance width of text in pixels.
func (m *FontMeasurer) Measure(text string, style layout.TextStyle) float64 {
	key := memoKey{text: text, style: style}
	if w, ok := m.memo.Get(key); ok {
		return w
	}

	w := m.measure(text, style)
	m.memo.Add(key, w)
	return w
}

func (m *FontMeasurer) measure(text string, style layout.TextStyle) float64 {
	if text == "" || style.Size <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(style)
	if err != nil {
		return float64(len([]rune(text))) * style.Size * fallbackCharWidth
	}
	return float64(font.MeasureString(face, text)) / 64
}

// face returns the cached face for style. The caller holds m.mu.
func (m *FontMeasurer) face(style layout.TextStyle) (font.Face, error) {
	family := fonts.Resolve(style.Family)
	weight := style.Weight
	if weight != layout.WeightBold {
		weight = layout.WeightNormal
	}
	key := faceKey{family: family.Name, weight: weight, size: style.Size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}

	data, id := family.Regular, family.Name+"/regular"
	if weight == layout.WeightBold {
		data, id = family.Bold, family.Name+"/bold"
	}
	parsed, ok := m.parsed[id]
	if !ok {
		var err error
		if parsed, err = opentype.Parse(data); err != nil {
			return nil, err
		}
		m.parsed[id] = parsed
	}

	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[key] = f
	return f, nil
}

// Close releases the cached faces.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, f := range m.faces {
		_ = f.Close()
		delete(m.faces, k)
	}
	m.memo.Purge()
	return nil
}

var _ layout.Measurer = (*FontMeasurer)(nil)
