// Package fonts provides the font families available for text measurement.
//
// The fonts are the Go font family shipped with golang.org/x/image, so they
// are compiled into the binary without external files. Families requested
// by name but not bundled (for example "Lato") resolve to [DefaultFamily];
// widths then approximate the browser's rendering rather than match it.
package fonts

import (
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is the family used when a requested family is not bundled.
const DefaultFamily = "Go"

// Family holds the TrueType data of one family.
type Family struct {
	Name    string
	Regular []byte
	Bold    []byte
}

var families = map[string]Family{
	"go":      {Name: "Go", Regular: goregular.TTF, Bold: gobold.TTF},
	"go mono": {Name: "Go Mono", Regular: gomono.TTF, Bold: gomonobold.TTF},
}

// Lookup returns the bundled family called name, ignoring case and quotes.
func Lookup(name string) (Family, bool) {
	f, ok := families[normalize(name)]
	return f, ok
}

// Resolve picks the first bundled family of a CSS font-family list such as
// "Lato, 'Go Mono', monospace", falling back to DefaultFamily.
func Resolve(list string) Family {
	for _, name := range strings.Split(list, ",") {
		if f, ok := Lookup(name); ok {
			return f
		}
	}
	return families[normalize(DefaultFamily)]
}

// Names returns the bundled family names, sorted.
func Names() []string {
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `'"`)
	return strings.ToLower(name)
}
