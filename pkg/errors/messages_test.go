package errors

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		tag  language.Tag
		want string
	}{
		{
			name: "english",
			err:  New(ErrCodeNotAggregated, "internal detail"),
			tag:  language.English,
			want: MsgNotAggregated,
		},
		{
			name: "german",
			err:  New(ErrCodeDatabaseUnsupported, "internal detail"),
			tag:  language.German,
			want: "Pivot-Tabellen werden von dieser Datenbank nicht unterstützt.",
		},
		{
			name: "regional variant",
			err:  New(ErrCodeNotAggregated, "internal detail"),
			tag:  language.MustParse("es-MX"),
			want: "Las tablas dinámicas solo se pueden usar con consultas agregadas.",
		},
		{
			name: "unsupported language falls back to english",
			err:  New(ErrCodeDatabaseUnsupported, "internal detail"),
			tag:  language.Japanese,
			want: MsgDatabaseUnsupported,
		},
		{
			name: "uncatalogued code",
			err:  New(ErrCodeInvalidInput, "bad json"),
			tag:  language.German,
			want: "bad json",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			tag:  language.French,
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Localize(tt.err, tt.tag); got != tt.want {
				t.Errorf("Localize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalizeNil(t *testing.T) {
	if got := Localize(nil, language.English); got != "" {
		t.Errorf("Localize(nil) = %q, want empty", got)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"de-DE,de;q=0.9,en;q=0.8", language.German},
		{"fr", language.French},
		{"", language.English},
		{"xx-invalid-;;", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := ParseAcceptLanguage(tt.header); got != tt.want {
				t.Errorf("ParseAcceptLanguage(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
