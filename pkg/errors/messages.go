package errors

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for the render-check failures. The English text doubles as
// the catalog key.
const (
	MsgNotAggregated       = "Pivot tables can only be used with aggregated queries."
	MsgDatabaseUnsupported = "Pivot tables are not supported by this database."
)

// Supported lists the languages with a translated catalog entry.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var translations = map[language.Tag]map[string]string{
	language.German: {
		MsgNotAggregated:       "Pivot-Tabellen können nur mit aggregierten Abfragen verwendet werden.",
		MsgDatabaseUnsupported: "Pivot-Tabellen werden von dieser Datenbank nicht unterstützt.",
	},
	language.French: {
		MsgNotAggregated:       "Les tableaux croisés ne peuvent être utilisés qu'avec des requêtes agrégées.",
		MsgDatabaseUnsupported: "Les tableaux croisés ne sont pas pris en charge par cette base de données.",
	},
	language.Spanish: {
		MsgNotAggregated:       "Las tablas dinámicas solo se pueden usar con consultas agregadas.",
		MsgDatabaseUnsupported: "Esta base de datos no admite tablas dinámicas.",
	},
}

var matcher = language.NewMatcher(Supported)

func init() {
	for _, key := range []string{MsgNotAggregated, MsgDatabaseUnsupported} {
		_ = message.SetString(language.English, key, key)
	}
	for tag, entries := range translations {
		for key, msg := range entries {
			_ = message.SetString(tag, key, msg)
		}
	}
}

// messageKeys maps render-check codes to their catalog key.
var messageKeys = map[Code]string{
	ErrCodeNotAggregated:       MsgNotAggregated,
	ErrCodeDatabaseUnsupported: MsgDatabaseUnsupported,
}

// Localize returns the user-facing message for err in the language closest
// to tag. Errors without a catalog entry fall back to UserMessage.
func Localize(err error, tag language.Tag) string {
	if err == nil {
		return ""
	}
	key, ok := messageKeys[GetCode(err)]
	if !ok {
		return UserMessage(err)
	}
	matched, _, _ := matcher.Match(tag)
	base, _ := matched.Base()
	p := message.NewPrinter(language.Make(base.String()))
	return p.Sprintf(key)
}

// ParseAcceptLanguage resolves an Accept-Language header value to the best
// supported tag. Unparseable values resolve to English.
func ParseAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	matched, _, _ := matcher.Match(tags...)
	base, _ := matched.Base()
	return language.Make(base.String())
}
