// Package i18n renders FEN decode failures as human-readable text.
//
// Catalogues are built once when the package is initialized and are never
// modified afterwards, so they can be shared freely between goroutines.
package i18n

import (
	"strconv"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// Catalogue is a read-only set of message templates for one language.
type Catalogue struct {
	lang      string
	templates map[errors.FENReason]string
	ordinals  [8]string
}

// Lang returns the language tag of the catalogue.
func (c *Catalogue) Lang() string {
	return c.lang
}

// Template returns the raw template for a reason, with "{1}" placeholders
// left in place. Unknown reasons yield an empty string.
func (c *Catalogue) Template(reason errors.FENReason) string {
	return c.templates[reason]
}

// Ordinal returns the ordinal word for n, counted from 1. Values outside
// 1..8 fall back to the decimal number.
func (c *Catalogue) Ordinal(n int) string {
	if n < 1 || n > len(c.ordinals) {
		return strconv.Itoa(n)
	}
	return c.ordinals[n-1]
}

// Format substitutes args into the template of reason. The i-th argument
// replaces every "{i}" placeholder.
func (c *Catalogue) Format(reason errors.FENReason, args ...string) string {
	msg := c.Template(reason)
	for i, arg := range args {
		msg = strings.ReplaceAll(msg, "{"+strconv.Itoa(i+1)+"}", arg)
	}
	return msg
}

var (
	// English is the default catalogue.
	English = &Catalogue{
		lang: "en",
		templates: map[errors.FENReason]string{
			errors.WrongFieldCount:          "A FEN string must contain exactly 6 space-separated fields.",
			errors.WrongRankCount:           "The 1st field of a FEN string must contain exactly 8 `/`-separated subfields.",
			errors.UnexpectedCharacter:      "Unexpected character in the 1st field of the FEN string: `{1}`.",
			errors.BadRankLength:            "The {1} subfield of the FEN string 1st field does not describe exactly 8 squares.",
			errors.InvalidTurn:              "The 2nd field of a FEN string must be either `w` or `b`.",
			errors.InvalidCastleRights:      "The 3rd field of a FEN string must be either `-` or a list of characters among `K`, `Q`, `k` and `q` (in this order).",
			errors.InvalidEnPassant:         "The 4th field of a FEN string must be either `-` or a square from the 3rd or 6th row where en-passant is allowed.",
			errors.InconsistentEnPassantRow: "The row number indicated in the FEN string 4th field is inconsistent with respect to the 2nd field.",
			errors.InvalidMoveCounter:       "The {1} field of a FEN string must be a number.",
		},
		ordinals: [8]string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th"},
	}

	// French mirrors English for French-speaking sites.
	French = &Catalogue{
		lang: "fr",
		templates: map[errors.FENReason]string{
			errors.WrongFieldCount:          "Une chaîne FEN doit contenir exactement 6 champs séparés par des espaces.",
			errors.WrongRankCount:           "Le 1er champ d'une chaîne FEN doit contenir exactement 8 sous-champs séparés par des `/`.",
			errors.UnexpectedCharacter:      "Caractère inattendu dans le 1er champ de la chaîne FEN : `{1}`.",
			errors.BadRankLength:            "Le {1} sous-champ du 1er champ de la chaîne FEN ne décrit pas exactement 8 cases.",
			errors.InvalidTurn:              "Le 2e champ d'une chaîne FEN doit valoir `w` ou `b`.",
			errors.InvalidCastleRights:      "Le 3e champ d'une chaîne FEN doit valoir `-` ou une liste de caractères parmi `K`, `Q`, `k` et `q` (dans cet ordre).",
			errors.InvalidEnPassant:         "Le 4e champ d'une chaîne FEN doit valoir `-` ou une case de la 3e ou 6e rangée où la prise en passant est possible.",
			errors.InconsistentEnPassantRow: "La rangée indiquée dans le 4e champ de la chaîne FEN est incohérente avec le 2e champ.",
			errors.InvalidMoveCounter:       "Le {1} champ d'une chaîne FEN doit être un nombre.",
		},
		ordinals: [8]string{"1er", "2e", "3e", "4e", "5e", "6e", "7e", "8e"},
	}

	catalogues = map[string]*Catalogue{
		English.lang: English,
		French.lang:  French,
	}
)

// Lookup returns the catalogue for a language tag such as "fr" or "fr_FR".
// Unknown languages get English.
func Lookup(lang string) *Catalogue {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if c, ok := catalogues[lang]; ok {
		return c
	}
	return English
}

// Languages lists the available language tags in a stable order.
func Languages() []string {
	return []string{English.lang, French.lang}
}
