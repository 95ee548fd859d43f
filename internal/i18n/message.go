package i18n

import (
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// Message renders a FEN decode failure in the language of c.
func (c *Catalogue) Message(e *errors.FENError) string {
	switch e.Reason {
	case errors.UnexpectedCharacter:
		return c.Format(e.Reason, string(e.Char))
	case errors.BadRankLength, errors.InvalidMoveCounter:
		return c.Format(e.Reason, c.Ordinal(e.Ordinal))
	}
	if msg := c.Template(e.Reason); msg != "" {
		return msg
	}
	return e.Error()
}

// Describe renders any error for display. FEN decode failures are localized;
// everything else falls back to its Error text.
func (c *Catalogue) Describe(err error) string {
	if err == nil {
		return ""
	}
	var fenErr *errors.FENError
	if errors.As(err, &fenErr) {
		return c.Message(fenErr)
	}
	return err.Error()
}

// Message renders e with the English catalogue.
func Message(e *errors.FENError) string {
	return English.Message(e)
}

// Describe renders err with the catalogue for lang.
func Describe(lang string, err error) string {
	return Lookup(lang).Describe(err)
}
