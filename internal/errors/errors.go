// Package errors provides sentinel errors and error types for fenboard.
// It defines the two failure kinds of the position model, illegal API usage
// and FEN parse failures, as structured types that preserve context while
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors.
// Use these with errors.Is() to check for a kind without caring about details.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalArgument indicates a malformed argument passed to an accessor.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInvalidPresetName indicates a preset name outside the accepted alphabet.
	ErrInvalidPresetName = errors.New("invalid preset name")

	// ErrPresetNotFound indicates a lookup of an unknown preset.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrInvalidConfig indicates an invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IllegalArgumentError is returned when a caller passes a malformed argument
// (bad square name, bad colour or side, bad content value) to an operation.
// No state is mutated when it is returned.
type IllegalArgumentError struct {
	Op    string // Name of the offending operation, e.g. "Position.SetSquare"
	Value string // The rejected value, if printable
}

// Error returns the message naming the offending operation.
func (e *IllegalArgumentError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v: %q", e.Op, ErrIllegalArgument, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Op, ErrIllegalArgument)
}

// Unwrap returns ErrIllegalArgument.
func (e *IllegalArgumentError) Unwrap() error {
	return ErrIllegalArgument
}

// IllegalArgument builds an IllegalArgumentError for op.
func IllegalArgument(op string, value string) error {
	return &IllegalArgumentError{Op: op, Value: value}
}

// FENReason tags the specific way a FEN string failed to decode.
type FENReason int

const (
	WrongFieldCount FENReason = iota
	WrongRankCount
	UnexpectedCharacter
	BadRankLength
	InvalidTurn
	InvalidCastleRights
	InvalidEnPassant
	InconsistentEnPassantRow
	InvalidMoveCounter
)

var reasonNames = [...]string{
	WrongFieldCount:          "wrong-field-count",
	WrongRankCount:           "wrong-rank-count",
	UnexpectedCharacter:      "unexpected-character",
	BadRankLength:            "bad-rank-length",
	InvalidTurn:              "invalid-turn",
	InvalidCastleRights:      "invalid-castle-rights",
	InvalidEnPassant:         "invalid-en-passant",
	InconsistentEnPassantRow: "inconsistent-en-passant-row",
	InvalidMoveCounter:       "invalid-move-counter",
}

// String returns the stable tag of the reason, suitable for APIs and lookups.
func (r FENReason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// FENError represents a FEN decode failure. It carries only the structured
// data needed to render a message; localized rendering lives in package i18n.
type FENError struct {
	FEN     string    // The (trimmed) text whose decoding failed
	Reason  FENReason // What went wrong
	Char    rune      // Offending character, for UnexpectedCharacter
	Ordinal int       // 1-based rank sub-field (BadRankLength) or field number (InvalidMoveCounter)
}

// Error returns a terse English description. Use i18n for user-facing text.
func (e *FENError) Error() string {
	var detail string
	switch e.Reason {
	case WrongFieldCount:
		detail = "expected 6 space-separated fields"
	case WrongRankCount:
		detail = "expected 8 '/'-separated ranks in field 1"
	case UnexpectedCharacter:
		detail = fmt.Sprintf("unexpected character %q in field 1", e.Char)
	case BadRankLength:
		detail = fmt.Sprintf("sub-field %d of field 1 does not cover exactly 8 squares", e.Ordinal)
	case InvalidTurn:
		detail = "field 2 must be 'w' or 'b'"
	case InvalidCastleRights:
		detail = "invalid castle rights in field 3"
	case InvalidEnPassant:
		detail = "invalid en-passant square in field 4"
	case InconsistentEnPassantRow:
		detail = "en-passant row inconsistent with side to move"
	case InvalidMoveCounter:
		detail = fmt.Sprintf("field %d must be a number", e.Ordinal)
	default:
		detail = e.Reason.String()
	}
	return fmt.Sprintf("%v: %s: %q", ErrInvalidFEN, detail, e.FEN)
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
