package testutil

import (
	"errors"
	"fmt"
	"testing"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
)

// These tests verify the assertion helpers on their success paths; failure
// paths would fail the enclosing test.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertError_Success(t *testing.T) {
	AssertError(t, errors.New("test error"))
	AssertError(t, errors.New("test"), "expected error from %s", "operation")
}

func TestAssertErrorIs_Success(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", fenerrors.ErrInvalidFEN)
	AssertErrorIs(t, wrapped, fenerrors.ErrInvalidFEN)
}

func TestAssertFENReason_Success(t *testing.T) {
	err := fmt.Errorf("decode: %w", &fenerrors.FENError{Reason: fenerrors.InvalidTurn})
	got := AssertFENReason(t, err, fenerrors.InvalidTurn)
	if got == nil {
		t.Fatal("AssertFENReason returned nil")
	}
}

func TestAssertIllegalArgument_Success(t *testing.T) {
	AssertIllegalArgument(t, fenerrors.IllegalArgument("Position.SetSquare", "z9"), "Position.SetSquare")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
