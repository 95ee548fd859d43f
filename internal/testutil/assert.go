// Package testutil provides shared test assertions for fenboard packages.
// It deliberately imports none of the domain packages so any of them can
// use it from their own tests.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, "expected error but got nil", msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, fmt.Sprintf("error %v is not %v", err, target), msgAndArgs...)
	}
}

// AssertFENReason fails unless err is a FEN decode error tagged with reason.
// It returns the extracted error, or nil.
func AssertFENReason(t testing.TB, err error, reason fenerrors.FENReason, msgAndArgs ...interface{}) *fenerrors.FENError {
	t.Helper()
	var fenErr *fenerrors.FENError
	if !errors.As(err, &fenErr) {
		fail(t, fmt.Sprintf("expected FEN error %v, got %v", reason, err), msgAndArgs...)
		return nil
	}
	if fenErr.Reason != reason {
		fail(t, fmt.Sprintf("FEN error reason = %v, want %v", fenErr.Reason, reason), msgAndArgs...)
	}
	return fenErr
}

// AssertIllegalArgument fails unless err is an illegal-argument error for op.
func AssertIllegalArgument(t testing.TB, err error, op string, msgAndArgs ...interface{}) {
	t.Helper()
	var iae *fenerrors.IllegalArgumentError
	if !errors.As(err, &iae) {
		fail(t, fmt.Sprintf("expected illegal argument from %s, got %v", op, err), msgAndArgs...)
		return
	}
	if iae.Op != op {
		fail(t, fmt.Sprintf("illegal argument op = %q, want %q", iae.Op, op), msgAndArgs...)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, fmt.Sprintf("%q does not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, "expected true but got false", msgAndArgs...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, "expected false but got true", msgAndArgs...)
	}
}

func fail(t testing.TB, problem string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, problem)
		return
	}
	t.Error(problem)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
