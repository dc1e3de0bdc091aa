package testutil

import (
	"errors"
	"reflect"
	"testing"

	"github.com/napalu/oslocale/i18n"
)

// AssertErrorIs checks that got matches want with errors.Is and, when wantArgs
// are given, that the matching error in got's chain carries them.
func AssertErrorIs(t *testing.T, got error, want i18n.TranslatableError, wantArgs ...interface{}) bool {
	t.Helper()

	if !errors.Is(got, want) {
		t.Errorf("error mismatch:\ngot:  %v\nwant: %v", got, want)
		return false
	}

	if len(wantArgs) == 0 {
		return true
	}

	for current := got; current != nil; current = errors.Unwrap(current) {
		te, ok := current.(i18n.TranslatableError)
		if !ok || !te.Is(want) {
			continue
		}
		if !reflect.DeepEqual(te.Args(), wantArgs) {
			t.Errorf("error arguments mismatch:\ngot:  %v\nwant: %v", te.Args(), wantArgs)
			return false
		}
		return true
	}

	t.Errorf("no translatable error matching %v in chain of %v", want, got)
	return false
}

// AssertErrorChain verifies a chain of wrapped errors
func AssertErrorChain(t *testing.T, got error, wantChain ...error) bool {
	t.Helper()

	current := got
	for _, want := range wantChain {
		if current == nil {
			t.Errorf("error chain too short, expected %v", want)
			return false
		}

		if !errors.Is(current, want) {
			t.Errorf("error in chain mismatch:\ngot:  %v\nwant: %v", current, want)
			return false
		}

		current = errors.Unwrap(current)
	}

	if current != nil {
		t.Errorf("error chain too long, unexpected: %v", current)
		return false
	}

	return true
}
