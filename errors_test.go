package ingredient

import (
	"errors"
	"testing"
)

func TestParseErrorIs(t *testing.T) {
	err := errNameMissing(5)
	if !errors.Is(err, ErrNameMissing) {
		t.Fatal("expected errNameMissing to match ErrNameMissing via errors.Is")
	}
	if errors.Is(err, ErrInputEmpty) {
		t.Fatal("did not expect errNameMissing to match ErrInputEmpty")
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := errRangeReversed(3, 5, 2)
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected a non-empty error message")
	}
}
