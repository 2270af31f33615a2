package token_test

import (
	"testing"

	"github.com/nickysemenza/ingredient-parser/token"
)

func TestLookupCardinal(t *testing.T) {
	tests := []struct {
		word   string
		want   int
		wantOk bool
	}{
		{"zero", 0, true},
		{"seven", 7, true},
		{"twenty", 20, true},
		{"hundred", 100, true},
		{"flour", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupCardinal(tt.word)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("LookupCardinal(%q) = %d, %v; want %d, %v", tt.word, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestIsHundredWord(t *testing.T) {
	if !token.IsHundredWord("hundred") {
		t.Error("expected hundred to be a hundred-word")
	}
	if token.IsHundredWord("twenty") {
		t.Error("did not expect twenty to be a hundred-word")
	}
}
