package ingredient

import (
	"math"
	"testing"
)

func TestSameKind(t *testing.T) {
	p := mustParser(t)
	if !p.SameKind("cup", "tablespoon") {
		t.Error("expected cup and tablespoon to share a kind")
	}
	if p.SameKind("cup", "gram") {
		t.Error("did not expect cup and gram to share a kind")
	}
}

func TestConvertFallbackGraph(t *testing.T) {
	p := mustParser(t)
	got, err := p.Convert(1, "cup", "tablespoon")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if math.Abs(got-16) > 0.01 {
		t.Errorf("Convert(1 cup -> tablespoon) = %v; want 16", got)
	}
}

func TestConvertIdentity(t *testing.T) {
	p := mustParser(t)
	got, err := p.Convert(5, "cup", "cup")
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if got != 5 {
		t.Errorf("Convert(5 cup -> cup) = %v; want 5", got)
	}
}

func TestConvertDifferentKindsIsUnconvertible(t *testing.T) {
	p := mustParser(t)
	_, err := p.Convert(1, "cup", "gram")
	if err == nil {
		t.Fatal("expected an error converting between volume and mass")
	}
	if pe, ok := err.(*ParseError); !ok || pe.Reason != "Unconvertible" {
		t.Errorf("expected Unconvertible ParseError, got %v", err)
	}
}
