package carteira

import (
	"strings"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value float64
		want  string // decimal part of the BRL rendering
	}{
		{0, "0,00"},
		{1234.5, "1.234,50"},
		{-99.99, "99,99"},
		{10000, "10.000,00"},
	}
	for _, tt := range tests {
		got := BRL(tt.value).String()
		if !strings.Contains(got, tt.want) {
			t.Errorf("BRL(%v).String() = %q, want it to contain %q", tt.value, got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("BRL(0).SignedString() = %q, want -", got)
	}
	if got := BRL(10).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("BRL(10).SignedString() = %q, want a + prefix", got)
	}
}

func TestMoneyDiv(t *testing.T) {
	// splitting keeps enough precision that the parts re-add to the total
	part := BRL(100).Div(3)
	sum := part.Add(part).Add(part)
	if !sum.Sub(BRL(100)).IsZero() {
		t.Errorf("3 x 100/3 = %v, want 100", sum)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(14.9).String(); got != "14.90%" {
		t.Errorf("Percent(14.9).String() = %q, want 14.90%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("Percent(0).SignedString() = %q, want -", got)
	}
}
