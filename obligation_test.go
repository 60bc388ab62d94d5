package carteira

import (
	"math"
	"testing"
)

func TestMonthlyAmountConservation(t *testing.T) {
	tests := []struct {
		total        float64
		installments int
	}{
		{1200, 12},
		{1000, 3},
		{99.90, 7},
		{500, 1},
	}
	for _, tt := range tests {
		o := NewObligation("x", tt.total, tt.installments, NewDate(2026, 8, 1))
		sum := o.MonthlyAmount() * float64(tt.installments)
		if math.Abs(sum-tt.total) > 1e-9 {
			t.Errorf("monthly %v x %d = %v, want %v", o.MonthlyAmount(), tt.installments, sum, tt.total)
		}
	}
}

func TestPendingTotal(t *testing.T) {
	o := NewObligation("tv", 1200, 12, NewDate(2026, 8, 1))

	if got := o.PendingTotal(); got != 1200 {
		t.Errorf("PendingTotal at first installment = %v, want 1200", got)
	}

	o.Current = 5
	if got := o.PendingTotal(); got != 800 {
		t.Errorf("PendingTotal at installment 5 = %v, want 800", got)
	}

	o.Current = 20 // past the end
	if got := o.PendingTotal(); got != 0 {
		t.Errorf("PendingTotal past the end = %v, want 0", got)
	}

	o.Current = 5
	o.Paid = true
	if got := o.PendingTotal(); got != 0 {
		t.Errorf("PendingTotal when paid = %v, want 0", got)
	}
}

func TestMonthlyChargeAt(t *testing.T) {
	start := NewDate(2026, 8, 15)
	o := NewObligation("tv", 1200, 12, start)

	t.Run("charges the full installment window", func(t *testing.T) {
		for i := 0; i < 12; i++ {
			target := start.AddMonths(i)
			if got := o.MonthlyChargeAt(target); got != 100 {
				t.Errorf("charge at month %d = %v, want 100", i, got)
			}
		}
	})

	t.Run("zero before start and after the last installment", func(t *testing.T) {
		if got := o.MonthlyChargeAt(start.AddMonths(-1)); got != 0 {
			t.Errorf("charge before start = %v, want 0", got)
		}
		if got := o.MonthlyChargeAt(start.AddMonths(12)); got != 0 {
			t.Errorf("charge after last installment = %v, want 0", got)
		}
	})

	t.Run("day of month is ignored", func(t *testing.T) {
		// the 1st of the start month is still month offset 0
		if got := o.MonthlyChargeAt(NewDate(2026, 8, 1)); got != 100 {
			t.Errorf("charge on the 1st of the start month = %v, want 100", got)
		}
	})

	t.Run("deferred date suppresses earlier charges", func(t *testing.T) {
		d := o
		d.Deferred = NewDate(2026, 10, 1)
		if got := d.MonthlyChargeAt(NewDate(2026, 9, 15)); got != 0 {
			t.Errorf("charge before deferred date = %v, want 0", got)
		}
		if got := d.MonthlyChargeAt(NewDate(2026, 10, 15)); got != 100 {
			t.Errorf("charge after deferred date = %v, want 100", got)
		}
	})

	t.Run("paid obligation never charges", func(t *testing.T) {
		p := o
		p.Paid = true
		if got := p.MonthlyChargeAt(start); got != 0 {
			t.Errorf("charge when paid = %v, want 0", got)
		}
	})
}
