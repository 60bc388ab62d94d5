package carteira

// Obligation is an installment-based recurring expense: a total amount split
// evenly over a number of monthly installments starting at a given month.
// The paid flag may be toggled by the caller; everything else is fixed at
// creation.
type Obligation struct {
	Description string  `json:"description"`
	Total       float64 `json:"total"`
	// Installments is the number of monthly charges, at least 1.
	Installments int `json:"installments"`
	// Current is the 1-based index of the next installment due.
	Current int  `json:"current"`
	Start   Date `json:"start"`
	Paid    bool `json:"paid"`
	// Deferred, when set, suppresses charges before that date.
	Deferred Date `json:"deferred,omitempty"`
}

// NewObligation records an expense split over n monthly installments.
func NewObligation(description string, total float64, installments int, start Date) Obligation {
	if installments < 1 {
		installments = 1
	}
	return Obligation{
		Description:  description,
		Total:        total,
		Installments: installments,
		Current:      1,
		Start:        start,
	}
}

// MonthlyAmount is the derived per-installment charge, total/installments,
// regardless of paid state.
func (o Obligation) MonthlyAmount() float64 {
	return o.Total / float64(o.Installments)
}

// PendingTotal is the amount still owed: the monthly amount times the
// remaining installments, or zero once paid.
func (o Obligation) PendingTotal() float64 {
	if o.Paid {
		return 0
	}
	remaining := o.Installments - o.Current + 1
	if remaining < 0 {
		remaining = 0
	}
	return o.MonthlyAmount() * float64(remaining)
}

// MonthlyChargeAt returns the charge this obligation contributes in the
// month of target: the monthly amount when the month offset from the start
// date falls within the installment window, zero otherwise. The offset
// ignores the day of the month. A deferred date suppresses charges on any
// target before it.
func (o Obligation) MonthlyChargeAt(target Date) float64 {
	if o.Paid {
		return 0
	}
	if !o.Deferred.IsZero() && target.Before(o.Deferred) {
		return 0
	}
	offset := MonthsBetween(o.Start, target)
	if offset < 0 || offset >= o.Installments {
		return 0
	}
	return o.MonthlyAmount()
}
