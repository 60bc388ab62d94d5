package carteira

import "math"

// ProjectionPoint is one month of the projected net-worth series.
type ProjectionPoint struct {
	// Label identifies the month, e.g. "2026-08".
	Label string `json:"label"`
	Date  Date   `json:"date"`
	// NetWorth aggregates position net values and compounded contributions,
	// minus every expense charged up to this month.
	NetWorth float64 `json:"netWorth"`
	// Expenses is the obligation total charged in this month alone.
	Expenses float64 `json:"expenses"`
	// MonthlyReturn is the month-over-month gain, clamped to zero from below.
	MonthlyReturn float64 `json:"monthlyReturn"`
}

// Project builds the net-worth series from the starting date over the given
// number of months, one point per month index 0..months inclusive, index 0
// being the start itself.
//
// Every point is a full recomputation: each position is re-evaluated at the
// target date and each past contribution compounds independently for its
// remaining months. The cost is O(months²) in contributions, which is fine
// at the supported horizon of 120 months. Expenses accumulate and never
// roll off: once charged, an installment permanently lowers the projected
// net worth.
//
// The output is fully deterministic given identical inputs.
func Project(from Date, positions []Position, obligations []Obligation, months int, annualRate, monthlyContribution float64) []ProjectionPoint {
	monthlyRate := AnnualToMonthly(annualRate) / 100

	points := make([]ProjectionPoint, 0, months+1)
	cumulativeExpenses := 0.0
	previousNetWorth := 0.0

	for i := 0; i <= months; i++ {
		target := from.AddMonths(i)

		positionsValue := 0.0
		for _, p := range positions {
			positionsValue += Evaluate(p, target, annualRate).NetValue
		}

		// each contribution made in months 1..i compounds on its own for
		// the months it has been invested
		contributionValue := 0.0
		for j := 1; j <= i; j++ {
			contributionValue += monthlyContribution * math.Pow(1+monthlyRate, float64(i-j))
		}

		monthExpenses := 0.0
		for _, o := range obligations {
			monthExpenses += o.MonthlyChargeAt(target)
		}
		cumulativeExpenses += monthExpenses

		netWorth := positionsValue + contributionValue - cumulativeExpenses

		monthlyReturn := 0.0
		if i > 0 {
			monthlyReturn = netWorth - previousNetWorth + monthlyContribution*monthlyRate
			if monthlyReturn < 0 {
				monthlyReturn = 0
			}
		}
		previousNetWorth = netWorth

		points = append(points, ProjectionPoint{
			Label:         target.Format("2006-01"),
			Date:          target,
			NetWorth:      netWorth,
			Expenses:      monthExpenses,
			MonthlyReturn: monthlyReturn,
		})
	}
	return points
}
