package carteira

import "math"

// YieldBreakdown is the full gross-to-net decomposition of a position's
// value at a valuation date. It is produced fresh on every evaluation and
// never stored.
type YieldBreakdown struct {
	GrossValue  float64 `json:"grossValue"`
	GrossReturn float64 `json:"grossReturn"`
	Withholding
	NetValue  float64 `json:"netValue"`
	NetReturn float64 `json:"netReturn"`
	// EffectiveAnnualRate is the net return annualized over the calendar
	// holding period.
	EffectiveAnnualRate Percent `json:"effectiveAnnualRate"`
	CalendarDays        int     `json:"calendarDays"`
	BusinessDays        int     `json:"businessDays"`
}

// Evaluate computes the yield breakdown of a position at a valuation date,
// given the current annual reference rate in percent.
//
// Compounding runs over estimated business days while both tax tables are
// looked up by calendar days; the two day counts are reported in the result.
// A valuation date before the deposit degrades to zero growth and zero tax,
// never an error.
func Evaluate(p Position, on Date, annualRate float64) YieldBreakdown {
	calendarDays := CalendarDays(p.Deposit, on)
	businessDays := EstimateBusinessDays(calendarDays)

	// effective daily rate scaled by the position's percent-of-CDI multiplier
	dailyRate := AnnualToDaily(annualRate) / 100 * (p.Multiplier / 100)

	grossValue := p.Principal * math.Pow(1+dailyRate, float64(businessDays))
	grossReturn := grossValue - p.Principal

	w := ComputeWithholding(grossReturn, calendarDays, p.Exempt)

	netValue := grossValue - w.IOF - w.IncomeTax

	var effective Percent
	if calendarDays > 0 && p.Principal > 0 {
		effective = Percent((math.Pow(netValue/p.Principal, 365.0/float64(calendarDays)) - 1) * 100)
	}

	return YieldBreakdown{
		GrossValue:          grossValue,
		GrossReturn:         grossReturn,
		Withholding:         w,
		NetValue:            netValue,
		NetReturn:           netValue - p.Principal,
		EffectiveAnnualRate: effective,
		CalendarDays:        calendarDays,
		BusinessDays:        businessDays,
	}
}
