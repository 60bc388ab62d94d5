package carteira

// Withholding taxes on fixed-income returns. Two regressive tables apply in
// a strict order: IOF first, on the gross return, then income tax on what
// the IOF left. Both rates fall as the holding period grows.

// iofTable holds the regressive IOF rate, in percent, indexed by calendar
// days held minus one. It decays from 96% on day 1 to 0% on day 30.
var iofTable = [30]float64{
	96, 93, 90, 86, 83, 80, 76, 73, 70, 66,
	63, 60, 56, 53, 50, 46, 43, 40, 36, 33,
	30, 26, 23, 20, 16, 13, 10, 6, 3, 0,
}

// IOFRate returns the IOF rate for a holding period in calendar days.
// Non-positive day counts use the day-1 rate; periods past 30 days pay none.
func IOFRate(calendarDays int) Percent {
	if calendarDays < 1 {
		return Percent(iofTable[0])
	}
	if calendarDays > len(iofTable) {
		return 0
	}
	return Percent(iofTable[calendarDays-1])
}

// IncomeTaxRate returns the regressive income-tax rate for a holding period
// in calendar days. Bracket upper bounds are inclusive.
func IncomeTaxRate(calendarDays int) Percent {
	switch {
	case calendarDays <= 180:
		return 22.5
	case calendarDays <= 360:
		return 20.0
	case calendarDays <= 720:
		return 17.5
	default:
		return 15.0
	}
}

// Withholding is the tax side of a yield breakdown: the two amounts due and
// the rates that produced them.
type Withholding struct {
	IOF           float64 `json:"iof"`
	IOFRate       Percent `json:"iofRate"`
	IncomeTax     float64 `json:"incomeTax"`
	IncomeTaxRate Percent `json:"incomeTaxRate"`
}

// ComputeWithholding applies both taxes, in order, to a gross return held
// for the given number of calendar days. Exempt positions skip the
// computation entirely and report zero amounts and zero rates. A zero or
// negative gross return owes nothing.
func ComputeWithholding(grossReturn float64, calendarDays int, exempt bool) Withholding {
	if exempt {
		return Withholding{}
	}
	var w Withholding
	w.IOFRate = IOFRate(calendarDays)
	if grossReturn > 0 {
		w.IOF = grossReturn * float64(w.IOFRate) / 100
	}
	w.IncomeTaxRate = IncomeTaxRate(calendarDays)
	// income tax is charged on what the IOF left over
	base := grossReturn - w.IOF
	if base > 0 {
		w.IncomeTax = base * float64(w.IncomeTaxRate) / 100
	}
	return w
}
