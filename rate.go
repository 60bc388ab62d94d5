package carteira

import "math"

// Compounding conversions between the three rate horizons used by the
// engine. Rates are expressed in percent (14.90 means 14.90% a year).
// The conversions are pure and are exact inverses of each other within
// floating-point tolerance.

// AnnualToDaily converts an annual rate into the equivalent daily rate
// compounded over 252 trading days.
func AnnualToDaily(annual float64) float64 {
	return (math.Pow(1+annual/100, 1.0/TradingDaysPerYear) - 1) * 100
}

// DailyToAnnual converts a daily rate into the equivalent annual rate
// compounded over 252 trading days.
func DailyToAnnual(daily float64) float64 {
	return (math.Pow(1+daily/100, TradingDaysPerYear) - 1) * 100
}

// AnnualToMonthly converts an annual rate into the equivalent monthly rate.
func AnnualToMonthly(annual float64) float64 {
	return (math.Pow(1+annual/100, 1.0/12) - 1) * 100
}
