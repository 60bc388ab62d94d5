package carteira

import (
	"math"
	"time"
)

// TradingDaysPerYear is the conventional number of business days used by the
// daily compounding of CDI-indexed instruments.
const TradingDaysPerYear = 252

// fixedHolidays is the fallback table of national holidays that fall on the
// same month/day every year. Movable holidays (Carnival, Corpus Christi,
// Good Friday) are not modeled; the yield path uses an estimated business-day
// count, so the approximation is acceptable there.
var fixedHolidays = map[[2]int]bool{
	{int(time.January), 1}:   true, // Confraternização Universal
	{int(time.April), 21}:    true, // Tiradentes
	{int(time.May), 1}:       true, // Dia do Trabalho
	{int(time.September), 7}: true, // Independência
	{int(time.October), 12}:  true, // Nossa Senhora Aparecida
	{int(time.November), 2}:  true, // Finados
	{int(time.November), 15}: true, // Proclamação da República
	{int(time.December), 25}: true, // Natal
}

// IsBusinessDay reports whether d is a trading day: a weekday that is not a
// fixed national holiday.
func IsBusinessDay(d Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !fixedHolidays[[2]int{int(d.Month()), d.Day()}]
}

// CalendarDays returns the number of whole calendar days from start to end,
// clamped to zero when end precedes start.
func CalendarDays(start, end Date) int { return DaysBetween(start, end) }

// BusinessDays counts the business days from start (exclusive) to end
// (inclusive), iterating day by day. Cost is O(days); the yield path uses
// EstimateBusinessDays instead.
func BusinessDays(start, end Date) int {
	count := 0
	for d := start.Add(1); !d.After(end); d = d.Add(1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// EstimateBusinessDays converts a calendar-day count into an approximate
// business-day count using the fixed 252/365 ratio, rounded to the nearest
// integer.
func EstimateBusinessDays(calendarDays int) int {
	return int(math.Round(float64(calendarDays) * TradingDaysPerYear / 365.0))
}
