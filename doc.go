// Package carteira provides a deterministic computation engine for a
// personal fixed-income portfolio indexed to the CDI reference rate.
//
// The core functionalities include:
//   - Rate Conversions: compounding conversions between annual, daily
//     (252 trading days) and monthly rates.
//   - Business Calendar: day-count arithmetic over calendar and business
//     days, with the fixed national holiday table.
//   - Withholding Taxes: the two regressive tables (IOF and income tax)
//     applied in their legal order.
//   - Yield Evaluation: the full gross-to-net breakdown of a position at
//     any valuation date.
//   - Obligations: amortization of installment-based recurring expenses.
//   - Projection: a month-indexed net-worth series combining positions,
//     recurring contributions and obligations.
//   - Reference Rate: a pluggable CDI provider backed by the Banco
//     Central SGS API, with a TTL cache and a safe fallback.
//
// Every operation is a pure function over explicit inputs; the engine
// keeps no state of its own. This package is the foundational logic for
// the `cta` command-line tool.
package carteira
