// Package quantfolio values financial positions held in client portfolios
// and derives portfolio-level analytics from them.
//
// The core functionalities include:
//   - Valuation Model: a closed set of position variants (Stock, Derivative,
//     Option) sharing a single current-value capability, plus Black-Scholes
//     theoretical pricing for options.
//   - Aggregation: portfolios composing positions in insertion order, and
//     client accounts combining a cash balance with an optional portfolio.
//   - Analytics: pure queries over a book of accounts (net worth, dividend
//     screening, straddle detection, hedging ratio, deep OTM calls).
//   - Data Persistence: encoding and decoding the client book to and from a
//     human-readable JSONL format, and importing broker statements.
//
// This package serves as the foundational logic for the `qfm` command-line
// tool. All queries are pure functions over in-memory data: the package
// performs no I/O of its own beyond the explicit codec entry points.
package quantfolio
