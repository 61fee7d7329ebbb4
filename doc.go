// Package portfolio simulates the historical growth of fixed-allocation
// "lazy" portfolios built from a handful of index funds, using locally
// stored CSV price exports.
//
// The pipeline is a pure batch computation over in-memory data:
//   - PriceSeries: one fund's validated closing-price history.
//   - Align: the gap-free timeline shared by all funds of an allocation,
//     built from the intersection of their coverage with forward-filled
//     quotes.
//   - Simulate: converts a lump sum and monthly contributions into share
//     counts at target weights and walks the timeline into a Trajectory.
//   - ComputeStatistics: CAGR, annualized volatility, Sharpe ratio and
//     maximum drawdown over the trajectory.
//
// Nothing is mutated after construction, so series and catalogs can be
// shared freely across concurrent runs. All failures wrap one of the
// sentinel errors in errors.go.
//
// This package is the foundation of the `bogle` command-line tool.
package portfolio
