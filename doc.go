// Package rental estimates the return on investment of a rental property.
//
// A Calculator owns three categories of items:
//   - Monthly Income: what the property brings each month.
//   - Monthly Expenses: what the property costs each month.
//   - Initial Investments: what it took to acquire the property.
//
// Each Category is an ordered set of named, non-negative amounts with a
// running total, so that totals stay exact while items are added, removed
// and updated. From the totals the Calculator derives the monthly and annual
// cash flow and the return on investment, which is undefined until something
// is invested.
//
// This package is the foundation of the `rroi` command-line tool.
package rental
