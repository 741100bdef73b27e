// Package locale holds the regional formatting conventions of txreport.
//
// Every encoder renders dates and decimal values through this package so the
// convention lives in exactly one place:
//   - values use ',' as decimal separator, plain notation, no digit grouping
//   - human-facing dates are dd/mm/yyyy
//   - machine-readable dates (JSON) are yyyy-mm-dd
//
// The convention is fixed; it is not configurable per request or deployment.
package locale
