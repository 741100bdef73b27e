// Package main provides the entry point for the txreport CLI.
//
// txreport exports a dataset of financial transactions as CSV, JSON, PDF,
// Markdown or XLSX reports, either from the command line or over HTTP.
//
// Usage:
//
//	txreport import transactions.csv
//	txreport export pdf -o report.pdf
//	txreport serve
//
// See --help for all available options.
package main

// main is the entry point for txreport.
func main() {
	Execute()
}
