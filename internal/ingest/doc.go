// Package ingest reads transactions from delimited text files.
//
// The accepted format is the one the CSV report writes: a header row
// "date;description;value;category", ';' as separator, dd/mm/yyyy dates and
// values with ',' as decimal separator. A CSV report can therefore be
// imported back unchanged.
//
// Every row is validated before any record is returned. The first invalid
// row aborts the read with a *RowError naming its line.
package ingest
