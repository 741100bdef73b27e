// Package database provides SQLite-based storage for txreport.
//
// This package implements the TransactionDB, which stores:
//   - Transactions, in the order they were imported
//   - The import batch each transaction arrived in
//
// TransactionDB is the data source of every report: it satisfies
// report.Source through FetchAll.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
//
// Values are stored as decimal text, never as REAL, so amounts read back
// exactly as they were written.
package database
