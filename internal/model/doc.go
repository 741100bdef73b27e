// Package model defines the data structures shared by every part of txreport.
//
// This package contains the following main types:
//   - Transaction: one financial event (date, description, value, category)
//   - Output: a generated report payload with its media type and disposition
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The database, ingest, report and server packages all exchange
// transactions, so centralizing the type prevents import cycles.
//
// Transactions are plain values. They are materialized fresh for every report
// and never mutated afterwards.
package model
