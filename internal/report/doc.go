// Package report turns a collection of transactions into a downloadable
// report.
//
// The package has three parts:
//   - Encoder: one implementation per output format (CSV, JSON, PDF,
//     Markdown, XLSX). An encoder converts records into bytes and knows the
//     media type and disposition of what it produces.
//   - Generate: the orchestration shared by every format. It fetches the
//     records from a Source once, rejects an empty collection and hands the
//     records to the encoder.
//   - Registry: maps a format identifier such as "csv" to an Encoder.
//
// Design decision: Generate is a plain function parameterized by a Source and
// an Encoder instead of a base type that every format embeds. Formats only
// implement encoding; the fetch, validate and error normalization steps live
// in one place.
//
// Encoders are immutable after construction and safe for concurrent use.
// Every per-call buffer is local to Encode.
package report
