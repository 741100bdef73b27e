// Package server exposes report generation over HTTP.
//
// Routes:
//
//	GET /reports            list the supported format identifiers
//	GET /reports/{format}   generate a report in the given format
//	GET /healthz            liveness check
//	GET /metrics            Prometheus metrics
//
// The router is built with chi. Requests pass through request ID, real IP,
// structured logging, panic recovery and, when configured, per-client rate
// limiting. Errors are returned as {"error":{"code":...,"message":...}}.
package server
