// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at init through
// promauto. HTTP collectors are fed by the server middleware; analysis,
// export and ledger collectors by the analysis service, so CLI runs inside a
// long-lived process are counted the same way as HTTP runs.
package metrics
