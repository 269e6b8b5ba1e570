// Package batting implements descriptive batting statistics over per-season
// batting records: the three standard ratio metrics (batting average, on-base
// percentage, slugging percentage), season filtering, career aggregation, and
// top-N ranking by a chosen metric.
//
// Every operation is a stateless, single-pass transformation over in-memory
// records. Zero denominators in the ratio metrics are treated as "no
// opportunity" and produce 0.0 rather than an error; the only halting
// condition is requesting a metric by an unrecognized name.
//
// # Components
//
//   - metrics.go: pure ratio metric functions and the named metric registry
//   - filter.go: season filtering
//   - aggregate.go: career aggregation and per-player grouping
//   - rank.go: qualification cutoff and top-N ranking
package batting
