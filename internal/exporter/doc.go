// Package exporter is the output boundary for batting analysis: it joins
// ranked scores with master player names into leaderboard reports and writes
// them as CSV, JSON, xlsx, or plain display lines. It also exports career
// aggregate tables for reuse as input to later runs.
package exporter
