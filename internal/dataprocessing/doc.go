// Package dataprocessing is the input boundary for batting analysis: it reads
// tabular batting files (CSV or xlsx workbooks) and master player files into
// validated domain records. Column names and the CSV separator are
// configurable; malformed rows fail the parse with a PARSING error naming the
// row, so downstream components always see well-typed records.
package dataprocessing
