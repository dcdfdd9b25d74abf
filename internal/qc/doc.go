// Package qc aggregates read-level quality-control statistics in a single
// streaming pass and finalizes them into a Summary.
//
// The package only sees bases and decoded quality scores; decoding lives in
// internal/fastq and presentation in internal/output.
package qc
