// Package writers turns a finished qc.Summary into serialized reports.
//
// Design:
//   • Writers own all presentation knowledge (JSON, HTML, text).
//   • qc stays domain-only; the app layer only picks a format and a destination.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
