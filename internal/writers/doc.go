// Package writers turns stitching results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTQ records, TSV logs).
//   • core/stitch stays domain-only; pipeline stays orchestration-only.
//   • A single writer goroutine owns every sink, so rows in all outputs
//     follow input order.
package writers
