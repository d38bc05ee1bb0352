// Package pipeline streams read pairs through per-worker Stitchers and calls
// a visit callback with each result in input order.
//
// The only contract to implement is Stitcher (Stitch).
// This keeps the pipeline swappable and testable.
package pipeline
