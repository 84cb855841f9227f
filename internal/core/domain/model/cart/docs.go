// Package cart implements the buyer's pre-checkout selection: an
// insertion-ordered set of product snapshots with quantities and a total
// that is recomputed on every read.
package cart
