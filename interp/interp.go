// Package interp provides the interpolation primitives used by grid-backed
// potentials: a cached bracketing-index accelerator and a precomputed 2D
// value table. Both are explicitly owned resources that must be released
// with Close.
package interp

import "sync/atomic"

var liveAccels atomic.Int64
var liveTables atomic.Int64

// LiveAccels returns the number of accelerators that have been created but
// not yet closed.
func LiveAccels() int64 {
	return liveAccels.Load()
}

// LiveTables returns the number of tables that have been created but not yet
// closed.
func LiveTables() int64 {
	return liveTables.Load()
}
