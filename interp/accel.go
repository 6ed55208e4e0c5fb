package interp

import "log"

// An Accel remembers the bracketing interval found by the previous lookup on
// a monotonically increasing axis. Consecutive lookups at nearby coordinates
// hit the cache and skip the binary search entirely.
type Accel struct {
	cache  int
	hits   uint64
	misses uint64
	closed bool
}

// NewAccel creates an accelerator with an empty cache. The caller owns the
// accelerator and must release it with Close.
func NewAccel() *Accel {
	liveAccels.Add(1)
	return &Accel{}
}

// Find returns the index i such that axis[i] <= x <= axis[i+1]. The second
// return value is false when x falls outside the axis range. The axis must
// be strictly increasing with at least two points.
func (a *Accel) Find(axis []float64, x float64) (int, bool) {
	if a.closed {
		log.Panic("lookup through a closed accelerator")
	}

	if x < axis[0] || x > axis[len(axis)-1] {
		return 0, false
	}

	if a.cache < len(axis)-1 &&
		axis[a.cache] <= x && x <= axis[a.cache+1] {
		a.hits++
		return a.cache, true
	}

	a.misses++

	lo, hi := 0, len(axis)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x < axis[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	a.cache = lo

	return lo, true
}

// Stats reports the number of cache hits and misses since creation.
func (a *Accel) Stats() (hits, misses uint64) {
	return a.hits, a.misses
}

// Close releases the accelerator. Closing twice is a no-op.
func (a *Accel) Close() {
	if a.closed {
		return
	}

	a.closed = true
	liveAccels.Add(-1)
}
