package interp

import (
	"fmt"
	"log"
)

// ErrOutOfRange reports a lookup coordinate outside the table's lattice.
type ErrOutOfRange struct {
	R, Z float64
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("coordinate (%g, %g) outside table range", e.R, e.Z)
}

// A Table2D holds precomputed values on an (r, z) lattice and evaluates
// between lattice points by bilinear interpolation. The value buffer is
// row-major: vals[i*len(zs)+j] is the value at (rs[i], zs[j]).
type Table2D struct {
	rs, zs []float64
	vals   []float64
	closed bool
}

// NewTable2D builds a table over the given axes. Both axes must be strictly
// increasing with at least two points, and vals must hold exactly
// len(rs)*len(zs) entries. The caller owns the table and must release it
// with Close.
func NewTable2D(rs, zs, vals []float64) (*Table2D, error) {
	if len(rs) < 2 || len(zs) < 2 {
		return nil, fmt.Errorf("table axes need at least 2 points, got %d x %d",
			len(rs), len(zs))
	}

	if len(vals) != len(rs)*len(zs) {
		return nil, fmt.Errorf("table needs %d values, got %d",
			len(rs)*len(zs), len(vals))
	}

	for i := 1; i < len(rs); i++ {
		if rs[i] <= rs[i-1] {
			return nil, fmt.Errorf("r axis not strictly increasing at %d", i)
		}
	}

	for j := 1; j < len(zs); j++ {
		if zs[j] <= zs[j-1] {
			return nil, fmt.Errorf("z axis not strictly increasing at %d", j)
		}
	}

	liveTables.Add(1)

	return &Table2D{rs: rs, zs: zs, vals: vals}, nil
}

// At interpolates the table value at (r, z). The accelerator caches the
// z-axis bracket, the axis that varies fastest when callers sweep a
// row-major grid. A nil accelerator is allowed and falls back to plain
// binary search.
func (t *Table2D) At(r, z float64, acc *Accel) (float64, error) {
	if t.closed {
		log.Panic("lookup through a closed table")
	}

	i, ok := bisect(t.rs, r)
	if !ok {
		return 0, ErrOutOfRange{R: r, Z: z}
	}

	var j int
	if acc != nil {
		j, ok = acc.Find(t.zs, z)
	} else {
		j, ok = bisect(t.zs, z)
	}
	if !ok {
		return 0, ErrOutOfRange{R: r, Z: z}
	}

	nz := len(t.zs)
	v00 := t.vals[i*nz+j]
	v01 := t.vals[i*nz+j+1]
	v10 := t.vals[(i+1)*nz+j]
	v11 := t.vals[(i+1)*nz+j+1]

	u := (r - t.rs[i]) / (t.rs[i+1] - t.rs[i])
	w := (z - t.zs[j]) / (t.zs[j+1] - t.zs[j])

	v := (1-u)*(1-w)*v00 +
		(1-u)*w*v01 +
		u*(1-w)*v10 +
		u*w*v11

	return v, nil
}

// RangeR returns the inclusive r-axis range covered by the table.
func (t *Table2D) RangeR() (lo, hi float64) {
	return t.rs[0], t.rs[len(t.rs)-1]
}

// RangeZ returns the inclusive z-axis range covered by the table.
func (t *Table2D) RangeZ() (lo, hi float64) {
	return t.zs[0], t.zs[len(t.zs)-1]
}

// Close releases the table. Closing twice is a no-op.
func (t *Table2D) Close() {
	if t.closed {
		return
	}

	t.closed = true
	t.vals = nil
	liveTables.Add(-1)
}

func bisect(axis []float64, x float64) (int, bool) {
	if x < axis[0] || x > axis[len(axis)-1] {
		return 0, false
	}

	lo, hi := 0, len(axis)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x < axis[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo, true
}
