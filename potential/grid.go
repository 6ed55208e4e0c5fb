package potential

import "log"

// A RowHook observes grid progress. It is called after each completed outer
// row with the row index.
type RowHook func(i int)

// CalcPotential evaluates the composite described by types and args on the
// outer product of rs and zs, writing into out in row-major order:
// out[i*len(zs)+j] holds the value at (rs[i], zs[j]).
//
// out must hold exactly len(rs)*len(zs) entries and is never resized. On a
// nonzero-status failure, entries written before the failing point are left
// in place and must not be trusted past it. All component resources are
// released before return, on every exit path.
func CalcPotential(rs, zs []float64, types []int, args []float64,
	out []float64) error {
	return CalcPotentialHooked(rs, zs, types, args, out, nil)
}

// CalcPotentialHooked is CalcPotential with a progress hook. A nil hook is
// allowed.
func CalcPotentialHooked(rs, zs []float64, types []int, args []float64,
	out []float64, hook RowHook) error {
	if len(out) != len(rs)*len(zs) {
		log.Panicf("output buffer holds %d entries, grid needs %d",
			len(out), len(rs)*len(zs))
	}

	composite, err := Parse(types, args)
	defer composite.Close()
	if err != nil {
		return err
	}

	return walkGrid(composite, rs, zs, out, hook)
}

// walkGrid fills one row at a time into a scratch buffer that is allocated
// once and reused across all rows, then copies the completed row into the
// output. A row that fails mid-way is never copied.
func walkGrid(composite Composite, rs, zs, out []float64, hook RowHook) error {
	nz := len(zs)
	row := make([]float64, nz)

	for i, r := range rs {
		for j, z := range zs {
			v, err := composite.At(r, z)
			if err != nil {
				return err
			}

			row[j] = v
		}

		copy(out[i*nz:(i+1)*nz], row)

		if hook != nil {
			hook(i)
		}
	}

	return nil
}

// EvalPotential evaluates the composite at paired coordinates:
// out[i] holds the value at (rs[i], zs[i]). rs, zs, and out must all have
// the same length. Resource and failure semantics match CalcPotential.
func EvalPotential(rs, zs []float64, types []int, args []float64,
	out []float64) error {
	if len(zs) != len(rs) || len(out) != len(rs) {
		log.Panicf("paired evaluation needs equal lengths, got %d/%d/%d",
			len(rs), len(zs), len(out))
	}

	composite, err := Parse(types, args)
	defer composite.Close()
	if err != nil {
		return err
	}

	for i := range rs {
		v, err := composite.At(rs[i], zs[i])
		if err != nil {
			return err
		}

		out[i] = v
	}

	return nil
}
