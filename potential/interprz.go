package potential

import (
	"errors"
	"fmt"

	"github.com/galdyn/potgrid/interp"
)

func init() {
	Register(TypeInterpRZ, newInterpRZ)
}

// interpRZ evaluates a potential from a precomputed table over a regular
// (R, z) lattice. Its parameter block is self-describing:
//
//	nr, nz, rMin, rMax, zMin, zMax, then nr*nz row-major table values.
//
// The component owns both a table and a lookup accelerator, and releases
// them when closed.
type interpRZ struct {
	table *interp.Table2D
	acc   *interp.Accel
}

func newInterpRZ(args *ArgReader) (Potential, error) {
	nr := args.Int()
	nz := args.Int()
	rMin, rMax := args.Float(), args.Float()
	zMin, zMax := args.Float(), args.Float()

	if nr < 2 || nz < 2 {
		return nil, fmt.Errorf(
			"interpolated potential needs a %d x %d lattice of at least 2 x 2",
			nr, nz)
	}

	table, err := interp.NewTable2D(
		linspace(rMin, rMax, nr),
		linspace(zMin, zMax, nz),
		args.Floats(nr*nz))
	if err != nil {
		return nil, err
	}

	return &interpRZ{table: table, acc: interp.NewAccel()}, nil
}

func (p *interpRZ) At(r, z float64) (float64, error) {
	v, err := p.table.At(r, z, p.acc)
	if err != nil {
		var oor interp.ErrOutOfRange
		if errors.As(err, &oor) {
			return 0, &DomainError{
				R: r, Z: z,
				Reason: "coordinate outside the interpolation lattice",
			}
		}

		return 0, err
	}

	return v, nil
}

func (p *interpRZ) Close() {
	p.acc.Close()
	p.table.Close()
}

func linspace(lo, hi float64, n int) []float64 {
	axis := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range axis {
		axis[i] = lo + float64(i)*step
	}
	axis[n-1] = hi

	return axis
}
