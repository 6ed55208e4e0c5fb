package potential

import "math"

func init() {
	Register(TypeLogarithmicHalo, newLogarithmicHalo)
}

// logarithmicHalo is the flattened logarithmic halo potential:
//
//	Phi(R, z) = amp/2 * ln(R^2 + (z/q)^2 + core^2)
type logarithmicHalo struct {
	amp, core, q float64
}

func newLogarithmicHalo(args *ArgReader) (Potential, error) {
	return &logarithmicHalo{
		amp:  args.Float(),
		core: args.Float(),
		q:    args.Float(),
	}, nil
}

func (p *logarithmicHalo) At(r, z float64) (float64, error) {
	zq := z / p.q
	arg := r*r + zq*zq + p.core*p.core

	if arg <= 0 {
		return 0, &DomainError{
			R: r, Z: z,
			Reason: "logarithmic halo singular at the origin with zero core",
		}
	}

	return 0.5 * p.amp * math.Log(arg), nil
}

func (p *logarithmicHalo) Close() {}
