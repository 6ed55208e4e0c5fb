package potential

import "math"

func init() {
	Register(TypeNFW, newNFW)
}

// nfw is the Navarro-Frenk-White halo potential:
//
//	Phi(R, z) = -amp * ln(1 + r/a) / r,  r = sqrt(R^2 + z^2)
type nfw struct {
	amp, a float64
}

func newNFW(args *ArgReader) (Potential, error) {
	return &nfw{
		amp: args.Float(),
		a:   args.Float(),
	}, nil
}

func (p *nfw) At(r, z float64) (float64, error) {
	rad := math.Sqrt(r*r + z*z)

	if rad <= 0 {
		return 0, &DomainError{
			R: r, Z: z,
			Reason: "NFW requires a positive spherical radius",
		}
	}

	return -p.amp * math.Log(1+rad/p.a) / rad, nil
}

func (p *nfw) Close() {}
