package potential

import "math"

func init() {
	Register(TypeMiyamotoNagai, newMiyamotoNagai)
}

// miyamotoNagai is the flattened-disk potential of Miyamoto & Nagai (1975):
//
//	Phi(R, z) = -amp / sqrt(R^2 + (a + sqrt(z^2 + b^2))^2)
type miyamotoNagai struct {
	amp, a, b float64
}

func newMiyamotoNagai(args *ArgReader) (Potential, error) {
	return &miyamotoNagai{
		amp: args.Float(),
		a:   args.Float(),
		b:   args.Float(),
	}, nil
}

func (p *miyamotoNagai) At(r, z float64) (float64, error) {
	s := p.a + math.Sqrt(z*z+p.b*p.b)

	return -p.amp / math.Sqrt(r*r+s*s), nil
}

func (p *miyamotoNagai) Close() {}
