package potential

// A Composite is an ordered list of potential components whose value at a
// coordinate is the sum of every component's contribution. A composite
// lives for exactly one evaluation call.
type Composite []Potential

// At sums the contribution of every component at (R, z). The first domain
// error aborts the fold. NaN and infinities produced by components
// propagate through the sum untouched.
func (c Composite) At(r, z float64) (float64, error) {
	total := 0.0

	for _, p := range c {
		v, err := p.At(r, z)
		if err != nil {
			return 0, err
		}

		total += v
	}

	return total, nil
}

// Close releases every component's auxiliary resources. It works on a
// partially parsed composite, so components built before a parse failure
// are still reclaimed. Closing an empty or nil composite is a no-op.
func (c Composite) Close() {
	for _, p := range c {
		p.Close()
	}
}
