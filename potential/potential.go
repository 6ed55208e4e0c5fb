package potential

// A Potential produces a scalar gravitational potential value at a
// cylindrical coordinate.
type Potential interface {
	// At evaluates the potential at (R, z). Implementations return a
	// *DomainError when the coordinate is outside their valid domain.
	// Non-finite values are returned as-is, never masked.
	At(r, z float64) (float64, error)

	// Close releases any auxiliary resources the component owns. It is
	// called exactly once per component, and must tolerate being the only
	// cleanup a partially failed call performs.
	Close()
}

// A Constructor builds one potential component, consuming its parameters
// from the reader. A constructor that allocates auxiliary resources hands
// their ownership to the returned component.
type Constructor func(args *ArgReader) (Potential, error)
