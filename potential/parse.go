package potential

// Parse builds a composite from type codes and a flat parameter buffer.
// Each code dispatches to its registered constructor, which consumes that
// component's parameters from the shared reader.
//
// On failure, Parse returns the components constructed so far along with
// the error. The caller must Close the returned composite in both the
// success and the failure case; partial work is never silently dropped,
// it is handed back so its resources can be reclaimed.
func Parse(types []int, args []float64) (Composite, error) {
	list := make(Composite, 0, len(types))
	reader := NewArgReader(args)

	for i, code := range types {
		ctor, ok := registry[code]
		if !ok {
			return list, &UnsupportedTypeError{Code: code, Index: i}
		}

		p, err := ctor(reader)
		if err != nil {
			return list, err
		}

		list = append(list, p)
	}

	return list, nil
}
