package potential

import "log"

// Type codes of the built-in potentials. The registry is open: external
// packages may register additional codes at init time.
const (
	TypeMiyamotoNagai   = 0
	TypeLogarithmicHalo = 1
	TypeNFW             = 2
	TypeInterpRZ        = 3
)

var registry = map[int]Constructor{}

// Register binds a type code to a constructor. Registration is meant to
// happen during package initialization; re-registering a code is a
// programmer error.
func Register(code int, c Constructor) {
	if _, dup := registry[code]; dup {
		log.Panicf("potential type %d registered twice", code)
	}

	registry[code] = c
}
