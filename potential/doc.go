// Package potential evaluates composite gravitational potentials on
// cylindrical (R, z) coordinates.
//
// A composite is described by a list of integer type codes plus a flat
// parameter buffer. Parsing the description produces a call-scoped list of
// component evaluators, some of which own auxiliary interpolation resources.
// The grid and paired walkers sum every component's contribution at each
// requested coordinate, and all component resources are released before the
// call returns, on every exit path.
package potential
