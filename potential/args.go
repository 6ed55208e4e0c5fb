package potential

import "log"

// An ArgReader is a bounds-checked cursor over the flat parameter buffer.
// Each constructor consumes exactly the parameters its type defines; the
// next constructor continues where the previous one stopped.
type ArgReader struct {
	buf []float64
	pos int
}

// NewArgReader wraps a flat parameter buffer. The reader does not copy the
// buffer and never writes to it.
func NewArgReader(buf []float64) *ArgReader {
	return &ArgReader{buf: buf}
}

// Float consumes the next parameter. Reading past the end of the buffer is
// a caller contract violation and panics, like an out-of-bounds slice
// access would.
func (r *ArgReader) Float() float64 {
	if r.pos >= len(r.buf) {
		log.Panicf("parameter buffer exhausted at offset %d", r.pos)
	}

	v := r.buf[r.pos]
	r.pos++

	return v
}

// Int consumes the next parameter and truncates it to an integer. Counts
// and sizes ride in the float buffer this way.
func (r *ArgReader) Int() int {
	return int(r.Float())
}

// Floats consumes the next n parameters and returns them as a copy, so the
// caller may retain the slice beyond the life of the buffer.
func (r *ArgReader) Floats(n int) []float64 {
	if r.pos+n > len(r.buf) {
		log.Panicf("parameter buffer exhausted: need %d at offset %d, have %d",
			n, r.pos, len(r.buf)-r.pos)
	}

	out := make([]float64, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n

	return out
}

// Remaining returns the number of unconsumed parameters.
func (r *ArgReader) Remaining() int {
	return len(r.buf) - r.pos
}
