package potential

import (
	"log"
	"runtime"
	"sync"
)

// CalcPotentialParallel is CalcPotential with the outer R axis partitioned
// across up to GOMAXPROCS workers. Each worker parses its own composite and
// keeps a private scratch row, so no evaluator state is shared; workers
// write disjoint row ranges of out. The result is identical to the serial
// walker.
//
// On failure the first error in worker order is returned. Every worker's
// composite is released before return.
func CalcPotentialParallel(rs, zs []float64, types []int, args []float64,
	out []float64) error {
	if len(out) != len(rs)*len(zs) {
		log.Panicf("output buffer holds %d entries, grid needs %d",
			len(out), len(rs)*len(zs))
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(rs) {
		numWorkers = len(rs)
	}

	if numWorkers <= 1 {
		return CalcPotential(rs, zs, types, args, out)
	}

	nz := len(zs)
	errs := make([]error, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		lo := w * len(rs) / numWorkers
		hi := (w + 1) * len(rs) / numWorkers

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			composite, err := Parse(types, args)
			defer composite.Close()
			if err != nil {
				errs[w] = err
				return
			}

			errs[w] = walkGrid(
				composite, rs[lo:hi], zs, out[lo*nz:hi*nz], nil)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
