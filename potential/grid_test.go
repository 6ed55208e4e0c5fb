package potential_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/galdyn/potgrid/interp"
	"github.com/galdyn/potgrid/potential"
)

// interpArgs describes a 2x2 lattice over [0,10]x[-5,5] holding a constant
// value, so the interpolated potential is that constant everywhere inside.
func interpArgs(v float64) []float64 {
	return []float64{2, 2, 0, 10, -5, 5, v, v, v, v}
}

var _ = Describe("Grid and paired walkers", func() {
	It("should produce an all-zero grid for zero-amplitude components", func() {
		rs := []float64{0.5, 1, 2}
		zs := []float64{-1, 0, 1, 2}
		out := make([]float64, len(rs)*len(zs))

		types := []int{potential.TypeMiyamotoNagai, potential.TypeMiyamotoNagai}
		args := []float64{0, 1, 0.5, 0, 3, 0.2}

		err := potential.CalcPotential(rs, zs, types, args, out)

		Expect(err).To(BeNil())
		for _, v := range out {
			Expect(v).To(Equal(0.0))
		}
	})

	It("should write the grid in row-major order", func() {
		rs := []float64{3, 4}
		zs := []float64{0, 4, 12}
		out := make([]float64, 6)

		// A point-mass-like Miyamoto-Nagai (a=0, b=0) depends only on the
		// spherical radius, so every expected entry is -1/sqrt(R^2+z^2).
		types := []int{potential.TypeMiyamotoNagai}
		args := []float64{1, 0, 0}

		err := potential.CalcPotential(rs, zs, types, args, out)

		Expect(err).To(BeNil())

		expected := [][2]float64{
			{3, 0}, {3, 4}, {3, 12},
			{4, 0}, {4, 4}, {4, 12},
		}
		for k, rz := range expected {
			Expect(out[k]).To(Equal(
				-1 / math.Sqrt(rz[0]*rz[0]+rz[1]*rz[1])))
		}
	})

	It("should agree bit-identically with paired evaluation", func() {
		rs := []float64{0.5, 1, 2, 4}
		zs := []float64{-2, 0, 3}
		out := make([]float64, len(rs)*len(zs))

		types := []int{
			potential.TypeMiyamotoNagai,
			potential.TypeNFW,
			potential.TypeLogarithmicHalo,
		}
		args := []float64{2, 0.5, 0.3, 1.5, 2, 1, 0.1, 0.9}

		err := potential.CalcPotential(rs, zs, types, args, out)
		Expect(err).To(BeNil())

		for i, r := range rs {
			for j, z := range zs {
				single := make([]float64, 1)
				err := potential.EvalPotential(
					[]float64{r}, []float64{z}, types, args, single)

				Expect(err).To(BeNil())
				Expect(single[0]).To(Equal(out[i*len(zs)+j]))
			}
		}
	})

	It("should be idempotent across identical invocations", func() {
		rs := []float64{1, 2, 3}
		zs := []float64{-1, 1}
		types := []int{potential.TypeInterpRZ, potential.TypeNFW}
		args := append(interpArgs(-2), 1, 3)

		out1 := make([]float64, 6)
		out2 := make([]float64, 6)

		Expect(potential.CalcPotential(rs, zs, types, args, out1)).To(BeNil())
		Expect(potential.CalcPotential(rs, zs, types, args, out2)).To(BeNil())

		Expect(out2).To(Equal(out1))
	})

	It("should match the serial walker when run in parallel", func() {
		rs := make([]float64, 37)
		zs := make([]float64, 11)
		for i := range rs {
			rs[i] = 0.1 + float64(i)*0.25
		}
		for j := range zs {
			zs[j] = -2 + float64(j)*0.4
		}

		types := []int{potential.TypeMiyamotoNagai, potential.TypeNFW}
		args := []float64{1, 0.5, 0.3, 2, 1.5}

		serial := make([]float64, len(rs)*len(zs))
		parallel := make([]float64, len(rs)*len(zs))

		Expect(potential.CalcPotential(rs, zs, types, args, serial)).
			To(BeNil())
		Expect(potential.CalcPotentialParallel(rs, zs, types, args, parallel)).
			To(BeNil())

		Expect(parallel).To(Equal(serial))
	})

	It("should report unsupported type codes without crashing", func() {
		rs := []float64{1, 2}
		zs := []float64{0, 1}
		types := []int{-1}
		args := []float64{}

		gridOut := make([]float64, 4)
		err := potential.CalcPotential(rs, zs, types, args, gridOut)
		Expect(err).To(HaveOccurred())
		Expect(potential.Status(err)).To(Equal(potential.StatusUnsupportedType))

		pairOut := make([]float64, 2)
		err = potential.EvalPotential(rs, zs, types, args, pairOut)
		Expect(err).To(HaveOccurred())
		Expect(potential.Status(err)).To(Equal(potential.StatusUnsupportedType))
	})

	It("should report domain errors and keep earlier output in place", func() {
		rs := []float64{1, 20} // the second row leaves the lattice
		zs := []float64{0, 1}
		types := []int{potential.TypeInterpRZ}
		args := interpArgs(-7)

		out := []float64{99, 99, 99, 99}
		err := potential.CalcPotential(rs, zs, types, args, out)

		Expect(err).To(HaveOccurred())
		Expect(potential.Status(err)).To(Equal(potential.StatusDomain))

		// The first row completed before the failure and stays written.
		Expect(out[0]).To(BeNumerically("~", -7.0, 1e-12))
		Expect(out[1]).To(BeNumerically("~", -7.0, 1e-12))
		Expect(out[2]).To(Equal(99.0))
		Expect(out[3]).To(Equal(99.0))
	})

	It("should leak no auxiliary resources across mixed calls", func() {
		accBase := interp.LiveAccels()
		tabBase := interp.LiveTables()

		rs := []float64{1, 2}
		zs := []float64{0, 1}
		out := make([]float64, 4)

		calls := []struct {
			types []int
			args  []float64
		}{
			// success with interpolation resources
			{[]int{potential.TypeInterpRZ}, interpArgs(1)},
			// parse failure after an interpolated entry was built
			{[]int{potential.TypeInterpRZ, -1}, interpArgs(1)},
			// domain failure during evaluation: lattice excludes the grid
			{[]int{potential.TypeInterpRZ},
				[]float64{2, 2, 5, 10, -5, 5, 1, 1, 1, 1}},
			// plain success
			{[]int{potential.TypeMiyamotoNagai}, []float64{1, 1, 1}},
		}

		for _, call := range calls {
			_ = potential.CalcPotential(rs, zs, call.types, call.args, out)

			Expect(interp.LiveAccels()).To(Equal(accBase))
			Expect(interp.LiveTables()).To(Equal(tabBase))
		}
	})
})
