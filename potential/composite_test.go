package potential_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/galdyn/potgrid/potential"
)

var _ = Describe("Composite", func() {
	var (
		mockCtrl *gomock.Controller
		p1, p2   *MockPotential
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		p1 = NewMockPotential(mockCtrl)
		p2 = NewMockPotential(mockCtrl)
	})

	It("should sum every component's contribution", func() {
		p1.EXPECT().At(1.0, 2.0).Return(-3.0, nil)
		p2.EXPECT().At(1.0, 2.0).Return(0.5, nil)

		composite := potential.Composite{p1, p2}

		v, err := composite.At(1.0, 2.0)

		Expect(err).To(BeNil())
		Expect(v).To(Equal(-2.5))
	})

	It("should stop folding at the first domain error", func() {
		domainErr := &potential.DomainError{R: 1, Z: 2, Reason: "outside"}
		p1.EXPECT().At(1.0, 2.0).Return(0.0, domainErr)

		composite := potential.Composite{p1, p2}

		_, err := composite.At(1.0, 2.0)

		Expect(err).To(MatchError(domainErr))
	})

	It("should propagate non-finite contributions", func() {
		p1.EXPECT().At(0.0, 0.0).Return(math.Inf(-1), nil)
		p2.EXPECT().At(0.0, 0.0).Return(1.0, nil)

		composite := potential.Composite{p1, p2}

		v, err := composite.At(0.0, 0.0)

		Expect(err).To(BeNil())
		Expect(math.IsInf(v, -1)).To(BeTrue())
	})

	It("should close every component exactly once", func() {
		p1.EXPECT().Close()
		p2.EXPECT().Close()

		composite := potential.Composite{p1, p2}

		composite.Close()
	})
})
