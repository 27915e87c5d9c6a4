package gridmath_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/terrapix/gridmath"
)

var _ = Describe("DataResolutionAndOffset", func() {
	xx := []float64{1, 2, 3, 4}

	It("infers the slope and the low edge from two or more samples", func() {
		res, off, err := gridmath.DataResolutionAndOffset(xx, nil)
		Expect(err).To(BeNil())
		Expect(res).To(Equal(1.0))
		Expect(off).To(Equal(0.5))

		res, off, err = gridmath.DataResolutionAndOffset(xx[1:], nil)
		Expect(err).To(BeNil())
		Expect(res).To(Equal(1.0))
		Expect(off).To(Equal(xx[1] - 0.5))
	})

	It("keeps the sign of a decreasing axis", func() {
		res, off, err := gridmath.DataResolutionAndOffset([]float64{4, 3, 2, 1}, nil)
		Expect(err).To(BeNil())
		Expect(res).To(Equal(-1.0))
		Expect(off).To(Equal(4.5))
	})

	It("uses the fallback resolution for a single sample", func() {
		fallback := 1.0
		res, off, err := gridmath.DataResolutionAndOffset(xx[:1], &fallback)
		Expect(err).To(BeNil())
		Expect(res).To(Equal(1.0))
		Expect(off).To(Equal(0.5))
	})

	It("fails on a single sample without a fallback", func() {
		_, _, err := gridmath.DataResolutionAndOffset(xx[:1], nil)
		Expect(err).To(HaveOccurred())
	})

	It("fails on an empty sequence", func() {
		_, _, err := gridmath.DataResolutionAndOffset(nil, nil)
		Expect(err).To(HaveOccurred())
	})
})
