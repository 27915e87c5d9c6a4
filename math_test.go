package gridmath_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/terrapix/gridmath"
)

var _ = Describe("Align", func() {
	It("aligns up to the enclosing multiple", func() {
		Expect(gridmath.AlignUp(32, 16)).To(Equal(32))
		Expect(gridmath.AlignUp(31, 16)).To(Equal(32))
		Expect(gridmath.AlignUp(17, 16)).To(Equal(32))
		Expect(gridmath.AlignUp(9, 3)).To(Equal(9))
		Expect(gridmath.AlignUp(8, 3)).To(Equal(9))
	})

	It("aligns down to the enclosing multiple", func() {
		Expect(gridmath.AlignDown(32, 16)).To(Equal(32))
		Expect(gridmath.AlignDown(31, 16)).To(Equal(16))
		Expect(gridmath.AlignDown(17, 16)).To(Equal(16))
		Expect(gridmath.AlignDown(9, 3)).To(Equal(9))
		Expect(gridmath.AlignDown(8, 3)).To(Equal(6))
	})

	It("brackets x between two consecutive multiples", func() {
		for _, x := range []int{1, 2, 7, 16, 100, 12345} {
			for _, n := range []int{1, 3, 16, 77} {
				lo, hi := gridmath.AlignDown(x, n), gridmath.AlignUp(x, n)
				Expect(lo <= x && x <= hi).To(BeTrue())
				Expect(lo % n).To(Equal(0))
				Expect(hi % n).To(Equal(0))
				Expect(hi - lo).To(BeNumerically("<", 2*n))
			}
		}
	})
})

var _ = Describe("Snapping", func() {
	It("collapses near-zero values", func() {
		Expect(gridmath.MaybeZero(0, 1e-5)).To(Equal(0.0))
		Expect(gridmath.MaybeZero(1e-8, 1e-5)).To(Equal(0.0))
		Expect(gridmath.MaybeZero(-1e-8, 1e-5)).To(Equal(0.0))
		Expect(gridmath.MaybeZero(0.1, 1e-2)).To(Equal(0.1))
	})

	It("collapses near-integer values", func() {
		Expect(gridmath.MaybeInt(37, 1e-6)).To(Equal(37.0))
		Expect(gridmath.MaybeInt(37+1e-8, 1e-6)).To(Equal(37.0))
		Expect(gridmath.MaybeInt(37-1e-8, 1e-6)).To(Equal(37.0))
		Expect(gridmath.MaybeInt(3.4, 1e-6)).To(Equal(3.4))
	})

	It("recognizes near-integer values", func() {
		Expect(gridmath.IsAlmostInt(129, 1e-6)).To(BeTrue())
		Expect(gridmath.IsAlmostInt(129+1e-8, 1e-6)).To(BeTrue())
		Expect(gridmath.IsAlmostInt(-129, 1e-6)).To(BeTrue())
		Expect(gridmath.IsAlmostInt(-129+1e-8, 1e-6)).To(BeTrue())
		Expect(gridmath.IsAlmostInt(0.3, 1e-6)).To(BeFalse())
	})

	It("breaks rounding ties toward +Inf", func() {
		Expect(gridmath.RoundHalfUp(0.5)).To(Equal(1.0))
		Expect(gridmath.RoundHalfUp(-0.5)).To(Equal(0.0))
		Expect(gridmath.RoundHalfUp(-1.5)).To(Equal(-1.0))
	})
})

var _ = Describe("SnapScale", func() {
	It("keeps zero", func() {
		Expect(gridmath.SnapScale(0, gridmath.DefaultTol)).To(Equal(0.0))
	})

	It("snaps near-integer scales", func() {
		Expect(gridmath.SnapScale(1+1e-6, 1e-2)).To(Equal(1.0))
		Expect(gridmath.SnapScale(1-1e-6, 1e-2)).To(Equal(1.0))
		Expect(gridmath.SnapScale(3.478, 1e-6)).To(Equal(3.478))
	})

	It("snaps near-unit-fraction scales", func() {
		Expect(gridmath.SnapScale(0.5+1e-8, 1e-3)).To(Equal(0.5))
		Expect(gridmath.SnapScale(0.5-1e-8, 1e-3)).To(Equal(0.5))
		Expect(gridmath.SnapScale(0.5, 1e-3)).To(Equal(0.5))
		Expect(gridmath.SnapScale(0.6, 1e-8)).To(Equal(0.6))
		Expect(gridmath.SnapScale(-0.25-1e-8, 1e-3)).To(Equal(-0.25))
	})

	It("is idempotent", func() {
		for _, s := range []float64{0, 0.5 + 1e-8, 0.6, 1 - 1e-6, 3.478, -0.25, 7 + 1e-8} {
			for _, tol := range []float64{1e-8, 1e-3} {
				once := gridmath.SnapScale(s, tol)
				Expect(gridmath.SnapScale(once, tol)).To(Equal(once))
			}
		}
	})
})
