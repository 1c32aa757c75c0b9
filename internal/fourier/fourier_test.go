package fourier_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fourier/internal/fourier"
)

var _ = Describe("StepFunction", func() {
	DescribeTable("maps x to 0 below pi and 1 from pi on",
		func(x, want float64) {
			Expect(fourier.StepFunction(x)).To(Equal(want))
		},
		Entry("origin", 0.0, 0.0),
		Entry("just below pi", math.Pi-1e-12, 0.0),
		Entry("pi", math.Pi, 1.0),
		Entry("three halves pi", 1.5*math.Pi, 1.0),
		Entry("two pi", 2*math.Pi, 1.0),
	)

	It("is sampled pointwise over the grid", func() {
		grid := fourier.Grid(8)
		target := fourier.Sample(fourier.StepFunction, grid)
		Expect(target).To(HaveLen(8))
		for l, x := range grid {
			Expect(target[l]).To(Equal(fourier.StepFunction(x)))
		}
	})
})

var _ = Describe("Grid", func() {
	It("spans [0, 2pi] inclusive", func() {
		grid := fourier.Grid(fourier.DefaultPoints)
		Expect(grid).To(HaveLen(400))
		Expect(grid[0]).To(Equal(0.0))
		Expect(grid[len(grid)-1]).To(BeNumerically("~", 2*math.Pi, 1e-12))
		for l := 1; l < len(grid); l++ {
			Expect(grid[l]).To(BeNumerically(">", grid[l-1]))
		}
	})

	It("handles degenerate sizes", func() {
		Expect(fourier.Grid(0)).To(BeEmpty())
		Expect(fourier.Grid(1)).To(Equal([]float64{0}))
		Expect(fourier.Grid(2)).To(HaveLen(2))
	})
})

var _ = Describe("ComputeCoefficients", func() {
	It("reproduces the exact notebook values for two terms", func() {
		c, err := fourier.ComputeCoefficients(fourier.DefaultTerms)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(2))
		Expect(c.A[0].String()).To(Equal("0"))
		Expect(c.A[1].String()).To(Equal("-2"))
		Expect(c.B[0].String()).To(Equal("pi"))
		Expect(c.B[1].String()).To(Equal("0"))
	})

	It("has odd sine terms -2/k and vanishing higher cosine terms", func() {
		c, err := fourier.ComputeCoefficients(8)
		Expect(err).NotTo(HaveOccurred())
		a, b, err := c.Floats()
		Expect(err).NotTo(HaveOccurred())
		for k := 1; k < 8; k++ {
			want := 0.0
			if k%2 == 1 {
				want = -2 / float64(k)
			}
			Expect(a[k]).To(BeNumerically("~", want, 1e-15))
			Expect(b[k]).To(BeZero())
		}
		Expect(b[0]).To(BeNumerically("~", math.Pi, 1e-15))
	})

	It("returns sequences of exactly the requested length", func() {
		for terms := 0; terms <= 6; terms++ {
			c, err := fourier.ComputeCoefficients(terms)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.A).To(HaveLen(terms))
			Expect(c.B).To(HaveLen(terms))
		}
	})

	It("rejects a negative term count", func() {
		_, err := fourier.ComputeCoefficients(-1)
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))
	})
})

var _ = Describe("Reconstruct", func() {
	var grid []float64

	BeforeEach(func() {
		grid = fourier.Grid(5)
	})

	It("adds b_k and cos(kx) in notebook mode", func() {
		c, err := fourier.ComputeCoefficients(2)
		Expect(err).NotTo(HaveOccurred())
		series, err := fourier.Reconstruct(fourier.ModeNotebook, c, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(5))
		for l, x := range grid {
			want := (math.Pi + 1 + math.Cos(x)) / (2 * math.Pi)
			Expect(series[l]).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("yields zeros when there are no terms", func() {
		c, err := fourier.ComputeCoefficients(0)
		Expect(err).NotTo(HaveOccurred())
		for _, mode := range []fourier.Mode{fourier.ModeNotebook, fourier.ModeCanonical} {
			series, err := fourier.Reconstruct(mode, c, grid)
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(Equal([]float64{0, 0, 0, 0, 0}))
		}
	})

	It("converges to the square wave in canonical mode", func() {
		c, err := fourier.ComputeCoefficients(201)
		Expect(err).NotTo(HaveOccurred())
		series, err := fourier.Reconstruct(fourier.ModeCanonical, c, []float64{math.Pi / 2, 3 * math.Pi / 2, math.Pi})
		Expect(err).NotTo(HaveOccurred())
		Expect(series[0]).To(BeNumerically("~", 0, 0.01))
		Expect(series[1]).To(BeNumerically("~", 1, 0.01))
		Expect(series[2]).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("rejects mismatched coefficient sequences", func() {
		c, err := fourier.ComputeCoefficients(3)
		Expect(err).NotTo(HaveOccurred())
		c.B = c.B[:2]
		_, err = fourier.Reconstruct(fourier.ModeNotebook, c, grid)
		Expect(err).To(MatchError(fourier.ErrLengthMismatch))
	})

	It("rejects unknown modes", func() {
		_, err := fourier.Reconstruct(fourier.Mode("fft"), fourier.Coefficients{}, grid)
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))
	})
})

var _ = Describe("VerifyOrthogonality", func() {
	It("proves the three relations", func() {
		proofs, err := fourier.VerifyOrthogonality()
		Expect(err).NotTo(HaveOccurred())
		Expect(proofs).To(HaveLen(3))

		results := map[string]string{}
		for _, p := range proofs {
			Expect(p.Holds).To(BeTrue(), p.Name)
			results[p.Name] = p.Result.String()
		}
		Expect(results).To(Equal(map[string]string{
			"sin-sin": "pi*KroneckerDelta(i, j)",
			"cos-cos": "pi*KroneckerDelta(i, j)",
			"sin-cos": "0",
		}))
		Expect(fourier.CheckProofs(proofs)).To(Succeed())
	})

	It("agrees with numeric quadrature", func() {
		proofs, err := fourier.VerifyOrthogonality()
		Expect(err).NotTo(HaveOccurred())
		dev, err := fourier.CrossCheck(proofs, 6, 64)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev).To(BeNumerically("<", 1e-9))
	})

	It("reports a relation that does not hold", func() {
		proofs, err := fourier.VerifyOrthogonality()
		Expect(err).NotTo(HaveOccurred())
		proofs[2].Holds = false
		Expect(fourier.CheckProofs(proofs)).To(MatchError(fourier.ErrProofFailed))
	})

	It("rejects an empty cross-check range", func() {
		_, err := fourier.CrossCheck(nil, 0, 64)
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))
	})
})

var _ = Describe("Run", func() {
	It("runs the default notebook pipeline", func() {
		res, err := fourier.Run(context.Background(), fourier.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Proofs).To(HaveLen(3))
		Expect(res.Grid).To(HaveLen(fourier.DefaultPoints))
		Expect(res.Target).To(HaveLen(fourier.DefaultPoints))
		Expect(res.Series).To(HaveLen(fourier.DefaultPoints))
		Expect(res.Coefficients.Len()).To(Equal(fourier.DefaultTerms))
		Expect(res.Metrics).To(HaveKey("rms_error"))
		Expect(res.Metrics).To(HaveKey("l2_error"))
	})

	DescribeTable("keeps lengths and finiteness for any size",
		func(points, terms int, mode fourier.Mode) {
			res, err := fourier.Run(context.Background(), fourier.Config{Points: points, Terms: terms, Mode: mode})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Grid).To(HaveLen(points))
			Expect(res.Series).To(HaveLen(points))
			Expect(res.Coefficients.A).To(HaveLen(terms))
			Expect(res.Coefficients.B).To(HaveLen(terms))
			for _, v := range res.Series {
				Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse())
			}
		},
		Entry("empty", 0, 0, fourier.ModeNotebook),
		Entry("single point", 1, 3, fourier.ModeNotebook),
		Entry("notebook defaults", 400, 2, fourier.ModeNotebook),
		Entry("many notebook terms", 64, 40, fourier.ModeNotebook),
		Entry("canonical", 257, 25, fourier.ModeCanonical),
	)

	It("rejects invalid configuration", func() {
		_, err := fourier.Run(context.Background(), fourier.Config{Points: -1, Terms: 2})
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))

		_, err = fourier.Run(context.Background(), fourier.Config{Points: 10, Terms: 2, Mode: "bogus"})
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fourier.Run(ctx, fourier.DefaultConfig())
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("ParseMode", func() {
	It("defaults empty input to notebook", func() {
		Expect(fourier.ParseMode("")).To(Equal(fourier.ModeNotebook))
		Expect(fourier.ParseMode("canonical")).To(Equal(fourier.ModeCanonical))
		_, err := fourier.ParseMode("x")
		Expect(err).To(MatchError(fourier.ErrInvalidConfig))
	})
})
