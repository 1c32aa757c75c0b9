// Package fourier runs the Fourier-series demonstration pipeline.
//
// The pipeline is linear and single-threaded:
//
//   - [VerifyOrthogonality]: exact proofs that sin/cos are orthogonal on [0, 2π]
//   - [StepFunction] and [Sample]: the square-wave target on the sample grid
//   - [ComputeCoefficients]: a_k and b_k by exact integration over [π, 2π]
//   - [Reconstruct]: truncated series on the grid, in [ModeNotebook] or [ModeCanonical]
//   - [Run]: all of the above plus error metrics
//
// # Example
//
//	res, err := fourier.Run(ctx, fourier.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Coefficients.B[0]) // pi
package fourier
