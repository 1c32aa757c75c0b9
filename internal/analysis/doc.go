// Package analysis provides spectral checks on sampled series.
//
//   - [PowerSpectrum]: magnitude spectrum of a real signal
//   - [PeakBins]: strongest non-DC bins of a spectrum
//   - [EstimateCoefficients]: sine and cosine projections from one FFT
//   - [Compare]: per-index deviation between an estimate and exact values
//
// # Coefficient Estimate
//
// For samples f(x_n) on the periodic grid x_n = 2πn/M the transform
// X_k = Σ f(x_n)·e^{-ikx_n} yields rectangle-rule approximations of the
// projections over one period:
//
//	a_k ≈ -(2π/M)·Im X_k
//	b_k ≈  (2π/M)·Re X_k
package analysis
