package fourier

import "errors"

var (
	// ErrInvalidConfig indicates a negative sample or term count or an unknown mode.
	ErrInvalidConfig = errors.New("fourier: invalid configuration")

	// ErrNonFinite indicates a reconstructed value that is NaN or Inf.
	ErrNonFinite = errors.New("fourier: non-finite series value")

	// ErrProofFailed indicates an orthogonality integral that did not match its expected value.
	ErrProofFailed = errors.New("fourier: orthogonality proof failed")

	// ErrLengthMismatch indicates coefficient or sample sequences of unequal length.
	ErrLengthMismatch = errors.New("fourier: sequence length mismatch")
)
