package symbolic

import (
	"errors"
	"fmt"
)

var (
	// ErrNonElementary indicates the integrand or its antiderivative leaves the
	// exact trigonometric class, e.g. sin(x) at a bound that is not a multiple of π/2.
	ErrNonElementary = errors.New("symbolic: no closed form in supported class")

	// ErrUnsupportedBound indicates an integration bound that is not a rational multiple of π.
	ErrUnsupportedBound = errors.New("symbolic: bound is not a rational multiple of pi")

	// ErrUnboundSymbol indicates evaluation of a symbol with no binding.
	ErrUnboundSymbol = errors.New("symbolic: symbol has no binding")

	// ErrAssumption indicates a binding that contradicts the symbol's assumptions.
	ErrAssumption = errors.New("symbolic: binding violates symbol assumptions")
)

// IntegrationError wraps an error with the integral that produced it.
type IntegrationError struct {
	Integrand string
	Lower     Scalar
	Upper     Scalar
	Wrapped   error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integrate %s over [%s, %s]: %v", e.Integrand, e.Lower, e.Upper, e.Wrapped)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
