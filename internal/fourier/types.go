package fourier

import (
	"fmt"

	"github.com/san-kum/fourier/internal/symbolic"
)

const (
	DefaultPoints = 400
	DefaultTerms  = 2
)

// Mode selects how coefficients are combined into the series.
type Mode string

const (
	// ModeNotebook sums b_k + cos(k·x) and divides by 2π, leaving a_k unused.
	ModeNotebook Mode = "notebook"
	// ModeCanonical is the textbook synthesis b_0/2π + Σ (a_k sin kx + b_k cos kx)/π.
	ModeCanonical Mode = "canonical"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNotebook, "":
		return ModeNotebook, nil
	case ModeCanonical:
		return ModeCanonical, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

type Config struct {
	Points int
	Terms  int
	Mode   Mode
}

func DefaultConfig() Config {
	return Config{
		Points: DefaultPoints,
		Terms:  DefaultTerms,
		Mode:   ModeNotebook,
	}
}

func (c Config) Validate() error {
	if c.Points < 0 {
		return fmt.Errorf("%w: points = %d", ErrInvalidConfig, c.Points)
	}
	if c.Terms < 0 {
		return fmt.Errorf("%w: terms = %d", ErrInvalidConfig, c.Terms)
	}
	_, err := ParseMode(string(c.Mode))
	return err
}

// Coefficients holds the unnormalized sine (A) and cosine (B) projections.
type Coefficients struct {
	A []symbolic.Value
	B []symbolic.Value
}

func (c Coefficients) Len() int { return len(c.A) }

// Floats converts both sequences to float64.
func (c Coefficients) Floats() (a, b []float64, err error) {
	if len(c.A) != len(c.B) {
		return nil, nil, fmt.Errorf("%w: %d sine vs %d cosine coefficients", ErrLengthMismatch, len(c.A), len(c.B))
	}
	a = make([]float64, len(c.A))
	b = make([]float64, len(c.B))
	for k := range c.A {
		if a[k], err = c.A[k].Float64(); err != nil {
			return nil, nil, fmt.Errorf("a_%d: %w", k, err)
		}
		if b[k], err = c.B[k].Float64(); err != nil {
			return nil, nil, fmt.Errorf("b_%d: %w", k, err)
		}
	}
	return a, b, nil
}

// Proof is one orthogonality relation and its evaluated integral.
type Proof struct {
	Name      string
	Integrand symbolic.Expr
	Lower     symbolic.Scalar
	Upper     symbolic.Scalar
	Result    symbolic.Value
	Expected  symbolic.Value
	Holds     bool
}

type Result struct {
	Config       Config
	Proofs       []Proof
	Grid         []float64
	Target       []float64
	Coefficients Coefficients
	Series       []float64
	Metrics      map[string]float64
}
