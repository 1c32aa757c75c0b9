package fourier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Run executes the full pipeline: proofs, target sampling, coefficients,
// reconstruction and metrics. Any stage error aborts the run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeNotebook
	}
	res := &Result{Config: cfg}

	proofs, err := VerifyOrthogonality()
	if err != nil {
		return nil, fmt.Errorf("orthogonality: %w", err)
	}
	if err := CheckProofs(proofs); err != nil {
		return nil, err
	}
	res.Proofs = proofs

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Grid = Grid(cfg.Points)
	res.Target = Sample(StepFunction, res.Grid)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Coefficients, err = ComputeCoefficients(cfg.Terms)
	if err != nil {
		return nil, fmt.Errorf("coefficients: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Series, err = Reconstruct(cfg.Mode, res.Coefficients, res.Grid)
	if err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}

	res.Metrics = ErrorMetrics(res.Grid, res.Target, res.Series)
	log.Debug().
		Int("points", cfg.Points).
		Int("terms", cfg.Terms).
		Str("mode", string(cfg.Mode)).
		Float64("rms_error", res.Metrics["rms_error"]).
		Msg("pipeline finished")
	return res, nil
}
