package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/fourier/internal/fourier"
)

// FormatProofs lists each orthogonality relation with its plain and LaTeX result.
func FormatProofs(proofs []fourier.Proof) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("orthogonality on [0, 2π]") + "\n")
	for _, p := range proofs {
		status := ProofHolds.Render("✓")
		if !p.Holds {
			status = ProofFails.Render("✗")
		}
		fmt.Fprintf(&sb, "%s %-8s ∫ %s dx = %s\n", status, p.Name, p.Integrand, p.Result)
		fmt.Fprintf(&sb, "  %s\n", Subtle.Render("latex: "+p.Result.LaTeX()))
	}
	return sb.String()
}

// FormatCoefficients tabulates a_k and b_k, exact and float.
func FormatCoefficients(c fourier.Coefficients) (string, error) {
	a, b, err := c.Floats()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(Title.Render("coefficients") + "\n")
	fmt.Fprintf(&sb, "%s\n", MetricLabel.Render(fmt.Sprintf("%-3s %-14s %-12s %-14s %-12s", "k", "a_k", "", "b_k", "")))
	for k := range a {
		fmt.Fprintf(&sb, "%-3d %-14s %-12s %-14s %-12s\n",
			k,
			c.A[k].String(), MetricValue.Render(fmt.Sprintf("%.6f", a[k])),
			c.B[k].String(), MetricValue.Render(fmt.Sprintf("%.6f", b[k])))
	}
	return sb.String(), nil
}

// FormatMetrics prints metrics sorted by name.
func FormatMetrics(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", k)), MetricValue.Render(fmt.Sprintf("%.6f", m[k])))
	}
	return sb.String()
}
