package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/fourier/internal/storage"
)

type Document struct {
	ID      string                 `json:"id"`
	Points  int                    `json:"points"`
	Terms   int                    `json:"terms"`
	Mode    string                 `json:"mode"`
	A       []storage.Coefficient  `json:"a"`
	B       []storage.Coefficient  `json:"b"`
	Proofs  []storage.ProofSummary `json:"proofs"`
	X       []float64              `json:"x"`
	Target  []float64              `json:"target"`
	Series  []float64              `json:"series"`
	Metrics map[string]float64     `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *storage.RunMetadata, samples *storage.Samples) error {
	if samples == nil {
		samples = &storage.Samples{}
	}
	doc := Document{
		ID:      meta.ID,
		Points:  meta.Points,
		Terms:   meta.Terms,
		Mode:    meta.Mode,
		A:       meta.A,
		B:       meta.B,
		Proofs:  meta.Proofs,
		X:       nonNil(samples.X),
		Target:  nonNil(samples.Target),
		Series:  nonNil(samples.Series),
		Metrics: meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// ExportCSV writes one row per sample with the header x,target,series.
func ExportCSV(w io.Writer, samples *storage.Samples) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "target", "series"}); err != nil {
		return err
	}
	if len(samples.Target) != samples.Len() || len(samples.Series) != samples.Len() {
		return fmt.Errorf("export: ragged samples (%d/%d/%d)", samples.Len(), len(samples.Target), len(samples.Series))
	}
	for i := range samples.X {
		row := []string{
			strconv.FormatFloat(samples.X[i], 'g', -1, 64),
			strconv.FormatFloat(samples.Target[i], 'g', -1, 64),
			strconv.FormatFloat(samples.Series[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func nonNil(xs []float64) []float64 {
	if xs == nil {
		return []float64{}
	}
	return xs
}
