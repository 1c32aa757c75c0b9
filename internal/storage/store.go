package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/fourier/internal/fourier"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Coefficient struct {
	K     int     `json:"k"`
	Exact string  `json:"exact"`
	Value float64 `json:"value"`
}

type ProofSummary struct {
	Name      string `json:"name"`
	Integrand string `json:"integrand"`
	Result    string `json:"result"`
	LaTeX     string `json:"latex"`
	Holds     bool   `json:"holds"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Points    int                `json:"points"`
	Terms     int                `json:"terms"`
	Mode      string             `json:"mode"`
	A         []Coefficient      `json:"a"`
	B         []Coefficient      `json:"b"`
	Proofs    []ProofSummary     `json:"proofs"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Samples is the sampled target and series of one run.
type Samples struct {
	X      []float64
	Target []float64
	Series []float64
}

func (s Samples) Len() int { return len(s.X) }

// NewMetadata summarizes res for persistence.
func NewMetadata(id string, res *fourier.Result) (*RunMetadata, error) {
	a, b, err := res.Coefficients.Floats()
	if err != nil {
		return nil, err
	}
	meta := &RunMetadata{
		ID:        id,
		Timestamp: time.Now(),
		Points:    res.Config.Points,
		Terms:     res.Config.Terms,
		Mode:      string(res.Config.Mode),
		A:         make([]Coefficient, len(a)),
		B:         make([]Coefficient, len(b)),
		Proofs:    make([]ProofSummary, len(res.Proofs)),
		Metrics:   res.Metrics,
	}
	for k := range a {
		meta.A[k] = Coefficient{K: k, Exact: res.Coefficients.A[k].String(), Value: a[k]}
		meta.B[k] = Coefficient{K: k, Exact: res.Coefficients.B[k].String(), Value: b[k]}
	}
	for i, p := range res.Proofs {
		meta.Proofs[i] = ProofSummary{
			Name:      p.Name,
			Integrand: p.Integrand.String(),
			Result:    p.Result.String(),
			LaTeX:     p.Result.LaTeX(),
			Holds:     p.Holds,
		}
	}
	return meta, nil
}

// Save writes res to a new run directory. On failure the directory is removed.
func (s *Store) Save(res *fourier.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", res.Config.Mode, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	meta, err := NewMetadata(runID, res)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := writeRun(runDir, meta, res); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeRun(runDir string, meta *RunMetadata, res *fourier.Result) error {
	if err := writeFile(filepath.Join(runDir, metadataFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(runDir, samplesFile), func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write([]string{"x", "target", "series"}); err != nil {
			return err
		}
		for l := range res.Grid {
			row := []string{
				strconv.FormatFloat(res.Grid[l], 'g', -1, 64),
				strconv.FormatFloat(res.Target[l], 'g', -1, 64),
				strconv.FormatFloat(res.Series[l], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

// writeFile creates path, runs fill and reports the first of the fill and Close errors.
func writeFile(path string, fill func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fill(f)
}

// List returns stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) (*Samples, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := &Samples{}
	if len(records) < 2 {
		return out, nil
	}
	n := len(records) - 1
	out.X = make([]float64, n)
	out.Target = make([]float64, n)
	out.Series = make([]float64, n)

	for i, record := range records[1:] {
		cols := [3]*float64{&out.X[i], &out.Target[i], &out.Series[i]}
		for c, dst := range cols {
			v, err := strconv.ParseFloat(record[c], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", samplesFile, i+2, err)
			}
			*dst = v
		}
	}

	return out, nil
}
