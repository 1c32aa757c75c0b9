package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/storage"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestRunWithConfigIsListed(t *testing.T) {
	dataDir := t.TempDir()
	cfgPath := writeFile(t, t.TempDir(), "run.yaml", "points: 16\nterms: 3\nmode: canonical\ndata_dir: /nonexistent/elsewhere\n")

	if err := execute(t, "run", "--data", dataDir, "--config", cfgPath); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	runs, err := storage.New(dataDir).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run in %s, got %d", dataDir, len(runs))
	}
	if runs[0].Terms != 3 || runs[0].Points != 16 || runs[0].Mode != "canonical" {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	for _, args := range [][]string{
		{"list", "--data", dataDir},
		{"plot", runs[0].ID, "--data", dataDir},
		{"export-csv", runs[0].ID, "--data", dataDir},
		{"analyze", runs[0].ID, "--data", dataDir},
	} {
		if err := execute(t, args...); err != nil {
			t.Errorf("%s failed: %v", args[0], err)
		}
	}
}

func TestProveResolvesCheckConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "check.toml", "[check]\nmax_index = 7\nnodes = 96\n")

	tests := []struct {
		name      string
		args      []string
		wantIndex int
		wantNodes int
	}{
		{"defaults", nil, config.DefaultMaxIndex, config.DefaultNodes},
		{"config file", []string{"--config", cfgPath}, 7, 96},
		{"flag overrides file", []string{"--config", cfgPath, "--check", "2"}, 2, 96},
		{"disabled", []string{"--check", "0"}, 0, config.DefaultNodes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := newRootCmd().Find([]string{"prove"})
			if err != nil {
				t.Fatalf("find failed: %v", err)
			}
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if cfg.Check.MaxIndex != tt.wantIndex || cfg.Check.Nodes != tt.wantNodes {
				t.Errorf("expected check %d/%d, got %+v", tt.wantIndex, tt.wantNodes, cfg.Check)
			}
		})
	}
}

func TestProveRunsCrossCheck(t *testing.T) {
	if err := execute(t, "prove", "--check", "3", "--nodes", "48"); err != nil {
		t.Fatalf("prove failed: %v", err)
	}
	if err := execute(t, "prove", "--check", "3", "--nodes", "0"); err == nil {
		t.Error("expected invalid node count to fail")
	}
}
