package config

import "sort"

var Presets = map[string]*Config{
	"notebook": {
		Points: 400, Terms: 2, Mode: "notebook",
	},
	"coarse": {
		Points: 32, Terms: 4, Mode: "canonical",
	},
	"smooth": {
		Points: 400, Terms: 25, Mode: "canonical",
	},
	"gibbs": {
		Points: 2000, Terms: 151, Mode: "canonical",
	},
}

// GetPreset returns a copy of the named preset filled in with defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Points = p.Points
	cfg.Terms = p.Terms
	cfg.Mode = p.Mode
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
