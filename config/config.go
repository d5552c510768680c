package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tabtools/tabconv/tuning"
)

// Config holds the target instrument description loaded from the JSON
// config file. Only TargetTuning is required; the fret bounds default to a
// standard two-handed tapping setup.
type Config struct {
	TargetTuning   []string `json:"target_tuning"`
	MaxFret        int      `json:"max_fret"`
	BassMaxFret    int      `json:"bass_max_fret"`
	MelodyMinFret  int      `json:"melody_min_fret"`
	HandSeparation int      `json:"hand_separation"`
}

// Default returns the fret bounds used when the config file leaves them out.
func Default() Config {
	return Config{
		MaxFret:        24,
		BassMaxFret:    12,
		MelodyMinFret:  7,
		HandSeparation: 4,
	}
}

// Load reads and validates a config file, resolving the target tuning.
func Load(path string) (Config, tuning.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("could not parse config: %w", err)
	}

	return Resolve(cfg)
}

// Resolve validates cfg and parses its tuning. Violations here are
// configuration errors: they surface before any allocation runs.
func Resolve(cfg Config) (Config, tuning.Tuning, error) {
	if len(cfg.TargetTuning) == 0 {
		return Config{}, nil, fmt.Errorf("config must contain 'target_tuning'")
	}

	target, err := tuning.Parse(cfg.TargetTuning)
	if err != nil {
		return Config{}, nil, err
	}

	for _, v := range []struct {
		name  string
		value int
	}{
		{"max_fret", cfg.MaxFret},
		{"bass_max_fret", cfg.BassMaxFret},
		{"melody_min_fret", cfg.MelodyMinFret},
		{"hand_separation", cfg.HandSeparation},
	} {
		if v.value < 0 {
			return Config{}, nil, fmt.Errorf("%v must be non-negative, got %v", v.name, v.value)
		}
	}
	if cfg.BassMaxFret > cfg.MaxFret {
		return Config{}, nil, fmt.Errorf("bass_max_fret %v exceeds max_fret %v", cfg.BassMaxFret, cfg.MaxFret)
	}
	if cfg.MelodyMinFret > cfg.MaxFret {
		return Config{}, nil, fmt.Errorf("melody_min_fret %v exceeds max_fret %v", cfg.MelodyMinFret, cfg.MaxFret)
	}

	return cfg, target, nil
}
