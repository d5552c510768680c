package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabtools/tabconv/tuning"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	assert := assert.New(t)
	path := writeConfig(t, `{"target_tuning": ["E2", "A2", "D3", "G3"]}`)

	cfg, target, err := Load(path)
	assert.NoError(err)
	assert.Equal(tuning.Tuning{28, 33, 38, 43}, target)
	assert.Equal(24, cfg.MaxFret)
	assert.Equal(12, cfg.BassMaxFret)
	assert.Equal(7, cfg.MelodyMinFret)
	assert.Equal(4, cfg.HandSeparation)
}

func TestLoadOverridesDefaults(t *testing.T) {
	assert := assert.New(t)
	path := writeConfig(t, `{"target_tuning": ["E2", "A2"], "max_fret": 20, "hand_separation": 6}`)

	cfg, _, err := Load(path)
	assert.NoError(err)
	assert.Equal(20, cfg.MaxFret)
	assert.Equal(6, cfg.HandSeparation)
}

func TestLoadRejectsMissingTuning(t *testing.T) {
	path := writeConfig(t, `{"max_fret": 20}`)
	_, _, err := Load(path)
	assert.ErrorContains(t, err, "target_tuning")
}

func TestResolveRejectsBadBounds(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	cfg.TargetTuning = []string{"E2", "A2"}
	cfg.BassMaxFret = 30
	_, _, err := Resolve(cfg)
	assert.ErrorContains(err, "bass_max_fret")

	cfg = Default()
	cfg.TargetTuning = []string{"E2", "A2"}
	cfg.MelodyMinFret = 30
	_, _, err = Resolve(cfg)
	assert.ErrorContains(err, "melody_min_fret")

	cfg = Default()
	cfg.TargetTuning = []string{"E2", "A2"}
	cfg.HandSeparation = -1
	_, _, err = Resolve(cfg)
	assert.ErrorContains(err, "hand_separation")
}
