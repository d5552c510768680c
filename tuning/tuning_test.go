package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStandardBass(t *testing.T) {
	assert := assert.New(t)
	tun, err := Parse([]string{"E2", "A2", "D3", "G3"})
	assert.NoError(err)
	assert.Equal(Tuning{28, 33, 38, 43}, tun)
	assert.Equal([]string{"E", "A", "D", "G"}, tun.Labels())
}

func TestParseBadNote(t *testing.T) {
	_, err := Parse([]string{"E2", "H9"})
	assert.Error(t, err)
}

func TestRegionsSplitEvenly(t *testing.T) {
	assert := assert.New(t)
	tun := Tuning{16, 21, 26, 31}
	assert.Equal([]int{0, 1}, tun.BassRegion())
	assert.Equal([]int{2, 3}, tun.MelodyRegion())
}

func TestRegionsOddStringCountFavorsMelody(t *testing.T) {
	assert := assert.New(t)
	tun := Tuning{16, 21, 26, 31, 36}
	assert.Equal([]int{0, 1}, tun.BassRegion())
	assert.Equal([]int{2, 3, 4}, tun.MelodyRegion())
}
