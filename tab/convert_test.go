package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabtools/tabconv/tuning"
)

func TestConvertLinesShiftsFrets(t *testing.T) {
	assert := assert.New(t)
	source := tuning.Tuning{28, 33} // E2 A2
	target := tuning.Tuning{26, 33} // D2 A2

	lines := []string{
		"intro",
		"E2|--3-0-|",
		"A2|-2----|",
	}
	got, err := ConvertLines(lines, source, target)
	assert.NoError(err)
	assert.Equal([]string{
		"intro",
		"D|--1-X-|", // open E has no home two semitones down
		"A|-2----|",
	}, got)
}

func TestConvertLinesHandlesMultiDigitFrets(t *testing.T) {
	assert := assert.New(t)
	source := tuning.Tuning{28}
	target := tuning.Tuning{26}

	got, err := ConvertLines([]string{"E2|--12--9-|"}, source, target)
	assert.NoError(err)
	assert.Equal([]string{"D|--10--7-|"}, got)
}

func TestConvertLinesResetsStringIndexBetweenSections(t *testing.T) {
	assert := assert.New(t)
	source := tuning.Tuning{28, 33}
	target := tuning.Tuning{30, 33}

	lines := []string{
		"E2|-5-|",
		"A2|-7-|",
		"",
		"E2|-0-|",
		"A2|-0-|",
	}
	got, err := ConvertLines(lines, source, target)
	assert.NoError(err)
	assert.Equal([]string{
		"F#|-7-|",
		"A|-7-|",
		"",
		"F#|-2-|",
		"A|-0-|",
	}, got)
}

func TestConvertLinesRejectsMismatchedTunings(t *testing.T) {
	_, err := ConvertLines([]string{"E2|---|"}, tuning.Tuning{28, 33}, tuning.Tuning{26})
	assert.ErrorContains(t, err, "same number of strings")
}
