package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tuning"
)

const sampleTab = `My Song
tuning: drop D

G3|--12-|
D3|3---5|

chorus
G3|-----|
D3|--7--|
`

func TestParseFindsSectionsAndTuning(t *testing.T) {
	assert := assert.New(t)
	f := Parse("song.tab", sampleTab)

	assert.Equal([]string{"G3", "D3"}, f.DetectedTuning)
	assert.Len(f.Sections, 2)
	assert.Equal([]string{"G3|--12-|", "D3|3---5|"}, f.Sections[0])
	assert.Equal([]string{"G3|-----|", "D3|--7--|"}, f.Sections[1])
}

func TestDetectTuningStopsAfterFirstBlock(t *testing.T) {
	lines := []string{"G3|---|", "D3|---|", "", "C2|---|"}
	assert.Equal(t, []string{"G3", "D3"}, DetectTuning(lines))
}

func TestDetectTuningIgnoresOctavelessLabels(t *testing.T) {
	lines := []string{"G|---|", "D|---|"}
	assert.Nil(t, DetectTuning(lines))
}

func TestSectionEventsScansColumns(t *testing.T) {
	assert := assert.New(t)
	f := Parse("song.tab", sampleTab)
	tun, err := tuning.Parse(f.DetectedTuning)
	assert.NoError(err)

	events, err := SectionEvents(f.Sections[0], tun, 3)
	assert.NoError(err)
	assert.Equal([]model.NoteEvent{
		{Timestamp: 2, Pitch: 55, Source: 3, SourceString: 0}, // fret 12 on G3
		{Timestamp: 0, Pitch: 41, Source: 3, SourceString: 1}, // fret 3 on D3
		{Timestamp: 4, Pitch: 43, Source: 3, SourceString: 1}, // fret 5 on D3
	}, events)
}

func TestSectionEventsRejectsTooManyStrings(t *testing.T) {
	tun := tuning.Tuning{43}
	_, err := SectionEvents([]string{"G3|--|", "D3|--|"}, tun, 0)
	assert.Error(t, err)
}

func TestSectionWidth(t *testing.T) {
	assert.Equal(t, 5, SectionWidth([]string{"G3|--12-|", "D3|3--|"}))
}
