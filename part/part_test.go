package part

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabtools/tabconv/model"
)

func events(pitches ...int) []model.NoteEvent {
	var res []model.NoteEvent
	for i, p := range pitches {
		res = append(res, model.NoteEvent{Timestamp: i, Pitch: p})
	}
	return res
}

func TestClassifyLowMeanIsBass(t *testing.T) {
	got, err := Classify(events(28, 30, 26))
	assert.NoError(t, err)
	assert.Equal(t, model.Bass, got)
}

func TestClassifyHighMeanIsMelody(t *testing.T) {
	got, err := Classify(events(40, 52, 47))
	assert.NoError(t, err)
	assert.Equal(t, model.Melody, got)
}

func TestClassifyThresholdIsMelody(t *testing.T) {
	// mean exactly at the threshold falls on the melody side
	got, err := Classify(events(30))
	assert.NoError(t, err)
	assert.Equal(t, model.Melody, got)
}

func TestMeanPitchOfNothingIsZero(t *testing.T) {
	assert.Equal(t, 0.0, MeanPitch(nil))
	assert.Equal(t, 29.0, MeanPitch(events(28, 30)))
}

func TestClassifyEmptyIsIndeterminate(t *testing.T) {
	_, err := Classify(nil)
	assert.ErrorIs(t, err, ErrIndeterminate)
}
