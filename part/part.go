package part

import (
	"errors"

	"github.com/tabtools/tabconv/model"
)

// BassMeanThreshold splits bass from melody sources: a file whose mean
// pitch sits below 30 semitones (F#2) plays the bass part.
const BassMeanThreshold = 30

// ErrIndeterminate indicates a source had no notes to average. Callers must
// supply an explicit part override to proceed with that file.
var ErrIndeterminate = errors.New("part: no notes to classify, supply an explicit part")

// MeanPitch returns the arithmetic mean pitch of events, or 0 when there
// are none.
func MeanPitch(events []model.NoteEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	var sum int
	for _, e := range events {
		sum += e.Pitch
	}
	return float64(sum) / float64(len(events))
}

// Classify tags one source file's events as bass or melody by mean pitch.
func Classify(events []model.NoteEvent) (model.PartType, error) {
	if len(events) == 0 {
		return 0, ErrIndeterminate
	}
	if MeanPitch(events) < BassMeanThreshold {
		return model.Bass, nil
	}
	return model.Melody, nil
}
