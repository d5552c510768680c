package tuning

import (
	"fmt"

	"github.com/tabtools/tabconv/pitch"
)

// Tuning is the ordered open-string pitches of an instrument, index 0 the
// lowest string.
type Tuning []pitch.Pitch

// Parse converts note labels like ["E2" "A2" "D3" "G3"] into a Tuning.
func Parse(notes []string) (Tuning, error) {
	res := make(Tuning, 0, len(notes))
	for _, n := range notes {
		p, err := pitch.FromNote(n)
		if err != nil {
			return nil, fmt.Errorf("bad tuning: %w", err)
		}
		res = append(res, p)
	}
	return res, nil
}

// Labels returns the display note names (no octave) for tab string labels.
func (t Tuning) Labels() []string {
	res := make([]string, len(t))
	for i, p := range t {
		res[i] = pitch.ClassName(p)
	}
	return res
}

// BassRegion is the lower half of the string indices; with an odd string
// count the extra string goes to melody.
func (t Tuning) BassRegion() []int {
	var res []int
	for i := 0; i < len(t)/2; i++ {
		res = append(res, i)
	}
	return res
}

// MelodyRegion is the upper half of the string indices.
func (t Tuning) MelodyRegion() []int {
	var res []int
	for i := len(t) / 2; i < len(t); i++ {
		res = append(res, i)
	}
	return res
}
