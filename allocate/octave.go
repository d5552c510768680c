package allocate

import "github.com/tabtools/tabconv/pitch"

// octaveOffsets is the fixed fallback order when a pitch cannot be placed
// literally: no shift, one octave up, one down, two up, two down. Every
// offset preserves the pitch class.
var octaveOffsets = [5]int{0, 12, -12, 24, -24}

// searchOctaves runs place against each octave variant of p in order and
// returns the first hit: the shifted pitch plus whatever string/fret the
// predicate chose. The search is exhausted after exactly five attempts.
func searchOctaves(p pitch.Pitch, place func(pitch.Pitch) (str, fret int, ok bool)) (pitch.Pitch, int, int, bool) {
	for _, off := range octaveOffsets {
		shifted := p + off
		if str, fret, ok := place(shifted); ok {
			return shifted, str, fret, true
		}
	}
	return 0, 0, 0, false
}
