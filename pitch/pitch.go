package pitch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pitch is an absolute semitone value, C0 = 0, one octave = 12.
type Pitch = int

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteRe = regexp.MustCompile(`^([A-G][#b]?)(\d+)$`)

func nameIndex(name string) int {
	for i, n := range noteNames {
		if n == name {
			return i
		}
	}
	return -1
}

// FromNote converts a note label like "E2" or "Bb3" to a Pitch.
func FromNote(note string) (Pitch, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return 0, fmt.Errorf("invalid note format: empty")
	}
	m := noteRe.FindStringSubmatch(strings.ToUpper(note[:1]) + note[1:])
	if m == nil {
		return 0, fmt.Errorf("invalid note format: %v", note)
	}

	name := m[1]
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note: %v", note)
	}

	// flats map onto the sharp name a semitone down
	if strings.Contains(name, "b") {
		name = noteNames[(nameIndex(name[:1])+11)%12]
	}

	idx := nameIndex(name)
	if idx < 0 {
		return 0, fmt.Errorf("invalid note: %v", name)
	}
	return idx + octave*12, nil
}

// ToNote converts a Pitch back to a note label, e.g. 28 -> "E2".
func ToNote(p Pitch) string {
	return fmt.Sprintf("%v%v", noteNames[((p%12)+12)%12], p/12)
}

// Class returns the pitch class, 0..11 with C = 0.
func Class(p Pitch) int {
	return ((p % 12) + 12) % 12
}

// ClassName returns the note name without an octave, for tab string labels.
func ClassName(p Pitch) string {
	return noteNames[Class(p)]
}
