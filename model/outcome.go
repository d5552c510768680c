package model

import "github.com/tabtools/tabconv/pitch"

// Assignment places one NoteEvent on a target string/fret. Pitch is the
// pitch actually assigned, which differs from Event.Pitch by a multiple of
// 12 when the octave search had to shift.
type Assignment struct {
	Timestamp int
	String    int
	Fret      int
	Pitch     pitch.Pitch
	Event     NoteEvent
}

// Unplayable is the terminal outcome for a note no string/fret/octave
// combination could host. It is data, not an error.
type Unplayable struct {
	Timestamp int
	Event     NoteEvent
}

// Result is the allocator's full output: exactly one outcome per input
// event, both slices sorted ascending on timestamp.
type Result struct {
	Assignments []Assignment
	Unplayables []Unplayable
}

// OutcomeCount is the totality check: it must equal the input event count.
func (r Result) OutcomeCount() int {
	return len(r.Assignments) + len(r.Unplayables)
}
