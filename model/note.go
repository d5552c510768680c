package model

import "github.com/tabtools/tabconv/pitch"

// PartType says which hand a source file belongs to.
type PartType int

const (
	Bass PartType = iota
	Melody
)

func (p PartType) String() string {
	if p == Bass {
		return "bass"
	}
	return "melody"
}

// NoteEvent is one note sounding at one tab column. Source and SourceString
// only exist as deterministic tie-breaks during allocation.
type NoteEvent struct {
	Timestamp    int
	Pitch        pitch.Pitch
	Part         PartType
	Source       int
	SourceString int
}
