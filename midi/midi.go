package midi

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tabtools/tabconv/model"
)

const ticksPerQuarter = 480

// ticksPerColumn treats each tab column as a sixteenth note.
const ticksPerColumn = ticksPerQuarter / 4

// midiKeyOffset maps the internal semitone scale (C0 = 0) onto MIDI key
// numbers (C0 = 12).
const midiKeyOffset = 12

const velocity uint8 = 100

type timedMessage struct {
	ticks uint32
	off   bool
	key   uint8
}

// WriteEvents renders note events as a single-track MIDI file, one column
// per sixteenth note.
func WriteEvents(path string, events []model.NoteEvent) error {
	if len(events) == 0 {
		return fmt.Errorf("no notes to export")
	}

	var msgs []timedMessage
	for _, e := range events {
		key := e.Pitch + midiKeyOffset
		if key < 0 || key > 127 {
			continue
		}
		start := uint32(e.Timestamp) * ticksPerColumn
		msgs = append(msgs, timedMessage{ticks: start, key: uint8(key)})
		msgs = append(msgs, timedMessage{ticks: start + ticksPerColumn, off: true, key: uint8(key)})
	}

	// note-offs win ties so repeated notes restart cleanly
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].ticks != msgs[j].ticks {
			return msgs[i].ticks < msgs[j].ticks
		}
		return msgs[i].off && !msgs[j].off
	})

	var tr smf.Track
	var prev uint32
	for _, m := range msgs {
		delta := m.ticks - prev
		prev = m.ticks
		if m.off {
			tr.Add(delta, midi.NoteOff(0, m.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, m.key, velocity))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add MIDI track: %w", err)
	}
	return s.WriteFile(path)
}
