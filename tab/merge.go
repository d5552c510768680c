package tab

import (
	"errors"
	"fmt"

	"github.com/tabtools/tabconv/allocate"
	"github.com/tabtools/tabconv/config"
	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/part"
	"github.com/tabtools/tabconv/tuning"
)

// MergeSummary is the rendered merge output plus what the CLI reports
// about it. Notes carries the placed notes with section-global timestamps,
// ready for MIDI export.
type MergeSummary struct {
	Lines      []string
	Sections   int
	Unplayable int
	Notes      []model.NoteEvent
}

// Merge runs the whole pipeline over already-parsed files: resolve each
// source tuning, classify each file bass/melody, allocate every section
// group against the target config, and render the combined tab. Sections
// pair up by index across files; the merged section count is the minimum
// across files, as blank lines separate sections in the output.
func Merge(files []*File, overrides map[int]model.PartType, cfg config.Config, target tuning.Tuning) (MergeSummary, error) {
	var summary MergeSummary

	sourceTunings := make([]tuning.Tuning, len(files))
	parts := make([]model.PartType, len(files))
	minSections := -1

	for i, f := range files {
		if f.DetectedTuning == nil {
			return summary, fmt.Errorf("could not detect source tuning in %v", f.Name)
		}
		tun, err := tuning.Parse(f.DetectedTuning)
		if err != nil {
			return summary, fmt.Errorf("%v: %w", f.Name, err)
		}
		sourceTunings[i] = tun

		if minSections < 0 || len(f.Sections) < minSections {
			minSections = len(f.Sections)
		}

		var all []model.NoteEvent
		for _, section := range f.Sections {
			events, err := SectionEvents(section, tun, i)
			if err != nil {
				return summary, fmt.Errorf("%v: %w", f.Name, err)
			}
			all = append(all, events...)
		}

		if p, ok := overrides[i]; ok {
			parts[i] = p
		} else {
			p, err := part.Classify(all)
			if errors.Is(err, part.ErrIndeterminate) {
				return summary, fmt.Errorf("%v: %w", f.Name, err)
			}
			parts[i] = p
		}
	}

	if minSections <= 0 {
		return summary, fmt.Errorf("no tab sections found in input files")
	}

	alloc := allocate.New(cfg, target)
	offset := 0
	for sectionIdx := 0; sectionIdx < minSections; sectionIdx++ {
		var events []model.NoteEvent
		width := 0
		for i, f := range files {
			section := f.Sections[sectionIdx]
			sectionEvents, err := SectionEvents(section, sourceTunings[i], i)
			if err != nil {
				return summary, fmt.Errorf("%v: %w", f.Name, err)
			}
			for j := range sectionEvents {
				sectionEvents[j].Part = parts[i]
			}
			events = append(events, sectionEvents...)
			if w := SectionWidth(section); w > width {
				width = w
			}
		}

		res := alloc.Run(events)
		if res.OutcomeCount() != len(events) {
			panic("allocator dropped an outcome")
		}

		if sectionIdx > 0 {
			summary.Lines = append(summary.Lines, "")
		}
		summary.Lines = append(summary.Lines, RenderSection(res, target, width)...)
		summary.Unplayable += len(res.Unplayables)
		for _, a := range res.Assignments {
			summary.Notes = append(summary.Notes, model.NoteEvent{
				Timestamp:    offset + a.Timestamp,
				Pitch:        a.Pitch,
				Part:         a.Event.Part,
				Source:       a.Event.Source,
				SourceString: a.Event.SourceString,
			})
		}
		offset += width
	}

	summary.Sections = minSections
	return summary, nil
}
