package allocate

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tabtools/tabconv/config"
	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/pitch"
	"github.com/tabtools/tabconv/tuning"
	"github.com/tabtools/tabconv/util"
)

// Allocator decides, for every simultaneous group of notes, which target
// string and fret each note lands on. Bass notes get first pick of strings
// within a timestamp: the bass part has fewer, wider-spaced notes and a
// stricter fret ceiling, so resolving it first minimizes forced octave
// shifts for the melody.
type Allocator struct {
	cfg    config.Config
	target tuning.Tuning
}

func New(cfg config.Config, target tuning.Tuning) *Allocator {
	return &Allocator{cfg: cfg, target: target}
}

// Run produces exactly one outcome per input event. Timestamps are mutually
// independent (every constraint is evaluated within a single timestamp), so
// they are processed in parallel and the outcomes reported ordered by
// timestamp, then string. Deterministic for identical input.
func (a *Allocator) Run(events []model.NoteEvent) model.Result {
	groups := make(map[int][]model.NoteEvent)
	for _, e := range events {
		groups[e.Timestamp] = append(groups[e.Timestamp], e)
	}

	timestamps := util.SortedKeys(groups)
	perTs := make([]model.Result, len(timestamps))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ts := range timestamps {
		i, ts := i, ts
		g.Go(func() error {
			perTs[i] = a.allocateTimestamp(groups[ts])
			return nil
		})
	}
	g.Wait()

	var res model.Result
	for _, r := range perTs {
		res.Assignments = append(res.Assignments, r.Assignments...)
		res.Unplayables = append(res.Unplayables, r.Unplayables...)
	}
	return res
}

// orderGroup sorts one hand's events pitch-descending; equal pitches fall
// back to source-file order, then source-string index. Tests pin this exact
// order: any other valid ordering would yield different but equally legal
// output, and reproducibility matters more.
func orderGroup(events []model.NoteEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Pitch != events[j].Pitch {
			return events[i].Pitch > events[j].Pitch
		}
		if events[i].Source != events[j].Source {
			return events[i].Source < events[j].Source
		}
		return events[i].SourceString < events[j].SourceString
	})
}

func (a *Allocator) allocateTimestamp(events []model.NoteEvent) model.Result {
	var bassEvents, melodyEvents []model.NoteEvent
	for _, e := range events {
		if e.Part == model.Bass {
			bassEvents = append(bassEvents, e)
		} else {
			melodyEvents = append(melodyEvents, e)
		}
	}
	orderGroup(bassEvents)
	orderGroup(melodyEvents)

	occ := newOccupancy()
	var res model.Result
	var bassFrets, melodyFrets []int

	for _, e := range bassEvents {
		p, str, fret, ok := a.place(e.Pitch, a.target.BassRegion(), 0, a.cfg.BassMaxFret, occ, nil, nil)
		if !ok {
			res.Unplayables = append(res.Unplayables, model.Unplayable{Timestamp: e.Timestamp, Event: e})
			continue
		}
		a.commit(occ, str, fret)
		bassFrets = append(bassFrets, fret)
		res.Assignments = append(res.Assignments, model.Assignment{
			Timestamp: e.Timestamp, String: str, Fret: fret, Pitch: p, Event: e,
		})
	}

	for _, e := range melodyEvents {
		p, str, fret, ok := a.place(e.Pitch, a.target.MelodyRegion(), a.cfg.MelodyMinFret, a.cfg.MaxFret, occ, bassFrets, melodyFrets)
		if !ok {
			res.Unplayables = append(res.Unplayables, model.Unplayable{Timestamp: e.Timestamp, Event: e})
			continue
		}
		a.commit(occ, str, fret)
		melodyFrets = append(melodyFrets, fret)
		res.Assignments = append(res.Assignments, model.Assignment{
			Timestamp: e.Timestamp, String: str, Fret: fret, Pitch: p, Event: e,
		})
	}

	// assignments are reported low string to high, not in placement order
	sort.Slice(res.Assignments, func(i, j int) bool {
		return res.Assignments[i].String < res.Assignments[j].String
	})
	return res
}

// place finds a home for one note: the full octave ladder over the
// part's own region first, then again over the leftover strings. Running
// the ladder region-first keeps a part on its own strings even at the cost
// of an octave shift, and only then borrows from the other side.
func (a *Allocator) place(p pitch.Pitch, region []int, minFret, maxFret int, occ *occupancy, bassFrets, melodyFrets []int) (pitch.Pitch, int, int, bool) {
	for _, candidates := range [][]int{region, otherStrings(region, len(a.target))} {
		candidates := candidates // captured by the predicate
		shifted, str, fret, ok := searchOctaves(p, func(p pitch.Pitch) (int, int, bool) {
			return a.findString(p, candidates, minFret, maxFret, occ, bassFrets, melodyFrets)
		})
		if ok {
			return shifted, str, fret, true
		}
	}
	return 0, 0, 0, false
}

// findString scans candidates for a free string that can host p within
// [minFret, maxFret]. Candidates that would break the hand gap are skipped,
// which is the "reject and retry excluding the offender" loop collapsed
// into one scan.
func (a *Allocator) findString(p pitch.Pitch, candidates []int, minFret, maxFret int, occ *occupancy, bassFrets, melodyFrets []int) (int, int, bool) {
	for _, str := range candidates {
		if !occ.isFree(str) {
			continue
		}
		fret := p - a.target[str]
		if fret < minFret || fret > maxFret {
			continue
		}
		if !a.separationOK(bassFrets, append(melodyFrets, fret)) {
			continue
		}
		return str, fret, true
	}
	return 0, 0, false
}

// separationOK validates the gap between the highest bass fret and lowest
// melody fret in use at one timestamp. One silent hand satisfies it
// vacuously. Pure check, no mutation.
func (a *Allocator) separationOK(bassFrets, melodyFrets []int) bool {
	if len(bassFrets) == 0 || len(melodyFrets) == 0 {
		return true
	}
	return util.MinOf(melodyFrets)-util.MaxOf(bassFrets) >= a.cfg.HandSeparation
}

func (a *Allocator) commit(occ *occupancy, str, fret int) {
	if err := occ.reserve(str, fret); err != nil {
		// findString only returns free strings, so this is a defect
		panic("allocator reservation defect: " + err.Error())
	}
}

// otherStrings lists the strings outside region, in order.
func otherStrings(region []int, numStrings int) []int {
	inRegion := make(map[int]bool, len(region))
	for _, s := range region {
		inRegion[s] = true
	}
	var res []int
	for s := 0; s < numStrings; s++ {
		if !inRegion[s] {
			res = append(res, s)
		}
	}
	return res
}
