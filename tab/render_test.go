package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tuning"
)

func TestRenderSectionBasics(t *testing.T) {
	assert := assert.New(t)
	target := tuning.Tuning{16, 21, 26, 31} // E A D G

	res := model.Result{Assignments: []model.Assignment{
		{Timestamp: 0, String: 0, Fret: 2},
		{Timestamp: 3, String: 2, Fret: 11},
	}}
	got := RenderSection(res, target, 5)

	assert.Equal([]string{
		"G|------|",
		"D|---11-|",
		"A|------|",
		"E|2-----|",
	}, got)
}

func TestRenderSectionWidensColumnsForLongFrets(t *testing.T) {
	assert := assert.New(t)
	target := tuning.Tuning{16, 21}

	res := model.Result{Assignments: []model.Assignment{
		{Timestamp: 1, String: 0, Fret: 12},
		{Timestamp: 1, String: 1, Fret: 3},
	}}
	got := RenderSection(res, target, 3)

	assert.Equal([]string{
		"A|-3--|",
		"E|-12-|",
	}, got)
}

func TestRenderSectionMarksUnplayables(t *testing.T) {
	assert := assert.New(t)
	target := tuning.Tuning{16, 21, 26, 31}

	res := model.Result{
		Assignments: []model.Assignment{{Timestamp: 0, String: 0, Fret: 2}},
		Unplayables: []model.Unplayable{
			{Timestamp: 0, Event: model.NoteEvent{Part: model.Melody}},
			{Timestamp: 2, Event: model.NoteEvent{Part: model.Bass}},
		},
	}
	got := RenderSection(res, target, 4)

	assert.Equal([]string{
		"G|X---|",
		"D|----|",
		"A|----|",
		"E|2-X-|",
	}, got)
}

func TestRenderSectionPadsLabels(t *testing.T) {
	assert := assert.New(t)
	target := tuning.Tuning{18, 23} // F# B

	got := RenderSection(model.Result{}, target, 2)
	assert.Equal([]string{
		"B |--|",
		"F#|--|",
	}, got)
}
