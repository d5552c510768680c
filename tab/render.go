package tab

import (
	"strconv"
	"strings"

	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/pitch"
	"github.com/tabtools/tabconv/tuning"
	"github.com/tabtools/tabconv/util"
)

// RenderSection turns one section's allocation outcomes into tab lines,
// highest-pitched string on top. Timestamps a string has no outcome for
// render as rests; unplayable notes render as "X" on the first open row of
// the note's side (bass scans up from the lowest string, melody down from
// the highest). Columns widen as needed for multi-digit frets.
func RenderSection(res model.Result, target tuning.Tuning, width int) []string {
	cells := make([]map[int]string, len(target))
	for i := range cells {
		cells[i] = make(map[int]string)
	}

	for _, a := range res.Assignments {
		cells[a.String][a.Timestamp] = strconv.Itoa(a.Fret)
	}
	for _, u := range res.Unplayables {
		if s, ok := freeRow(cells, u.Timestamp, u.Event.Part); ok {
			cells[s][u.Timestamp] = "X"
		}
	}

	colWidth := make([]int, width)
	for ts := 0; ts < width; ts++ {
		colWidth[ts] = 1
		for s := range cells {
			if cell, ok := cells[s][ts]; ok {
				colWidth[ts] = util.Max(colWidth[ts], len(cell))
			}
		}
	}

	labelWidth := 0
	for _, p := range target {
		labelWidth = util.Max(labelWidth, len(pitch.ClassName(p)))
	}

	var lines []string
	for s := len(target) - 1; s >= 0; s-- {
		var b strings.Builder
		label := pitch.ClassName(target[s])
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", labelWidth-len(label)))
		b.WriteByte('|')
		for ts := 0; ts < width; ts++ {
			cell := "-"
			if c, ok := cells[s][ts]; ok {
				cell = c
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat("-", colWidth[ts]-len(cell)))
		}
		b.WriteByte('|')
		lines = append(lines, b.String())
	}
	return lines
}

func freeRow(cells []map[int]string, ts int, p model.PartType) (int, bool) {
	if p == model.Bass {
		for s := 0; s < len(cells); s++ {
			if _, ok := cells[s][ts]; !ok {
				return s, true
			}
		}
	} else {
		for s := len(cells) - 1; s >= 0; s-- {
			if _, ok := cells[s][ts]; !ok {
				return s, true
			}
		}
	}
	return 0, false
}
