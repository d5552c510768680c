package tab

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tuning"
)

// labelRe matches any tab line, tunedLabelRe only those whose label carries
// an octave number and therefore pins the string's pitch.
var labelRe = regexp.MustCompile(`^([A-G][#b]?\d*)\|`)
var tunedLabelRe = regexp.MustCompile(`^([A-G][#b]?\d+)\|`)

// File is one parsed tab file: the raw lines, the tab sections found in
// them, and the tuning read off the string labels when present.
type File struct {
	Name           string
	Lines          []string
	Sections       [][]string
	DetectedTuning []string
}

func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read tab file: %w", err)
	}
	return Parse(path, string(data)), nil
}

func Parse(name, text string) *File {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &File{
		Name:           name,
		Lines:          lines,
		Sections:       ExtractSections(lines),
		DetectedTuning: DetectTuning(lines),
	}
}

// DetectTuning reads the source tuning off labeled string lines like
// "E2|---" near the top of the file. Returns nil if no labels carry
// octaves.
func DetectTuning(lines []string) []string {
	var res []string
	for i, line := range lines {
		if i >= 20 {
			break
		}
		if m := tunedLabelRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			res = append(res, m[1])
		} else if len(res) > 0 {
			// only the first block of labels names the tuning
			break
		}
	}
	return res
}

// ExtractSections groups consecutive tab lines into sections.
func ExtractSections(lines []string) [][]string {
	var sections [][]string
	var current []string
	for _, line := range lines {
		if labelRe.MatchString(strings.TrimSpace(line)) {
			current = append(current, line)
		} else if len(current) > 0 {
			sections = append(sections, current)
			current = nil
		}
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections
}

// SectionWidth is the widest content run after the label pipe, not
// counting the closing bar.
func SectionWidth(section []string) int {
	width := 0
	for _, line := range section {
		content, ok := splitLabel(line)
		if !ok {
			continue
		}
		if n := len(strings.TrimRight(content, "|")); n > width {
			width = n
		}
	}
	return width
}

// SectionEvents scans one section's columns into note events. The column a
// fret number starts in becomes the event's timestamp; the pitch is the
// string's open pitch plus the fret. Part is left for the classifier.
func SectionEvents(section []string, tun tuning.Tuning, source int) ([]model.NoteEvent, error) {
	var res []model.NoteEvent
	for strIdx, line := range section {
		if strIdx >= len(tun) {
			return nil, fmt.Errorf("tab section has %v strings but tuning has %v", len(section), len(tun))
		}
		content, ok := splitLabel(line)
		if !ok {
			continue
		}
		for i := 0; i < len(content); {
			if !isDigit(content[i]) {
				i++
				continue
			}
			j := i + 1
			for j < len(content) && isDigit(content[j]) {
				j++
			}
			fret, err := strconv.Atoi(content[i:j])
			if err != nil {
				return nil, err
			}
			res = append(res, model.NoteEvent{
				Timestamp:    i,
				Pitch:        tun[strIdx] + fret,
				Source:       source,
				SourceString: strIdx,
			})
			i = j
		}
	}
	return res, nil
}

func splitLabel(line string) (string, bool) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 {
		return "", false
	}
	return parts[1], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
