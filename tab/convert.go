package tab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tabtools/tabconv/pitch"
	"github.com/tabtools/tabconv/tuning"
)

// ConvertLines rewrites every tab line to the target tuning by shifting
// fret numbers per string; all other lines pass through untouched. Frets
// that would go negative become "X". Source and target must have the same
// string count.
func ConvertLines(lines []string, source, target tuning.Tuning) ([]string, error) {
	if len(source) != len(target) {
		return nil, fmt.Errorf("source and target tunings must have same number of strings: %v vs %v",
			len(source), len(target))
	}

	res := make([]string, 0, len(lines))
	strIdx := 0
	for _, line := range lines {
		if labelRe.MatchString(strings.TrimSpace(line)) {
			res = append(res, convertTabLine(line, source, target, strIdx))
			strIdx++
		} else {
			res = append(res, line)
			// a gap between sections starts the string count over
			if strings.TrimSpace(line) == "" || !strings.ContainsAny(line, "|-") {
				strIdx = 0
			}
		}
	}
	return res, nil
}

func convertTabLine(line string, source, target tuning.Tuning, strIdx int) string {
	if strIdx >= len(source) || strIdx >= len(target) {
		return line
	}
	diff := target[strIdx] - source[strIdx]

	content, ok := splitLabel(line)
	if !ok {
		return line
	}

	var b strings.Builder
	for i := 0; i < len(content); {
		if !isDigit(content[i]) {
			b.WriteByte(content[i])
			i++
			continue
		}
		j := i + 1
		for j < len(content) && isDigit(content[j]) {
			j++
		}
		b.WriteString(convertFret(content[i:j], diff))
		i = j
	}

	return pitch.ClassName(target[strIdx]) + "|" + b.String()
}

func convertFret(numStr string, diff int) string {
	fret, err := strconv.Atoi(numStr)
	if err != nil {
		return numStr
	}
	newFret := fret + diff
	if newFret < 0 {
		return "X" // unplayable in the target tuning
	}
	return strconv.Itoa(newFret)
}
