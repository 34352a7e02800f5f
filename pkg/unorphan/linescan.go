package unorphan

import (
	"regexp"
	"strings"
)

var (
	// candidateLine is a single property assignment ending in a comma.
	candidateLine = regexp.MustCompile(`^\s*[a-zA-Z_][a-zA-Z0-9_]*:\s*.*,\s*$`)
	// propertyLine also accepts the last property of an object, which may end
	// in a closing brace or carry no trailing comma at all.
	propertyLine = regexp.MustCompile(`^\s*[a-zA-Z_][a-zA-Z0-9_]*:\s*.*[,}]?\s*$`)
	// terminatorLine closes the argument object of a call: "});"
	terminatorLine = regexp.MustCompile(`^\s*\}\);\s*$`)
)

// splitLines splits text into lines, each keeping its terminator.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ScanLines walks the text line by line and drops every orphaned block: a
// property assignment ending in a comma, followed by further property lines,
// followed by a "});" terminator. The returned blocks use line numbers of the
// input text.
func ScanLines(text string) (string, []Block) {
	lines := splitLines(text)
	kept := make([]string, 0, len(lines))
	var blocks []Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		if !candidateLine.MatchString(line) {
			kept = append(kept, line)
			i++
			continue
		}

		end := findTerminator(lines, i)
		if end < 0 {
			kept = append(kept, line)
			i++
			continue
		}

		blocks = append(blocks, Block{StartLine: i + 1, EndLine: end + 1})
		i = end + 1
	}

	out := strings.Join(kept, "")
	return out, blocks
}

// findTerminator looks ahead from the candidate at start and returns the index
// of the terminator closing the block, or -1 when a non-property line or the
// end of the text is reached first.
func findTerminator(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		next := lines[j]
		switch {
		case terminatorLine.MatchString(next):
			return j
		case propertyLine.MatchString(next):
			continue
		default:
			return -1
		}
	}
	return -1
}
