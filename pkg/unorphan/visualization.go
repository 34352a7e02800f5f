package unorphan

import (
	"sort"
	"strings"
)

// ANSI color codes
const (
	red   = "\033[31m"
	reset = "\033[0m"
)

// VisualizeRemovals renders text with the lines covered by blocks highlighted
// in red. Blocks that overlap an earlier block or fall outside the text are
// ignored.
func VisualizeRemovals(text string, blocks []Block) string {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartLine < sorted[j].StartLine
	})

	lines := splitLines(text)
	var builder strings.Builder
	lastLine := 0 // lines[:lastLine] already written

	for _, b := range sorted {
		if b.StartLine <= lastLine || b.StartLine < 1 || b.EndLine < b.StartLine || b.EndLine > len(lines) {
			continue
		}

		for _, line := range lines[lastLine : b.StartLine-1] {
			builder.WriteString(line)
		}
		for _, line := range lines[b.StartLine-1 : b.EndLine] {
			body := strings.TrimRight(line, "\r\n")
			builder.WriteString(red)
			builder.WriteString(body)
			builder.WriteString(reset)
			builder.WriteString(line[len(body):])
		}
		lastLine = b.EndLine
	}

	for _, line := range lines[lastLine:] {
		builder.WriteString(line)
	}
	return builder.String()
}
