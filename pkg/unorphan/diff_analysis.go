package unorphan

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiffs computes a line-level diff between two versions of a document.
func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// countLines returns how many lines a diff chunk spans. A chunk without a
// trailing newline still counts its last partial line.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// RemovedLines reports which lines of before are gone from after, as
// 1-based inclusive spans of before. Adjacent deletions are merged.
func RemovedLines(before, after string) []Block {
	var blocks []Block
	oldLine := 1

	for _, diff := range lineDiffs(before, after) {
		n := countLines(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			if n == 0 {
				continue
			}
			if len(blocks) > 0 && blocks[len(blocks)-1].EndLine+1 == oldLine {
				blocks[len(blocks)-1].EndLine = oldLine + n - 1
			} else {
				blocks = append(blocks, Block{StartLine: oldLine, EndLine: oldLine + n - 1})
			}
			oldLine += n
		case diffmatchpatch.DiffEqual:
			oldLine += n
		case diffmatchpatch.DiffInsert:
			// Inserted lines have no position in before.
		}
	}
	return blocks
}
