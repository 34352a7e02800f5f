package unorphan

// Block is a span of removed lines in the original document.
// Line numbers are 1-based and inclusive.
type Block struct {
	StartLine int
	EndLine   int
}

// Len returns the number of lines covered by the block.
func (b Block) Len() int {
	return b.EndLine - b.StartLine + 1
}
