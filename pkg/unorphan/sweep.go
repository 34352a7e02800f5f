package unorphan

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

// DefaultMatchTimeout bounds a single replace pass. The multi-property pattern
// nests quantifiers and can backtrack badly on long runs of property lines.
const DefaultMatchTimeout = 5 * time.Second

const (
	// multiPropertyExpr: one or more property lines followed by "});".
	multiPropertyExpr = `\s+[a-zA-Z_][a-zA-Z0-9_]*:\s*[^,}]+,\s*(?:\n\s*[a-zA-Z_][a-zA-Z0-9_]*:\s*[^,}]+[,\s]*)*\s*}\);\s*`
	// singlePropertyExpr: a lone property glued to "});", only when real code follows.
	singlePropertyExpr = `\s+[a-zA-Z_][a-zA-Z0-9_]*:\s*[^,}]+,?\s*}\);\s*(?=\n\s*(?:if|const|let|var|return|function|\}|//|/\*))`
	// blankRunExpr: two or more blank lines in a row.
	blankRunExpr = `\n\s*\n\s*\n`
)

// Sweeper removes orphaned object literals from a whole document with a fixed
// set of regular expressions. The expressions rely on lookahead and
// backtracking, so they run on regexp2 rather than the standard library.
type Sweeper struct {
	multiProperty  *regexp2.Regexp
	singleProperty *regexp2.Regexp
	blankRun       *regexp2.Regexp
	logger         *zap.Logger
}

// NewSweeper compiles the sweep patterns. A zero timeout selects
// DefaultMatchTimeout; a nil logger disables logging.
func NewSweeper(timeout time.Duration, logger *zap.Logger) *Sweeper {
	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sweeper{
		multiProperty:  regexp2.MustCompile(multiPropertyExpr, regexp2.None),
		singleProperty: regexp2.MustCompile(singlePropertyExpr, regexp2.None),
		blankRun:       regexp2.MustCompile(blankRunExpr, regexp2.None),
		logger:         logger,
	}
	for _, re := range []*regexp2.Regexp{s.multiProperty, s.singleProperty, s.blankRun} {
		re.MatchTimeout = timeout
	}
	return s
}

// Sweep applies the multi-property pattern, then the single-property pattern,
// then collapses runs of blank lines.
func (s *Sweeper) Sweep(text string) (string, error) {
	out, err := s.RemoveMultiProperty(text)
	if err != nil {
		return "", err
	}
	out, err = s.RemoveSingleProperty(out)
	if err != nil {
		return "", err
	}
	return s.CollapseBlankLines(out)
}

// RemoveMultiProperty replaces every run of property lines closed by "});"
// with a single newline.
func (s *Sweeper) RemoveMultiProperty(text string) (string, error) {
	return s.replace("multi-property", s.multiProperty, text, "\n")
}

// RemoveSingleProperty replaces a property line directly closed by "});" with
// a single newline, but only when the next line starts a statement
// (if, const, let, var, return, function), a closing brace or a comment.
func (s *Sweeper) RemoveSingleProperty(text string) (string, error) {
	return s.replace("single-property", s.singleProperty, text, "\n")
}

// CollapseBlankLines reduces every run of two or more blank lines to one.
func (s *Sweeper) CollapseBlankLines(text string) (string, error) {
	return s.replace("blank-run", s.blankRun, text, "\n\n")
}

func (s *Sweeper) replace(name string, re *regexp2.Regexp, text, with string) (string, error) {
	count := 0
	out, err := re.ReplaceFunc(text, func(regexp2.Match) string {
		count++
		return with
	}, -1, -1)
	if err != nil {
		return "", fmt.Errorf("%s pattern: %w", name, err)
	}
	s.logger.Debug("Applied sweep pattern",
		zap.String("pattern", name),
		zap.Int("matches", count),
		zap.Int("bytes_before", len(text)),
		zap.Int("bytes_after", len(out)),
	)
	return out, nil
}
