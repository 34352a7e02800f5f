package unorphan

import (
	"fmt"

	"github.com/spf13/afero"
)

// Rewrite is the outcome of one read-transform-write cycle.
type Rewrite struct {
	Path    string
	Before  string
	After   string
	Written bool
}

// Changed reports whether the transform altered the document.
func (r Rewrite) Changed() bool {
	return r.Before != r.After
}

// Rewriter reads a file whole, transforms it in memory and overwrites the same
// path with the result. There is no backup and no atomic replace.
type Rewriter struct {
	Fs     afero.Fs
	DryRun bool
}

// NewRewriter returns a Rewriter on the OS filesystem.
func NewRewriter(dryRun bool) *Rewriter {
	return &Rewriter{Fs: afero.NewOsFs(), DryRun: dryRun}
}

// Apply runs transform on the content of path and writes the result back
// unless the rewriter is in dry-run mode. The file is rewritten even when the
// content is unchanged.
func (r *Rewriter) Apply(path string, transform func(string) (string, error)) (Rewrite, error) {
	info, err := r.Fs.Stat(path)
	if err != nil {
		return Rewrite{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Rewrite{}, fmt.Errorf("%s is a directory", path)
	}

	data, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		return Rewrite{}, fmt.Errorf("read %s: %w", path, err)
	}

	result := Rewrite{Path: path, Before: string(data)}
	result.After, err = transform(result.Before)
	if err != nil {
		return result, fmt.Errorf("transform %s: %w", path, err)
	}

	if r.DryRun {
		return result, nil
	}
	if err := afero.WriteFile(r.Fs, path, []byte(result.After), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true
	return result, nil
}
