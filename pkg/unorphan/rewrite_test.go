package unorphan

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const testPath = "/app/dashboard/page.tsx"

func newTestFs(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testPath, []byte(content), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return fs
}

func upper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

func TestRewriterApply(t *testing.T) {
	fs := newTestFs(t, "abc\n")
	rw := &Rewriter{Fs: fs}

	res, err := rw.Apply(testPath, upper)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !res.Written || !res.Changed() {
		t.Errorf("Apply() = %+v, want written and changed", res)
	}
	if res.Before != "abc\n" || res.After != "ABC\n" {
		t.Errorf("Apply() before/after = %q/%q", res.Before, res.After)
	}

	data, _ := afero.ReadFile(fs, testPath)
	if string(data) != "ABC\n" {
		t.Errorf("file content = %q, want %q", data, "ABC\n")
	}
	info, _ := fs.Stat(testPath)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %v, want %v", info.Mode().Perm(), os.FileMode(0o600))
	}
}

func TestRewriterDryRun(t *testing.T) {
	fs := newTestFs(t, "abc\n")
	rw := &Rewriter{Fs: fs, DryRun: true}

	res, err := rw.Apply(testPath, upper)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if res.Written {
		t.Error("dry run reported a write")
	}
	if res.After != "ABC\n" {
		t.Errorf("After = %q, want %q", res.After, "ABC\n")
	}
	data, _ := afero.ReadFile(fs, testPath)
	if string(data) != "abc\n" {
		t.Errorf("file content = %q, want it untouched", data)
	}
}

func TestRewriterUnchangedContentStillWritten(t *testing.T) {
	fs := newTestFs(t, "abc\n")
	rw := &Rewriter{Fs: fs}

	res, err := rw.Apply(testPath, func(s string) (string, error) { return s, nil })
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if res.Changed() {
		t.Error("Changed() = true for identity transform")
	}
	if !res.Written {
		t.Error("identity transform was not written")
	}
}

func TestRewriterErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		rw := &Rewriter{Fs: afero.NewMemMapFs()}
		_, err := rw.Apply(testPath, upper)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Apply() error = %v, want not-exist", err)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := fs.MkdirAll("/app", 0o755); err != nil {
			t.Fatal(err)
		}
		rw := &Rewriter{Fs: fs}
		if _, err := rw.Apply("/app", upper); err == nil {
			t.Error("Apply() on a directory succeeded")
		}
	})

	t.Run("Read-only filesystem", func(t *testing.T) {
		rw := &Rewriter{Fs: afero.NewReadOnlyFs(newTestFs(t, "abc\n"))}
		res, err := rw.Apply(testPath, upper)
		if err == nil {
			t.Fatal("Apply() on a read-only filesystem succeeded")
		}
		if res.Written {
			t.Error("failed write reported as written")
		}
	})

	t.Run("Transform error", func(t *testing.T) {
		fs := newTestFs(t, "abc\n")
		boom := errors.New("boom")
		rw := &Rewriter{Fs: fs}
		_, err := rw.Apply(testPath, func(string) (string, error) { return "", boom })
		if !errors.Is(err, boom) {
			t.Errorf("Apply() error = %v, want %v", err, boom)
		}
		data, _ := afero.ReadFile(fs, testPath)
		if string(data) != "abc\n" {
			t.Errorf("file content = %q, want it untouched", data)
		}
	})
}
