package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Config{Level: "info", Format: "json", Output: &buf})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		log.WithComponent("line-scanner").Info("hello")
		_ = log.Sync()

		out := buf.String()
		for _, want := range []string{`"msg":"hello"`, `"timestamp"`, `"component":"line-scanner"`} {
			if !strings.Contains(out, want) {
				t.Errorf("output %q missing %s", out, want)
			}
		}
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Config{Level: "debug", Format: "console", Output: &buf})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		log.WithTarget("/tmp/page.tsx").Debug("scanning")
		_ = log.Sync()

		out := buf.String()
		if !strings.Contains(out, "scanning") || !strings.Contains(out, "/tmp/page.tsx") {
			t.Errorf("output %q missing message or target", out)
		}
	})

	t.Run("Level filter", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(Config{Level: "warn", Format: "json", Output: &buf})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		log.Info("dropped")
		_ = log.Sync()
		if buf.Len() != 0 {
			t.Errorf("info written at warn level: %q", buf.String())
		}
	})

	t.Run("Invalid level", func(t *testing.T) {
		if _, err := New(Config{Level: "loud", Format: "json"}); err == nil {
			t.Error("New() with invalid level succeeded")
		}
	})
}
