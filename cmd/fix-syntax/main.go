// Command fix-syntax removes orphaned object literals from the target file
// with a fixed set of whole-content patterns, then collapses blank lines.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jsnanigans/unorphan/internal/config"
	"github.com/jsnanigans/unorphan/internal/logger"
	"github.com/jsnanigans/unorphan/pkg/unorphan"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	fs := pflag.NewFlagSet("fix-syntax", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log = log.WithComponent("pattern-sweeper").WithTarget(cfg.Target)
	sweeper := unorphan.NewSweeper(cfg.RegexTimeout, log.Logger)
	if err := run(unorphan.NewRewriter(cfg.DryRun), sweeper, cfg.Target, os.Stdout, log); err != nil {
		log.Fatal("Cleanup failed", zap.Error(err))
	}
}

func run(rw *unorphan.Rewriter, sweeper *unorphan.Sweeper, target string, out io.Writer, log *logger.Logger) error {
	start := time.Now()
	var removed []unorphan.Block

	res, err := rw.Apply(target, func(text string) (string, error) {
		cleaned, err := sweeper.Sweep(text)
		if err != nil {
			return "", err
		}
		removed = unorphan.RemovedLines(text, cleaned)
		for _, b := range removed {
			fmt.Fprintf(out, "Removed lines %d-%d\n", b.StartLine, b.EndLine)
		}
		return cleaned, nil
	})
	if err != nil {
		return err
	}

	log.Info("Pattern sweep finished",
		zap.Int("spans", len(removed)),
		zap.Int("bytes_before", len(res.Before)),
		zap.Int("bytes_after", len(res.After)),
		zap.Bool("written", res.Written),
		zap.Duration("elapsed", time.Since(start)),
	)

	if rw.DryRun {
		fmt.Fprint(out, unorphan.VisualizeRemovals(res.Before, removed))
		fmt.Fprintln(out, "Dry run: no changes written")
		return nil
	}
	fmt.Fprintln(out, "Fixed orphaned code blocks")
	return nil
}
