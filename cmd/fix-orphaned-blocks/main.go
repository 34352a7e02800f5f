// Command fix-orphaned-blocks removes object-literal fragments left behind by
// deleted logging calls, scanning the target file line by line.
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
	fs := pflag.NewFlagSet("fix-orphaned-blocks", pflag.ExitOnError)
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

	log = log.WithComponent("line-scanner").WithTarget(cfg.Target)
	if err := run(unorphan.NewRewriter(cfg.DryRun), cfg.Target, os.Stdout, log); err != nil {
		log.Fatal("Cleanup failed", zap.Error(err))
	}
}

func run(rw *unorphan.Rewriter, target string, out io.Writer, log *logger.Logger) error {
	start := time.Now()
	var blocks []unorphan.Block

	res, err := rw.Apply(target, func(text string) (string, error) {
		cleaned, found := unorphan.ScanLines(text)
		for _, b := range found {
			fmt.Fprintf(out, "Removing orphaned block from line %d to %d\n", b.StartLine, b.EndLine)
		}
		blocks = found
		return cleaned, nil
	})
	if err != nil {
		return err
	}

	removed := 0
	for _, b := range blocks {
		removed += b.Len()
	}
	log.Info("Line scan finished",
		zap.Int("blocks", len(blocks)),
		zap.Int("lines_removed", removed),
		zap.Bool("written", res.Written),
		zap.Duration("elapsed", time.Since(start)),
	)

	if rw.DryRun {
		fmt.Fprint(out, unorphan.VisualizeRemovals(res.Before, blocks))
		fmt.Fprintln(out, "Dry run: no changes written")
		return nil
	}
	fmt.Fprintln(out, "Fixed orphaned object literal blocks")
	return nil
}
