package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/npurge/internal/npurge"
)

func logic(options npurge.Options) error {
	// Color only makes sense on an interactive terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		options.NoColor = true
	}

	// A user-requested abort stops the walk at the next directory
	// boundary; no further deletions are attempted and no summary is
	// printed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := newPrinter(os.Stdout, options)
	options.Callbacks = printer.callbacks()

	if !options.Scan && !options.DryRun {
		if options.ConfirmEach {
			options.ConfirmFunc = func(path string, size int64) bool {
				prompt := fmt.Sprintf("Remove %s (%s)? [y/N] ",
					path, humanize.IBytes(uint64(size))) //nolint:gosec // Sizes are never negative

				ok, err := npurge.Confirm(ctx, prompt, os.Stdin, os.Stderr)

				return err == nil && ok
			}
		} else {
			// One whole-run confirmation before anything is touched.
			prompt := fmt.Sprintf("Delete every %s directory under %q? [y/N] ",
				strings.Join(options.Targets, ", "), options.Path)

			ok, err := npurge.Confirm(ctx, prompt, os.Stdin, os.Stderr)
			if err != nil {
				return err
			}

			if !ok {
				fmt.Fprintln(os.Stderr, "Aborted.")

				return nil
			}
		}
	}

	result, err := npurge.Run(ctx, options)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted")
		}

		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	case "table":
		return PrintTable(result, options, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
