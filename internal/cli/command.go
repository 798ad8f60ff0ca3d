package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/npurge/internal/integration"
	"github.com/idelchi/npurge/internal/npurge"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// DefaultExcludes contains the default exclusion patterns.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludes = []string{`.*/\.git$`}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		npurge finds dependency-cache directories (node_modules by default)
		and reports or reclaims the disk space they occupy.

		Usage:

			npurge [flags] [path]

		Positional Arguments:
		  path                   Directory to search. Defaults to current directory if not specified.

		Modes:
		  Default mode deletes every match after a single confirmation.
		  Use --scan to only report, --dry-run to preview what deletion
		  would do, or --confirm to approve each match individually.

		A matched directory is never searched further: the whole subtree
		counts as one match, measured and removed as a unit.

		The '-i' flag prints a shell integration for zsh: scan results are
		piped through 'fzf' and the selected directories removed.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    npurge.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.BoolVarP(&options.Scan, "scan", "s", false, "Report matches without deleting anything")
	pflag.BoolVarP(&options.DryRun, "dry-run", "d", false, "Print what would be deleted without deleting")
	pflag.BoolVarP(&options.ConfirmEach, "confirm", "c", false, "Ask before deleting each match")
	pflag.StringSliceVarP(
		&options.Targets,
		"target",
		"t",
		[]string{npurge.DefaultTarget},
		"Directory names to match (exact names, not patterns)",
	)
	pflag.StringSliceVarP(&options.Excludes, "exclude", "e", DefaultExcludes, "Regex patterns to exclude")
	pflag.StringVar(&minSizeStr, "min-size", "0B", "Ignore matches smaller than this (e.g. 50MB)")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.BoolVarP(&options.Verbose, "verbose", "v", false, "Show per-error detail and skipped-directory counts")
	pflag.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVar(&options.Version, "version", false, "Show version and exit")
	pflag.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if options.Integration {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if len(options.Targets) == 0 {
		return errors.New("at least one target name is required")
	}

	if pflag.NArg() == 0 {
		options.Path = "."
	} else {
		options.Path = pflag.Args()[0]
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return logic(options)
}
