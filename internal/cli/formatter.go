package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/npurge/internal/npurge"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the run result in JSON format.
func PrintJSON(result *npurge.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the run summary in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(result *npurge.Result, options npurge.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nSummary:\t\t")
	fmt.Fprintf(w, "Matches:\t%d\n", result.MatchCount)

	label := "Freed"
	if options.Scan || options.DryRun {
		label = "Reclaimable"
	}

	fmt.Fprintf(w, "%s:\t%s (%d bytes)\n",
		label, humanize.IBytes(uint64(result.TotalBytes)), result.TotalBytes) //nolint:gosec // Never negative

	if result.Declined > 0 {
		fmt.Fprintf(w, "Declined:\t%d\n", result.Declined)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "Errors encountered:\t%d\n", len(result.Errors))

		if options.Verbose {
			for _, deleteErr := range result.Errors {
				fmt.Fprintf(w, "  %s:\t%s\n", deleteErr.Path, deleteErr.Message)
			}
		}
	}

	if options.Verbose && result.SkippedDirs > 0 {
		fmt.Fprintf(w, "Unreadable directories skipped:\t%d\n", result.SkippedDirs)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
