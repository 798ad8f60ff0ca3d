package npurge

// DefaultTarget is the directory name matched when no targets are configured.
const DefaultTarget = "node_modules"

// Options configures a purge run and CLI behavior.
type Options struct {
	// Path is the directory to search.
	Path string
	// Targets are the directory names treated as matches (exact names).
	Targets []string
	// Excludes contains regex patterns for directories to skip entirely.
	Excludes []string
	// MinSize is the minimum match size in bytes; smaller matches are ignored.
	MinSize int64
	// Scan reports matches without deleting anything.
	Scan bool
	// DryRun prints what would be deleted without deleting.
	DryRun bool
	// ConfirmEach asks before deleting each match.
	ConfirmEach bool
	// ConfirmFunc answers per-match confirmations. Returning false skips
	// the match and reverses its accounting. Only consulted when
	// ConfirmEach is set and the run is neither Scan nor DryRun.
	ConfirmFunc func(path string, size int64) bool
	// Remover performs recursive removal. Defaults to OSRemover.
	Remover Remover
	// Probe measures a directory subtree in bytes. Defaults to DirSize.
	Probe func(path string) int64
	// Callbacks receive per-match events as the walk progresses.
	Callbacks Callbacks
	// Verbose indicates whether per-error detail is shown in the summary.
	Verbose bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// NoColor disables colored notification lines.
	NoColor bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// active reports whether matches are actually removed.
func (o Options) active() bool {
	return !o.Scan && !o.DryRun
}

// setDefaults fills in the injectable collaborators and the target set.
func (o *Options) setDefaults() {
	if o.Path == "" {
		o.Path = "."
	}

	if len(o.Targets) == 0 {
		o.Targets = []string{DefaultTarget}
	}

	if o.Remover == nil {
		o.Remover = OSRemover{}
	}

	if o.Probe == nil {
		o.Probe = DirSize
	}
}
