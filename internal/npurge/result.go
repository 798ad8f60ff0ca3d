package npurge

import "time"

// Match records one matched cache directory.
type Match struct {
	// Path is the absolute path of the matched directory.
	Path string `json:"path"`
	// Parent is the directory the match was found in.
	Parent string `json:"parent"`
	// Size is the subtree size in bytes (0 when unmeasurable).
	Size int64 `json:"size"`
}

// DeleteError records a failed removal.
type DeleteError struct {
	// Path is the match that could not be removed.
	Path string `json:"path"`
	// Message is the failure detail.
	Message string `json:"message"`
}

// Result holds the aggregate outcome of a purge run.
//
// Declined confirmations stay in Matches but are backed out of MatchCount
// and TotalBytes, so MatchCount == len(Matches) - Declined always holds.
type Result struct {
	// Matches contains every match found, in walk order.
	Matches []Match `json:"matches"`
	// Errors contains one entry per failed removal.
	Errors []DeleteError `json:"errors,omitempty"`
	// MatchCount is the number of matches acted upon.
	MatchCount int `json:"match_count"`
	// TotalBytes is the cumulative size of matches acted upon.
	TotalBytes int64 `json:"total_bytes"`
	// Deleted is the number of successful removals.
	Deleted int `json:"deleted"`
	// Declined is the number of per-match confirmations answered no.
	Declined int `json:"declined"`
	// SkippedDirs is the number of unreadable directories skipped.
	SkippedDirs int `json:"skipped_dirs"`
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration `json:"elapsed"`
}
