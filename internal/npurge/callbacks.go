package npurge

// Callbacks contains optional hooks invoked as the walk progresses.
// Any field may be nil.
type Callbacks struct {
	// OnMatch fires when a target directory is found, in every mode.
	OnMatch func(info MatchInfo)
	// OnDeleted fires after a successful removal.
	OnDeleted func(info MatchInfo)
	// OnSkipped fires when a per-match confirmation is declined.
	OnSkipped func(info MatchInfo)
	// OnDeleteError fires when a removal fails.
	OnDeleteError func(info DeleteErrorInfo)
}

// MatchInfo describes a matched directory.
type MatchInfo struct {
	Path string
	Size int64
}

// DeleteErrorInfo describes a failed removal.
type DeleteErrorInfo struct {
	Path string
	Err  error
}

// callSafe safely calls a callback function if it's not nil.
func callSafe[T any](fn func(T), info T) {
	if fn != nil {
		fn(info)
	}
}
