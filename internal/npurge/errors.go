package npurge

import "errors"

// ErrNotDirectory is returned when the target path exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")
