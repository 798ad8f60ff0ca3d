package npurge

import (
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// DirSize returns the cumulative size in bytes of all regular files under
// path. Errors are skipped, so an unreadable subtree contributes zero and
// a missing path yields zero. Probing a match is the expensive part of a
// run, so the subtree walk uses fastwalk's parallel traversal even though
// the outer scan is sequential.
func DirSize(path string) int64 {
	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	_ = fastwalk.Walk(conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(info.Size())

		return nil
	})

	return total.Load()
}
