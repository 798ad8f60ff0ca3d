package npurge

import "os"

// Remover abstracts recursive removal so that dry runs and tests can
// prove no mutation happens.
type Remover interface {
	RemoveAll(path string) error
}

// OSRemover removes directory trees with os.RemoveAll.
type OSRemover struct{}

// RemoveAll removes path and everything it contains.
func (OSRemover) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
