// Command npurge reclaims disk space held by dependency-cache
// directories such as node_modules.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/npurge/internal/cli"
)

// version is set at build time via ldflags.
//
//nolint:gochecknoglobals // Build-time variable
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "npurge:", err)
		os.Exit(1)
	}
}
