// Farmscan inspects save-game documents and reports matching entities.
// Usage: farmscan [--farm NAME | -f FILE | --list] [filters] [output options]
package main

import (
	"fmt"
	"os"

	"github.com/mhaley/farmscan/cli"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)))
}
