// Command libcore drives the core sequencer and arithmetic helpers.
package main

import (
	"os"

	"github.com/roach88/libcore/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
