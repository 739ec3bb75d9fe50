// Command gausstrace solves small linear systems and prints a step-by-step
// Gaussian elimination trace.
package main

import (
	"os"

	"github.com/katalvlaran/gausstrace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
