// Command fitforge is the command-line client of the fitforge coaching
// platform.
package main

import (
	"os"

	"github.com/fitforge/fitforge-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
