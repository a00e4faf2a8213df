// Command quarterly computes calendar quarter boundaries for RFC 3339
// timestamps, optionally in a named IANA time zone.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/quarterly/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands report their own errors through the formatter;
		// cobra-level flag/argument errors are printed here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
