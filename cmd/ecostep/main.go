// Command ecostep is an interactive personal carbon footprint calculator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/ecostep/internal/cli"
	"github.com/rshade/ecostep/pkg/version"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and maps its result to an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
