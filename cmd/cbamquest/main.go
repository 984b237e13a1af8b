// Command cbamquest evaluates CBAM decarbonization strategies for an
// aluminum producer from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/cbamquest/internal/cli"
	"github.com/rshade/cbamquest/pkg/version"
)

func main() {
	os.Exit(exitCode(run()))
}

// run executes the root command until it finishes or the process is interrupted.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// exitCode maps the result of run to the process exit status. Errors are
// printed by cobra already; only the status is decided here.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
