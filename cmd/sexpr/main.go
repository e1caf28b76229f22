// Command sexpr reads S-expressions and prints the tree they describe.
package main

import (
	"context"
	"os"

	"github.com/xiam/sexpr-stream/internal/cli"
	"github.com/xiam/sexpr-stream/internal/logging"
)

// Build information, set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Default()
	ctx := logging.WithLogger(context.Background(), logger)

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}
