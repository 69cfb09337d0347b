// Package main provides the entry point for the plinth CLI.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"plinth/internal/cli"
	"plinth/internal/version"
	"plinth/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCmd()
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version.Full())); err != nil {
		// fang has already presented the error; all that is left is
		// the exit code contract.
		return errors.ExitCode(err)
	}
	return errors.ExitSuccess
}
