package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"plinth/internal/cli"
	"plinth/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PLINTH",
		Section: "1",
		Source:  "plinth " + version.Version,
		Manual:  "plinth manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
