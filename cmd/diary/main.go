// Package main is the entry point for the diary CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts := cli.ParseGlobalOptions(os.Args[1:])
	opts.Stderr = os.Stderr

	// Create dependency injection container
	container, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	err = rootCmd.Execute()
	return errors.Join(err, container.Close())
}
