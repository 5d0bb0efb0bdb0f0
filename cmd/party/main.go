// Package main is the entry point for the party CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// dirEnv names the variable selecting the workspace directory.
const dirEnv = "PARTYPLAN_DIR"

func main() {
	// A .env file may set PARTYPLAN_* variables; it is optional.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	dir, err := workspaceDir(os.Getenv, os.Getwd)
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(dir, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// workspaceDir returns $PARTYPLAN_DIR, or the current directory when unset.
func workspaceDir(getenv func(string) string, getwd func() (string, error)) (string, error) {
	if dir := getenv(dirEnv); dir != "" {
		return dir, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
